// internal/report/report.go
// Render hasil perbandingan profil ke tabel / CSV / JSON (dipakai CLI)

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"mcp-skin/internal/services"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat: "" = table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (table|csv|json)", s)
	}
}

// Options: Every > 1 menipiskan titik di tabel (titik pertama & terakhir selalu ikut).
type Options struct {
	Format Format
	Every  int
}

func Write(w io.Writer, p services.ReservoirParameters, c *services.ProfileComparison, opt Options) error {
	switch opt.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Params services.ReservoirParameters `json:"params"`
			*services.ProfileComparison
		}{p, c})
	case FormatCSV:
		return writeCSV(w, c)
	default:
		return writeTable(w, p, c, opt.Every)
	}
}

// writeCSV: curve,radius_ft,pressure_psi dengan presisi penuh.
func writeCSV(w io.Writer, c *services.ProfileComparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"curve", "radius_ft", "pressure_psi"}); err != nil {
		return err
	}
	for _, set := range []struct {
		name  string
		curve services.PressureCurve
	}{{"ideal", c.Ideal}, {"damaged", c.Damaged}} {
		for _, pt := range set.curve {
			rec := []string{set.name, ff(pt.RadiusFt), ff(pt.PressurePsi)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func ff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func writeTable(w io.Writer, p services.ReservoirParameters, c *services.ProfileComparison, every int) error {
	if every < 1 {
		every = 1
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "drainage radius (ft)\t%.2f\t\n", c.DrainageRadiusFt)
	fmt.Fprintf(tw, "skin\t%.2f\t\n", float64(c.Skin))
	fmt.Fprintf(tw, "flow rate (STB/d)\t%.1f\t\n", p.FlowRateSTBD)
	fmt.Fprintf(tw, "ideal Pwf (psi)\t%.2f\t\n", c.IdealWellborePsi)
	fmt.Fprintf(tw, "damaged Pwf (psi)\t%.2f\t\n", c.DamagedWellborePsi)
	fmt.Fprintf(tw, "skin dp (psi)\t%.2f\t\n", c.SkinPressureDropPsi)
	fmt.Fprintln(tw, "\t\t")

	for _, set := range []struct {
		name  string
		curve services.PressureCurve
	}{{"ideal", c.Ideal}, {"damaged", c.Damaged}} {
		fmt.Fprintf(tw, "%s\tr (ft)\tP (psi)\t\n", set.name)
		last := len(set.curve) - 1
		for i, pt := range set.curve {
			if i%every != 0 && i != last {
				continue
			}
			fmt.Fprintf(tw, "\t%.4f\t%.2f\t\n", pt.RadiusFt, pt.PressurePsi)
		}
		fmt.Fprintln(tw, "\t\t\t")
	}
	return tw.Flush()
}
