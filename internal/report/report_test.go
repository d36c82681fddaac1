// internal/report/report_test.go

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"mcp-skin/internal/services"
)

func comparison(tst *testing.T) (services.ReservoirParameters, *services.ProfileComparison) {
	p := services.DefaultReservoirParameters()
	c, err := services.CompareProfiles(p, 1)
	if err != nil {
		tst.Fatalf("CompareProfiles: %v", err)
	}
	return p, c
}

func Test_format01(tst *testing.T) {
	chk.PrintTitle("format01. parse output formats")
	for in, want := range map[string]Format{"": FormatTable, "TABLE": FormatTable, "csv": FormatCSV, " json ": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil {
			tst.Fatalf("ParseFormat(%q): %v", in, err)
		}
		chk.String(tst, string(got), string(want))
	}
	if _, err := ParseFormat("xml"); err == nil {
		tst.Fatalf("xml must be rejected")
	}
}

func Test_csv01(tst *testing.T) {
	chk.PrintTitle("csv01. one row per sampled point")
	p, c := comparison(tst)
	var buf bytes.Buffer
	if err := Write(&buf, p, c, Options{Format: FormatCSV}); err != nil {
		tst.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Int(tst, "rows", len(rows), 1+500+501)
	chk.String(tst, rows[0][0], "curve")
	chk.String(tst, rows[1][0], "ideal")
	last := rows[len(rows)-1]
	chk.String(tst, last[0], "damaged")
	chk.String(tst, last[1], "10")
}

func Test_json01(tst *testing.T) {
	chk.PrintTitle("json01. json carries params and curves")
	p, c := comparison(tst)
	var buf bytes.Buffer
	if err := Write(&buf, p, c, Options{Format: FormatJSON}); err != nil {
		tst.Fatal(err)
	}
	var out struct {
		Params services.ReservoirParameters `json:"params"`
		Ideal  services.PressureCurve        `json:"ideal"`
		Zones  []services.Zone               `json:"zones"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "area", 1e-15, out.Params.AreaAcres, 100)
	chk.Int(tst, "ideal", len(out.Ideal), 500)
	chk.Int(tst, "zones", len(out.Zones), 2)
}

func Test_table01(tst *testing.T) {
	chk.PrintTitle("table01. thinned table keeps end points")
	p, c := comparison(tst)
	var buf bytes.Buffer
	if err := Write(&buf, p, c, Options{Format: FormatTable, Every: 100}); err != nil {
		tst.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{"drainage radius (ft)", "1177.52", "141.20", "50.0000", "10.0000"} {
		if !strings.Contains(s, want) {
			tst.Fatalf("table missing %q:\n%s", want, s)
		}
	}
}
