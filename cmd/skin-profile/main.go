// cmd/skin-profile/main.go
// CLI: hitung profil tekanan ideal vs rusak tanpa server.
//
//	skin-profile -k 50 -h 20 -skin 2 -format csv > profile.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mcp-skin/internal/report"
	"mcp-skin/internal/services"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "skin-profile:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	d := services.DefaultReservoirParameters()
	var p services.ReservoirParameters

	fs := flag.NewFlagSet("skin-profile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&p.AreaAcres, "area", d.AreaAcres, "drainage area (acres)")
	fs.Float64Var(&p.WellboreRadiusFt, "rw", d.WellboreRadiusFt, "wellbore radius (ft)")
	fs.Float64Var(&p.BoundaryPressurePsi, "pe", d.BoundaryPressurePsi, "boundary pressure (psi)")
	fs.Float64Var(&p.OilFVF, "bo", d.OilFVF, "oil formation volume factor (rb/STB)")
	fs.Float64Var(&p.FlowRateSTBD, "q", d.FlowRateSTBD, "flow rate (STB/day)")
	fs.Float64Var(&p.PermeabilityMD, "k", d.PermeabilityMD, "permeability (mD)")
	fs.Float64Var(&p.ThicknessFt, "h", d.ThicknessFt, "thickness (ft)")
	fs.Float64Var(&p.ViscosityCP, "mu", d.ViscosityCP, "oil viscosity (cP)")
	skin := fs.Float64("skin", float64(services.DefaultSkin), "skin factor")
	format := fs.String("format", "table", "output format: table|csv|json")
	every := fs.Int("every", 50, "table: print every Nth sampled point")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}
	c, err := services.CompareProfiles(p, services.SkinFactor(*skin))
	if err != nil {
		return err
	}
	return report.Write(stdout, p, c, report.Options{Format: f, Every: *every})
}
