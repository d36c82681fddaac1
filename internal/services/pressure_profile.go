// internal/services/pressure_profile.go
// Layanan profil tekanan radial steady-state: kondisi ideal vs rusak (skin)

package services

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/utl"

	"mcp-skin/internal/util"
)

const (
	// OilfieldConst mengikat sistem satuan psi, STB/day, cP, mD, ft.
	OilfieldConst = 141.2
	SqFtPerAcre   = 43560.0

	IdealOuterRadiusFt  = 50.0 // batas luar kurva ideal
	DamagedZoneRadiusFt = 3.0  // batas sampling zona rusak
	ReconnectRadiusFt   = 10.0 // titik sambung kembali ke kurva ideal

	DefaultSamples = 500
)

// ErrInvalidParameter dibungkus oleh semua pelanggaran prekondisi model.
var ErrInvalidParameter = util.BadInput("invalid reservoir parameter")

// ReservoirParameters adalah input skalar model (satuan oilfield).
type ReservoirParameters struct {
	AreaAcres           float64 `json:"area_acres"`
	WellboreRadiusFt    float64 `json:"wellbore_radius_ft"`
	BoundaryPressurePsi float64 `json:"boundary_pressure_psi"`
	OilFVF              float64 `json:"oil_fvf_rb_per_stb"`
	FlowRateSTBD        float64 `json:"flow_rate_stb_per_day"`
	PermeabilityMD      float64 `json:"permeability_md"`
	ThicknessFt         float64 `json:"thickness_ft"`
	ViscosityCP         float64 `json:"viscosity_cp"`
}

// SkinFactor is dimensionless. Negative values model stimulation.
type SkinFactor float64

type PressurePoint struct {
	RadiusFt    float64 `json:"radius_ft"`
	PressurePsi float64 `json:"pressure_psi"`
}

// PressureCurve is ordered by strictly increasing radius.
type PressureCurve []PressurePoint

// Radii dan Pressures memecah kurva jadi dua array sejajar (untuk plotting).
func (c PressureCurve) Radii() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.RadiusFt
	}
	return out
}

func (c PressureCurve) Pressures() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.PressurePsi
	}
	return out
}

// DrainageRadius = sqrt(43560·A/π), dalam ft.
func (p ReservoirParameters) DrainageRadius() float64 {
	return math.Sqrt(SqFtPerAcre * p.AreaAcres / math.Pi)
}

// Validate memeriksa invarian data model (bukan batas sampling).
func (p ReservoirParameters) Validate() error {
	fields := []struct {
		name      string
		v         float64
		allowZero bool
	}{
		{"area_acres", p.AreaAcres, false},
		{"wellbore_radius_ft", p.WellboreRadiusFt, false},
		{"boundary_pressure_psi", p.BoundaryPressurePsi, true},
		{"oil_fvf_rb_per_stb", p.OilFVF, false},
		{"flow_rate_stb_per_day", p.FlowRateSTBD, true},
		{"permeability_md", p.PermeabilityMD, false},
		{"thickness_ft", p.ThicknessFt, false},
		{"viscosity_cp", p.ViscosityCP, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be finite", f.name)
		}
		if f.allowZero && f.v < 0 {
			return invalid("%s must be >= 0, got %g", f.name, f.v)
		}
		if !f.allowZero && f.v <= 0 {
			return invalid("%s must be > 0, got %g", f.name, f.v)
		}
	}
	return nil
}

// validateSampling memastikan rw < outer, re lebih besar dari radius sampel
// terbesar, dan besaran turunan (gradien, tekanan di ujung kurva) tetap finite.
func (p ReservoirParameters) validateSampling(outer, maxRadius float64, skin SkinFactor) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.WellboreRadiusFt >= outer {
		return invalid("wellbore_radius_ft must be < %g ft, got %g", outer, p.WellboreRadiusFt)
	}
	re := p.DrainageRadius()
	if !finite(re) {
		return invalid("drainage radius is not finite for area_acres %g", p.AreaAcres)
	}
	if re <= maxRadius {
		return invalid("drainage radius %.3f ft must exceed sampled radius %g ft", re, maxRadius)
	}
	g := p.gradient()
	if !finite(g) {
		return invalid("141.2*q*mu*Bo/(k*h) is not finite (q*mu*Bo overflows or k*h underflows)")
	}
	// ln(re/r) terbesar di r = rw; |S| menutup kedua arah skin.
	if drop := g * (math.Log(re/p.WellboreRadiusFt) + math.Abs(float64(skin))); !finite(drop) {
		return invalid("pressure drop is not finite for these parameters")
	}
	for _, pr := range []float64{p.pressureAt(p.WellboreRadiusFt, skin), p.pressureAt(maxRadius, 0)} {
		if !finite(pr) {
			return invalid("pressure is not finite for these parameters")
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// checkRadii menolak rw yang terlalu dekat ke batas luar: langkah LinSpace di
// bawah resolusi float membuat radius berurutan sama.
func checkRadii(radii []float64) error {
	for i := 1; i < len(radii); i++ {
		if radii[i] <= radii[i-1] {
			return invalid("wellbore radius too close to the sampled outer radius: samples %d and %d coincide at %g ft", i-1, i, radii[i])
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

// gradient = 141.2·q·μ·Bo/(k·h), psi per unit ln(r).
func (p ReservoirParameters) gradient() float64 {
	return OilfieldConst * p.FlowRateSTBD * p.ViscosityCP * p.OilFVF / (p.PermeabilityMD * p.ThicknessFt)
}

// pressureAt mengevaluasi rumus Hawkins; skin=0 memberi rumus ideal.
func (p ReservoirParameters) pressureAt(r float64, skin SkinFactor) float64 {
	return p.BoundaryPressurePsi - p.gradient()*(math.Log(p.DrainageRadius()/r)+float64(skin))
}

// IdealPressureAt mengembalikan P(r) tanpa skin. Tidak memvalidasi input.
func (p ReservoirParameters) IdealPressureAt(r float64) float64 {
	return p.pressureAt(r, 0)
}

// DamagedPressureAt mengembalikan P(r) dengan skin. Tidak memvalidasi input.
func (p ReservoirParameters) DamagedPressureAt(r float64, skin SkinFactor) float64 {
	return p.pressureAt(r, skin)
}

// ComputeIdealProfile samples DefaultSamples radii from rw to 50 ft.
func ComputeIdealProfile(p ReservoirParameters) (PressureCurve, error) {
	return IdealProfile(p, DefaultSamples)
}

// IdealProfile seperti ComputeIdealProfile dengan jumlah sampel n (n >= 2).
func IdealProfile(p ReservoirParameters, n int) (PressureCurve, error) {
	if n < 2 {
		return nil, invalid("sample count must be >= 2, got %d", n)
	}
	if err := p.validateSampling(IdealOuterRadiusFt, IdealOuterRadiusFt, 0); err != nil {
		return nil, err
	}
	radii := utl.LinSpace(p.WellboreRadiusFt, IdealOuterRadiusFt, n)
	if err := checkRadii(radii); err != nil {
		return nil, err
	}
	out := make(PressureCurve, len(radii))
	for i, r := range radii {
		out[i] = PressurePoint{RadiusFt: r, PressurePsi: p.pressureAt(r, 0)}
	}
	return out, nil
}

// ComputeDamagedProfile samples DefaultSamples radii from rw to 3 ft with skin
// applied, then appends the undamaged pressure at 10 ft.
func ComputeDamagedProfile(p ReservoirParameters, skin SkinFactor) (PressureCurve, error) {
	return DamagedProfile(p, skin, DefaultSamples)
}

// DamagedProfile menghasilkan n+1 titik: n di zona rusak + 1 titik sambung di 10 ft.
// Radius melompat 3 -> 10 ft; titik 10 ft memakai rumus ideal (tanpa skin).
func DamagedProfile(p ReservoirParameters, skin SkinFactor, n int) (PressureCurve, error) {
	if n < 2 {
		return nil, invalid("sample count must be >= 2, got %d", n)
	}
	if !finite(float64(skin)) {
		return nil, invalid("skin must be finite")
	}
	if err := p.validateSampling(DamagedZoneRadiusFt, ReconnectRadiusFt, skin); err != nil {
		return nil, err
	}
	radii := utl.LinSpace(p.WellboreRadiusFt, DamagedZoneRadiusFt, n)
	if err := checkRadii(radii); err != nil {
		return nil, err
	}
	out := make(PressureCurve, 0, len(radii)+1)
	for _, r := range radii {
		out = append(out, PressurePoint{RadiusFt: r, PressurePsi: p.pressureAt(r, skin)})
	}
	out = append(out, PressurePoint{
		RadiusFt:    ReconnectRadiusFt,
		PressurePsi: p.pressureAt(ReconnectRadiusFt, 0),
	})
	return out, nil
}
