// internal/services/comparison.go
// Perbandingan kurva ideal vs rusak + ringkasan untuk renderer

package services

const MaxSweepSkins = 50

// Zone menandai rentang radius yang diarsir di grafik.
type Zone struct {
	Name      string  `json:"name"`
	FromFt    float64 `json:"from_ft"`
	ToFt      float64 `json:"to_ft"`
	Highlight bool    `json:"highlight"`
}

// Zones returns the damaged (0-10 ft) and undamaged (10-50 ft) bands.
func Zones() []Zone {
	return []Zone{
		{Name: "damaged", FromFt: 0, ToFt: ReconnectRadiusFt, Highlight: true},
		{Name: "undamaged", FromFt: ReconnectRadiusFt, ToFt: IdealOuterRadiusFt},
	}
}

type ProfileComparison struct {
	DrainageRadiusFt    float64       `json:"drainage_radius_ft"`
	Skin                SkinFactor    `json:"skin"`
	Ideal               PressureCurve `json:"ideal"`
	Damaged             PressureCurve `json:"damaged"`
	SkinPressureDropPsi float64       `json:"skin_pressure_drop_psi"`
	IdealWellborePsi    float64       `json:"ideal_wellbore_psi"`
	DamagedWellborePsi  float64       `json:"damaged_wellbore_psi"`
	Zones               []Zone        `json:"zones"`
}

// SkinPressureDrop = 141.2·q·μ·Bo·S/(k·h) (Hawkins).
func SkinPressureDrop(p ReservoirParameters, skin SkinFactor) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if !finite(float64(skin)) {
		return 0, invalid("skin must be finite")
	}
	dp := p.gradient() * float64(skin)
	if !finite(dp) {
		return 0, invalid("skin pressure drop is not finite for these parameters")
	}
	return dp, nil
}

// CompareProfiles menghitung kedua kurva sekaligus beserta tekanan di dinding sumur.
func CompareProfiles(p ReservoirParameters, skin SkinFactor) (*ProfileComparison, error) {
	ideal, err := ComputeIdealProfile(p)
	if err != nil {
		return nil, err
	}
	damaged, err := ComputeDamagedProfile(p, skin)
	if err != nil {
		return nil, err
	}
	dp, err := SkinPressureDrop(p, skin)
	if err != nil {
		return nil, err
	}
	return &ProfileComparison{
		DrainageRadiusFt:    p.DrainageRadius(),
		Skin:                skin,
		Ideal:               ideal,
		Damaged:             damaged,
		SkinPressureDropPsi: dp,
		IdealWellborePsi:    ideal[0].PressurePsi,
		DamagedWellborePsi:  damaged[0].PressurePsi,
		Zones:               Zones(),
	}, nil
}

type SweepItem struct {
	Skin                SkinFactor    `json:"skin"`
	SkinPressureDropPsi float64       `json:"skin_pressure_drop_psi"`
	DamagedWellborePsi  float64       `json:"damaged_wellbore_psi"`
	Damaged             PressureCurve `json:"damaged"`
}

// SkinSweep computes one damaged profile per skin value, in input order.
// The first invalid skin aborts the sweep.
func SkinSweep(p ReservoirParameters, skins []SkinFactor) ([]SweepItem, error) {
	if len(skins) == 0 {
		return nil, invalid("at least one skin value is required")
	}
	if len(skins) > MaxSweepSkins {
		return nil, invalid("too many skin values: %d (max %d)", len(skins), MaxSweepSkins)
	}
	out := make([]SweepItem, 0, len(skins))
	for _, s := range skins {
		curve, err := ComputeDamagedProfile(p, s)
		if err != nil {
			return nil, err
		}
		out = append(out, SweepItem{
			Skin:                s,
			SkinPressureDropPsi: p.gradient() * float64(s),
			DamagedWellborePsi:  curve[0].PressurePsi,
			Damaged:             curve,
		})
	}
	return out, nil
}
