// internal/services/defaults.go
// Nilai default & batas minimum form input (untuk front end)

package services

// DefaultReservoirParameters mengembalikan nilai awal form input.
func DefaultReservoirParameters() ReservoirParameters {
	return ReservoirParameters{
		AreaAcres:           100,
		WellboreRadiusFt:    1,
		BoundaryPressurePsi: 3000,
		OilFVF:              1,
		FlowRateSTBD:        1000,
		PermeabilityMD:      100,
		ThicknessFt:         10,
		ViscosityCP:         1,
	}
}

const DefaultSkin SkinFactor = 1.0

type FieldLimit struct {
	Field   string  `json:"field"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit,omitempty"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max,omitempty"`
	Default float64 `json:"default"`
}

// FormLimits returns the input-form constraints, skin slider last.
// These are UI bounds; the model itself only requires the data-model invariants.
func FormLimits() []FieldLimit {
	d := DefaultReservoirParameters()
	return []FieldLimit{
		{Field: "area_acres", Label: "Reservoir Area", Unit: "acres", Min: 1, Default: d.AreaAcres},
		{Field: "wellbore_radius_ft", Label: "Wellbore Radius", Unit: "ft", Min: 0.1, Default: d.WellboreRadiusFt},
		{Field: "boundary_pressure_psi", Label: "Pressure at Reservoir Boundary", Unit: "psi", Min: 0, Default: d.BoundaryPressurePsi},
		{Field: "oil_fvf_rb_per_stb", Label: "Oil Formation Volume Factor", Unit: "rb/stb", Min: 0.1, Default: d.OilFVF},
		{Field: "flow_rate_stb_per_day", Label: "Oil Flowrate", Unit: "STB/day", Min: 0, Default: d.FlowRateSTBD},
		{Field: "permeability_md", Label: "Permeability", Unit: "mD", Min: 0.1, Default: d.PermeabilityMD},
		{Field: "thickness_ft", Label: "Payzone Thickness", Unit: "ft", Min: 1, Default: d.ThicknessFt},
		{Field: "viscosity_cp", Label: "Oil Viscosity", Unit: "cP", Min: 0.1, Default: d.ViscosityCP},
		{Field: "skin", Label: "Formation Damage (Skin)", Min: 0.5, Max: 5.0, Default: float64(DefaultSkin)},
	}
}

// ParamsInput adalah versi "pointer" dari ReservoirParameters: field nil = tidak dikirim.
type ParamsInput struct {
	AreaAcres           *float64 `json:"area_acres,omitempty"`
	WellboreRadiusFt    *float64 `json:"wellbore_radius_ft,omitempty"`
	BoundaryPressurePsi *float64 `json:"boundary_pressure_psi,omitempty"`
	OilFVF              *float64 `json:"oil_fvf_rb_per_stb,omitempty"`
	FlowRateSTBD        *float64 `json:"flow_rate_stb_per_day,omitempty"`
	PermeabilityMD      *float64 `json:"permeability_md,omitempty"`
	ThicknessFt         *float64 `json:"thickness_ft,omitempty"`
	ViscosityCP         *float64 `json:"viscosity_cp,omitempty"`
}

// MergeOnto menimpa base dengan field yang dikirim.
func (in ParamsInput) MergeOnto(base ReservoirParameters) ReservoirParameters {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&base.AreaAcres, in.AreaAcres)
	set(&base.WellboreRadiusFt, in.WellboreRadiusFt)
	set(&base.BoundaryPressurePsi, in.BoundaryPressurePsi)
	set(&base.OilFVF, in.OilFVF)
	set(&base.FlowRateSTBD, in.FlowRateSTBD)
	set(&base.PermeabilityMD, in.PermeabilityMD)
	set(&base.ThicknessFt, in.ThicknessFt)
	set(&base.ViscosityCP, in.ViscosityCP)
	return base
}
