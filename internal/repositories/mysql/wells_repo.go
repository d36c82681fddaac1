// repositories/mysql/wells_repo.go
// Repo parameter reservoir per sumur (read-only, sumber input model)
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mcp-skin/internal/services"
	"mcp-skin/internal/util"
)

type WellRepo struct{ DB *sql.DB }

type WellRow struct {
	WellID    string
	WellName  string
	FieldName string
	Params    services.ReservoirParameters
	Skin      sql.NullFloat64 // skin desain (opsional)
	UpdatedAt time.Time
}

type WellFilter struct {
	Field  string // LIKE
	Limit  int
	Offset int
}

// Asumsi skema:
//   reservoir_wells(well_id VARCHAR PK, well_name, field_name, area_acres DOUBLE,
//     wellbore_radius_ft, boundary_pressure_psi, oil_fvf, flow_rate_stbd,
//     permeability_md, thickness_ft, viscosity_cp, skin DOUBLE NULL, updated_at DATETIME)
const wellColumns = `well_id, well_name, field_name, area_acres, wellbore_radius_ft,
	boundary_pressure_psi, oil_fvf, flow_rate_stbd, permeability_md, thickness_ft,
	viscosity_cp, skin, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanWell(s scanner) (WellRow, error) {
	var w WellRow
	err := s.Scan(
		&w.WellID, &w.WellName, &w.FieldName,
		&w.Params.AreaAcres, &w.Params.WellboreRadiusFt, &w.Params.BoundaryPressurePsi,
		&w.Params.OilFVF, &w.Params.FlowRateSTBD, &w.Params.PermeabilityMD,
		&w.Params.ThicknessFt, &w.Params.ViscosityCP, &w.Skin, &w.UpdatedAt,
	)
	return w, err
}

// GetWell mengambil parameter satu sumur. Tidak ketemu -> util.NotFound.
func (r *WellRepo) GetWell(ctx context.Context, wellID string) (*WellRow, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+wellColumns+` FROM reservoir_wells WHERE well_id = ?`, wellID)
	w, err := scanWell(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: well %q", util.NotFound("well not found"), wellID)
	}
	if err != nil {
		return nil, fmt.Errorf("query well %q: %w", wellID, err)
	}
	return &w, nil
}

const (
	DefaultListLimit = 200
	MaxListLimit     = 1000
)

// normalize: limit <= 0 -> default, limit > max -> max (bukan default),
// supaya pemanggil yang paging tidak berhenti terlalu awal.
func (f WellFilter) normalize() WellFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultListLimit
	case f.Limit > MaxListLimit:
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

func (r *WellRepo) ListWells(ctx context.Context, f WellFilter) ([]WellRow, error) {
	f = f.normalize()

	q := `SELECT ` + wellColumns + ` FROM reservoir_wells WHERE 1=1`
	args := []any{}
	if f.Field != "" {
		q += ` AND field_name LIKE ?`
		args = append(args, "%"+f.Field+"%")
	}
	q += ` ORDER BY well_id LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query wells: %w", err)
	}
	defer rows.Close()

	var out []WellRow
	for rows.Next() {
		w, err := scanWell(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// GetWells mengambil beberapa sumur sekaligus (urutan mengikuti well_id).
func (r *WellRepo) GetWells(ctx context.Context, ids []string) ([]WellRow, error) {
	clause, args := inClause(ids)
	if clause == "" {
		return nil, nil
	}
	q := `SELECT ` + wellColumns + ` FROM reservoir_wells WHERE well_id IN ` + clause + ` ORDER BY well_id`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query wells by id: %w", err)
	}
	defer rows.Close()

	var out []WellRow
	for rows.Next() {
		w, err := scanWell(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
