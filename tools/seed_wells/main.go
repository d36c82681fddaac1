/*
Kompilasi manual:
  go build -o tools/seed_wells/seed_wells ./tools/seed_wells

Pakai contoh:
  ./tools/seed_wells/seed_wells \
    -csv tools/seed_wells/sample_wells.csv \
    -dsn "mcpuser:secret@tcp(127.0.0.1:3306)/mcp?parseTime=true" \
    -create -batch 500
*/

// [FILE] tools/seed_wells/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mcp-skin/internal/logger"
	"mcp-skin/internal/services"
	"mcp-skin/pkg/db"
)

var (
	csvPath   = flag.String("csv", "tools/seed_wells/sample_wells.csv", "CSV path")
	dsn       = flag.String("dsn", os.Getenv("DB_DSN"), "MySQL DSN (default $DB_DSN)")
	batchSize = flag.Int("batch", 500, "Insert batch size")
	truncate  = flag.Bool("truncate", false, "TRUNCATE reservoir_wells first")
	create    = flag.Bool("create", false, "CREATE TABLE IF NOT EXISTS reservoir_wells")
)

const createTable = `CREATE TABLE IF NOT EXISTS reservoir_wells (
  well_id VARCHAR(64) NOT NULL PRIMARY KEY,
  well_name VARCHAR(128) NOT NULL DEFAULT '',
  field_name VARCHAR(128) NOT NULL DEFAULT '',
  area_acres DOUBLE NOT NULL,
  wellbore_radius_ft DOUBLE NOT NULL,
  boundary_pressure_psi DOUBLE NOT NULL,
  oil_fvf DOUBLE NOT NULL,
  flow_rate_stbd DOUBLE NOT NULL,
  permeability_md DOUBLE NOT NULL,
  thickness_ft DOUBLE NOT NULL,
  viscosity_cp DOUBLE NOT NULL,
  skin DOUBLE NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY idx_field (field_name)
)`

var required = []string{
	"well_id", "area_acres", "wellbore_radius_ft", "boundary_pressure_psi", "oil_fvf",
	"flow_rate_stbd", "permeability_md", "thickness_ft", "viscosity_cp",
}

// wellRecord: satu baris CSV yang sudah diparse & divalidasi.
type wellRecord struct {
	ID, Name, Field string
	Params          services.ReservoirParameters
	Skin            sql.NullFloat64
}

func (w wellRecord) args() []any {
	p := w.Params
	return []any{w.ID, w.Name, w.Field, p.AreaAcres, p.WellboreRadiusFt, p.BoundaryPressurePsi,
		p.OilFVF, p.FlowRateSTBD, p.PermeabilityMD, p.ThicknessFt, p.ViscosityCP, w.Skin}
}

func main() {
	flag.Parse()
	log := logger.Must(os.Getenv("LOG_LEVEL"), "console")
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := db.NewMySQL(ctx, *dsn, db.Options{PingTries: 5}, log)
	if err != nil {
		return err
	}
	defer conn.Close()

	if *create {
		if _, err := conn.ExecContext(ctx, createTable); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
		log.Info("table ready", zap.String("table", "reservoir_wells"))
	}
	if *truncate {
		if _, err := conn.ExecContext(ctx, "TRUNCATE TABLE reservoir_wells"); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		log.Info("truncated", zap.String("table", "reservoir_wells"))
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	head, err := r.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	idx := headerIndex(head)
	if err := ensureColumns(idx, required); err != nil {
		return err
	}

	batch := make([]wellRecord, 0, *batchSize)
	rows, skipped := 0, 0
	line := 1
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		w, err := parseRecord(idx, rec)
		if err != nil {
			skipped++
			log.Warn("skip row", zap.Int("line", line), zap.Error(err))
			continue
		}
		batch = append(batch, w)
		rows++
		if len(batch) >= *batchSize {
			if err := flush(ctx, conn, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := flush(ctx, conn, batch); err != nil {
		return err
	}
	log.Info("inserted reservoir_wells", zap.Int("rows", rows), zap.Int("skipped", skipped))
	return nil
}

/* ======================= Helpers ======================= */

func headerIndex(h []string) map[string]int {
	m := map[string]int{}
	for i, c := range h {
		c = strings.TrimSpace(strings.ToLower(c))
		c = strings.TrimPrefix(c, "\ufeff")
		m[c] = i
	}
	return m
}

func ensureColumns(idx map[string]int, need []string) error {
	for _, c := range need {
		if _, ok := idx[c]; !ok {
			return fmt.Errorf("missing column %q in CSV header", c)
		}
	}
	return nil
}

// parseRecord membaca satu baris; parameter harus lolos Validate.
func parseRecord(idx map[string]int, rec []string) (wellRecord, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	num := func(col string) (float64, error) {
		v, err := strconv.ParseFloat(get(col), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", col, err)
		}
		return v, nil
	}

	w := wellRecord{ID: get("well_id"), Name: get("well_name"), Field: get("field_name")}
	if w.ID == "" {
		return w, errors.New("well_id is empty")
	}
	dst := []struct {
		col string
		ptr *float64
	}{
		{"area_acres", &w.Params.AreaAcres},
		{"wellbore_radius_ft", &w.Params.WellboreRadiusFt},
		{"boundary_pressure_psi", &w.Params.BoundaryPressurePsi},
		{"oil_fvf", &w.Params.OilFVF},
		{"flow_rate_stbd", &w.Params.FlowRateSTBD},
		{"permeability_md", &w.Params.PermeabilityMD},
		{"thickness_ft", &w.Params.ThicknessFt},
		{"viscosity_cp", &w.Params.ViscosityCP},
	}
	for _, d := range dst {
		v, err := num(d.col)
		if err != nil {
			return w, err
		}
		*d.ptr = v
	}
	if err := w.Params.Validate(); err != nil {
		return w, err
	}
	if s := get("skin"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return w, fmt.Errorf("skin: %w", err)
		}
		w.Skin = sql.NullFloat64{Float64: v, Valid: true}
	}
	return w, nil
}

func flush(ctx context.Context, conn *sql.DB, batch []wellRecord) error {
	if len(batch) == 0 {
		return nil
	}
	placeholders := strings.Repeat("(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?),", len(batch))
	placeholders = strings.TrimRight(placeholders, ",")
	q := `INSERT INTO reservoir_wells(well_id, well_name, field_name, area_acres, wellbore_radius_ft,
  boundary_pressure_psi, oil_fvf, flow_rate_stbd, permeability_md, thickness_ft, viscosity_cp, skin) VALUES ` +
		placeholders +
		` ON DUPLICATE KEY UPDATE well_name=VALUES(well_name), field_name=VALUES(field_name),
  area_acres=VALUES(area_acres), wellbore_radius_ft=VALUES(wellbore_radius_ft),
  boundary_pressure_psi=VALUES(boundary_pressure_psi), oil_fvf=VALUES(oil_fvf),
  flow_rate_stbd=VALUES(flow_rate_stbd), permeability_md=VALUES(permeability_md),
  thickness_ft=VALUES(thickness_ft), viscosity_cp=VALUES(viscosity_cp), skin=VALUES(skin)`

	vals := make([]any, 0, len(batch)*12)
	for _, w := range batch {
		vals = append(vals, w.args()...)
	}
	if _, err := conn.ExecContext(ctx, q, vals...); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}
