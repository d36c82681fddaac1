// internal/handlers/mcp/get_well_parameters.go
// MCP Tool: get_well_parameters - parameter reservoir tersimpan per sumur

package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	mysqlrepo "mcp-skin/internal/repositories/mysql"
	"mcp-skin/internal/services"
)

type WellParams struct {
	WellID           string                       `json:"well_id"`
	WellName         string                       `json:"well_name,omitempty"`
	FieldName        string                       `json:"field_name,omitempty"`
	Params           services.ReservoirParameters `json:"params"`
	DrainageRadiusFt float64                      `json:"drainage_radius_ft"`
	Skin             *float64                     `json:"skin,omitempty"`
	UpdatedAt        string                       `json:"updated_at,omitempty"`
}

// ToWellParams mengubah baris repo ke bentuk JSON publik.
func ToWellParams(row mysqlrepo.WellRow) WellParams {
	out := WellParams{
		WellID:           row.WellID,
		WellName:         row.WellName,
		FieldName:        row.FieldName,
		Params:           row.Params,
		DrainageRadiusFt: row.Params.DrainageRadius(),
	}
	if row.Skin.Valid {
		s := row.Skin.Float64
		out.Skin = &s
	}
	if !row.UpdatedAt.IsZero() {
		out.UpdatedAt = row.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// GetWellParametersHandler: satu sumur (well_id), beberapa sumur (well_ids)
// atau daftar (field, limit, offset).
func GetWellParametersHandler(w http.ResponseWriter, r *http.Request) {
	if wellSource == nil {
		http.Error(w, "well repo not configured", http.StatusServiceUnavailable)
		return
	}

	in := struct {
		WellID  string   `json:"well_id,omitempty"`
		WellIDs []string `json:"well_ids,omitempty"`
		Field   string   `json:"field,omitempty"`
		Limit   int      `json:"limit,omitempty"`
		Offset  int      `json:"offset,omitempty"`
	}{}

	q := r.URL.Query()
	in.WellID = strings.TrimSpace(mux.Vars(r)["id"])
	if in.WellID == "" {
		in.WellID = strings.TrimSpace(q.Get("well_id"))
	}
	if raw := strings.TrimSpace(q.Get("well_ids")); raw != "" {
		in.WellIDs = strings.Split(raw, ",")
	}
	in.Field = strings.TrimSpace(q.Get("field"))
	if n, _ := strconv.Atoi(q.Get("limit")); n > 0 {
		in.Limit = n
	}
	if n, _ := strconv.Atoi(q.Get("offset")); n > 0 {
		in.Offset = n
	}
	if r.Method == http.MethodPost && in.WellID == "" && len(in.WellIDs) == 0 && in.Field == "" && r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.WellID = strings.TrimSpace(in.WellID)
		in.Field = strings.TrimSpace(in.Field)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 6*time.Second)
	defer cancel()

	if in.WellID != "" {
		row, err := wellSource.GetWell(ctx, in.WellID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ToWellParams(*row))
		return
	}

	var (
		rows []mysqlrepo.WellRow
		err  error
	)
	if ids := cleanIDs(in.WellIDs); len(ids) > 0 {
		rows, err = wellSource.GetWells(ctx, ids)
	} else {
		rows, err = wellSource.ListWells(ctx, mysqlrepo.WellFilter{Field: in.Field, Limit: in.Limit, Offset: in.Offset})
	}
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]WellParams, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToWellParams(row))
	}
	writeJSON(w, http.StatusOK, map[string]any{"wells": out})
}

// cleanIDs: trim, buang kosong & duplikat, maksimal 100 id.
func cleanIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) == 100 {
			break
		}
	}
	return out
}
