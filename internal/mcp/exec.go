// internal/mcp/exec.go
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Route adalah satu langkah eksekusi tool dalam request multi-route.
type Route struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"` // payload JSON utk handler tool (RAW)
}

type ExecResult struct {
	Route  Route       `json:"route"`
	Status int         `json:"status"`
	Data   interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ExecuteRoutes menjalankan semua rute in-process secara berurutan.
func ExecuteRoutes(ctx context.Context, routes []Route, requestID string) []ExecResult {
	out := make([]ExecResult, 0, len(routes))

	for _, r := range routes {
		h, ok := Get(r.Tool)
		if !ok {
			out = append(out, ExecResult{Route: r, Status: http.StatusNotFound, Error: "tool not found: " + r.Tool})
			continue
		}

		// Body: default {}. Untuk RawMessage, Marshal mengembalikan raw bytes.
		body := []byte("{}")
		if len(r.Params) > 0 && !isJSONNullOrEmpty(r.Params) {
			body = r.Params
		}

		req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "/mcp/internal/"+r.Tool, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if requestID != "" {
			req.Header.Set("X-Request-ID", requestID)
		}

		rr := newMemRecorder()
		h.ServeHTTP(rr, req)

		if rr.status >= 200 && rr.status < 300 {
			res := ExecResult{Route: r, Status: rr.status}
			if len(rr.buf) == 0 {
				res.Data = map[string]any{}
			} else {
				var anyData interface{}
				if err := json.Unmarshal(rr.buf, &anyData); err != nil {
					res.Data = string(rr.buf) // fallback non-JSON
				} else {
					res.Data = anyData
				}
			}
			out = append(out, res)
			continue
		}

		// Error: ambil pesan dari body kalau ada
		msg := strings.TrimSpace(string(rr.buf))
		if msg == "" {
			msg = fmt.Sprintf("status %d", rr.status)
		}
		out = append(out, ExecResult{Route: r, Status: rr.status, Error: msg})
	}

	return out
}

// ---- mini response recorder (in-memory) ----
type memRecorder struct {
	buf    []byte
	status int
	header http.Header
}

func newMemRecorder() *memRecorder { return &memRecorder{header: http.Header{}, status: 200} }
func (m *memRecorder) Header() http.Header { return m.header }
func (m *memRecorder) Write(b []byte) (int, error) {
	m.buf = append(m.buf, b...)
	return len(b), nil
}
func (m *memRecorder) WriteHeader(code int) { m.status = code }

// Util: cek apakah Params = null / {} / whitespace
func isJSONNullOrEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null" || s == "{}"
}
