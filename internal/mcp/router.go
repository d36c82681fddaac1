// internal/mcp/router.go
// Router MCP: menerima request lalu memilih & mengeksekusi tool.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"mcp-skin/internal/mcp/llm"
)

const DefaultTool = "compute_pressure_profile"

var maxRoutes = func() int {
	if v := os.Getenv("PLAN_MAX_ROUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 8
}()

var (
	routerMu  sync.RWMutex
	routerLog = zap.NewNop()
	chooser   llm.Client
)

// SetLogger mengganti logger router (default no-op).
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	routerMu.Lock()
	routerLog = l
	routerMu.Unlock()
}

// SetChooser memasang client LLM untuk memilih tool; nil = heuristik saja.
func SetChooser(c llm.Client) {
	routerMu.Lock()
	chooser = c
	routerMu.Unlock()
}

func deps() (*zap.Logger, llm.Client) {
	routerMu.RLock()
	defer routerMu.RUnlock()
	return routerLog, chooser
}

// ====== Regex heuristik ======
var (
	reSweep   = regexp.MustCompile(`\b(sweep|sensitivit\w*|range of skin|beberapa skin|variasi skin|several skins?)\b`)
	reExplain = regexp.MustCompile(`\b(explain|why|how much|jelaskan|kenapa|mengapa|seberapa)\b`)
	reWell    = regexp.MustCompile(`\b(well[-_\s]?id|parameter sumur|stored parameters?|data sumur|list wells?)\b`)
	reForm    = regexp.MustCompile(`\b(defaults?|form|limits?|batas input)\b`)
)

// chooseByKeyword memilih tool secara deterministik; "" kalau tidak ada yang cocok.
func chooseByKeyword(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	switch {
	case q == "":
		return ""
	case reSweep.MatchString(q):
		return "compute_skin_sweep"
	case reExplain.MatchString(q):
		return "explain_skin_effect"
	case reWell.MatchString(q):
		return "get_well_parameters"
	case reForm.MatchString(q):
		return "get_form_defaults"
	case strings.Contains(q, "profile") || strings.Contains(q, "profil") || strings.Contains(q, "pressure") || strings.Contains(q, "tekanan"):
		return "compute_pressure_profile"
	}
	return ""
}

// ====== Router Handler ======

func RouterHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log, llmc := deps()
	reqID := r.Header.Get("X-Request-ID")

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body error", http.StatusBadRequest)
		log.Error("mcp.route", zap.String("request_id", reqID), zap.Error(err))
		return
	}
	defer r.Body.Close()

	var req ToolRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		log.Error("mcp.route", zap.String("request_id", reqID), zap.Error(fmt.Errorf("unmarshal: %w", err)))
		return
	}

	// ===== 0) Multi-route =====
	if len(req.Routes) > 0 {
		routes := req.Routes
		if len(routes) > maxRoutes {
			routes = routes[:maxRoutes]
		}
		items := ExecuteRoutes(r.Context(), routes, reqID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"mode":            "mcp",
			"routes_executed": len(routes),
			"items":           items,
		})
		log.Info("mcp.route",
			zap.String("request_id", reqID),
			zap.String("decision_by", "explicit-plan"),
			zap.Int("routes", len(routes)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		question = extractQuestion(req.Params)
	}

	// 1) Explicit tool?
	tool := strings.TrimSpace(req.Tool)
	decision := "explicit"

	// 2) Heuristik cepat, lalu LLM
	if tool == "" {
		decision = ""
		if t := chooseByKeyword(question); t != "" {
			tool, decision = t, "keyword"
		} else if question != "" && llmc != nil {
			if t := chooseToolWithLLM(r.Context(), llmc, question); t != "" {
				tool, decision = t, "llm"
			}
		}
	}

	// 3) Default final
	if tool == "" {
		tool = DefaultTool
		decision = "default"
	}

	h, ok := Get(tool)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ToolResponse{Success: false, Error: "tool not found: " + tool})
		log.Warn("mcp.route",
			zap.String("request_id", reqID),
			zap.String("request_tool", req.Tool),
			zap.String("chosen_tool", tool),
			zap.String("decision_by", decision),
			zap.String("error", "tool not found"))
		return
	}

	// Forward: handler menerima hanya Params JSON (tanpa envelope)
	forward := []byte("{}")
	if len(req.Params) > 0 && !isJSONNullOrEmpty(req.Params) {
		forward = req.Params
	} else if question != "" {
		forward, _ = json.Marshal(map[string]string{"question": question})
	}
	r2 := r.Clone(r.Context())
	r2.Method = http.MethodPost
	r2.URL.RawQuery = ""
	r2.Body = io.NopCloser(bytes.NewReader(forward))
	r2.Header.Set("Content-Type", "application/json")

	h.ServeHTTP(w, r2)

	defs, _ := LoadToolDefs()
	log.Info("mcp.route",
		zap.String("request_id", reqID),
		zap.String("question", question),
		zap.String("request_tool", req.Tool),
		zap.String("chosen_tool", tool),
		zap.String("decision_by", decision),
		zap.Int("catalog_count", len(defs)),
		zap.Int("registered_count", len(List())),
		zap.Bool("has_llm", llmc != nil),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
}

// ====== Chooser helpers ======

func extractQuestion(params json.RawMessage) string {
	if len(params) == 0 {
		return ""
	}
	var m map[string]interface{}
	if err := json.Unmarshal(params, &m); err == nil {
		if q, ok := m["question"].(string); ok {
			return strings.TrimSpace(q)
		}
	}
	return ""
}

func chooseToolWithLLM(ctx context.Context, client llm.Client, question string) string {
	defs, err := LoadToolDefs()
	if err != nil || len(defs) == 0 {
		return ""
	}

	// Filter hanya tool yang terdaftar di registry runtime
	regNames := map[string]struct{}{}
	for _, name := range List() {
		regNames[strings.ToLower(name)] = struct{}{}
	}
	var filtered []ToolDef
	for _, d := range defs {
		if _, ok := regNames[strings.ToLower(d.Name)]; ok {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	// Timeout singkat agar responsif
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 4*time.Second)
		defer cancel()
	}

	out, err := client.Complete(ctx, chooserSystemPrompt(), buildChooserUserPrompt(question, filtered))
	if err != nil {
		return ""
	}

	out = sanitizeToolToken(out)
	for _, d := range filtered {
		if strings.EqualFold(out, d.Name) {
			return d.Name
		}
	}
	return ""
}

func chooserSystemPrompt() string {
	return `You are a tool router for a reservoir engineering service.
- Pick exactly ONE tool name from the list.
- Reply with the tool name only (e.g. compute_pressure_profile).
- If unsure, pick "` + DefaultTool + `".`
}

func buildChooserUserPrompt(question string, defs []ToolDef) string {
	var b strings.Builder
	b.WriteString("User question:\n")
	b.WriteString(question)
	b.WriteString("\n\nAvailable tools:\n")
	for i, d := range defs {
		desc := strings.TrimSpace(d.Description)
		if len(desc) > 300 {
			desc = desc[:300] + "…"
		}
		fmt.Fprintf(&b, "%d) %s: %s\n", i+1, d.Name, desc)
	}
	b.WriteString("\nReply with the tool name only.")
	return b.String()
}

var nonWord = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

func sanitizeToolToken(s string) string {
	s = strings.TrimSpace(s)
	s = nonWord.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
