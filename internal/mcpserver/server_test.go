// internal/mcpserver/server_test.go

package mcpserver_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mcp-skin/internal/app"
	mcphandlers "mcp-skin/internal/handlers/mcp"
	"mcp-skin/internal/mcpserver"
)

// connect membuat server + client lewat in-memory transport.
func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	app.RegisterMCPTools()
	mcphandlers.SetLLMClient(nil)
	mcphandlers.SetWellSource(nil)

	srv, err := mcpserver.New("test")
	if err != nil {
		t.Fatalf("mcpserver.New: %v", err)
	}
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := srv.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call(t *testing.T, s *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := s.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if len(res.Content) == 0 {
		t.Fatalf("CallTool(%s): empty content", name)
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent, got %T", name, res.Content[0])
	}
	return tc.Text, res.IsError
}

func TestListTools(t *testing.T) {
	s := connect(t)
	res, err := s.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, tool := range res.Tools {
		got[tool.Name] = true
		if tool.Description == "" {
			t.Fatalf("tool %s has no description", tool.Name)
		}
	}
	for _, name := range []string{"compute_pressure_profile", "compute_skin_sweep", "explain_skin_effect", "get_well_parameters", "get_form_defaults"} {
		if !got[name] {
			t.Fatalf("missing tool %s", name)
		}
	}
}

func TestComputeProfileTool(t *testing.T) {
	s := connect(t)
	text, isErr := call(t, s, "compute_pressure_profile", map[string]any{"skin": 2, "thickness_ft": 20})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	var out struct {
		SkinPressureDropPsi float64 `json:"skin_pressure_drop_psi"`
		Damaged             []any   `json:"damaged"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 141.2*1000*1*1*2/(100*20)
	if out.SkinPressureDropPsi < 141.19 || out.SkinPressureDropPsi > 141.21 || len(out.Damaged) != 501 {
		t.Fatalf("unexpected result: drop=%g points=%d", out.SkinPressureDropPsi, len(out.Damaged))
	}
}

func TestToolErrors(t *testing.T) {
	s := connect(t)
	text, isErr := call(t, s, "compute_pressure_profile", map[string]any{"permeability_md": 0})
	if !isErr || !strings.Contains(text, "400") {
		t.Fatalf("expected 400 tool error, got %v %s", isErr, text)
	}
	text, isErr = call(t, s, "get_well_parameters", map[string]any{"well_id": "W-01"})
	if !isErr || !strings.Contains(text, "503") {
		t.Fatalf("expected 503 tool error without repo, got %v %s", isErr, text)
	}
}

func TestExplainAndDefaultsTools(t *testing.T) {
	s := connect(t)
	text, isErr := call(t, s, "explain_skin_effect", map[string]any{"skin": -1})
	if isErr || !strings.Contains(text, "stimulation") {
		t.Fatalf("unexpected explain: %s", text)
	}
	text, isErr = call(t, s, "get_form_defaults", nil)
	if isErr || !strings.Contains(text, `"limits"`) {
		t.Fatalf("unexpected defaults: %s", text)
	}
	text, isErr = call(t, s, "compute_skin_sweep", map[string]any{"skins": []float64{1, 2, 3}})
	if isErr || strings.Count(text, `"skin":`) < 3 {
		t.Fatalf("unexpected sweep: %s", text)
	}
}
