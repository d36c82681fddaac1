// internal/mcp/registry_test.go

package mcp

import (
	"net/http"
	"strings"
	"testing"
)

func TestParseCatalogRejectsBadEntries(t *testing.T) {
	if _, err := parseCatalog([]byte(`{"tools":[{"name":"a"},{"name":" a "}]}`)); err == nil {
		t.Fatalf("duplicate names must fail")
	}
	if _, err := parseCatalog([]byte(`{"tools":[{"name":""}]}`)); err == nil {
		t.Fatalf("empty name must fail")
	}
	defs, err := parseCatalog([]byte(`{"tools":[{"name":" x ","description":"d"}]}`))
	if err != nil || defs[0].Name != "x" {
		t.Fatalf("names must be trimmed: %+v %v", defs, err)
	}
}

func TestCatalogAndVerify(t *testing.T) {
	registerFakes(t)
	if err := VerifyCatalog(); err != nil {
		t.Fatalf("all catalog tools are registered: %v", err)
	}
	infos, err := Catalog()
	if err != nil {
		t.Fatal(err)
	}
	var extra bool
	for _, ti := range infos {
		if !ti.Registered {
			t.Fatalf("tool %q must be registered", ti.Name)
		}
		if ti.Name == "always_fails" {
			extra = ti.Description == ""
		}
	}
	if !extra {
		t.Fatalf("registry-only tool must be listed without description")
	}

	d, ok := FindToolDef("COMPUTE_SKIN_SWEEP")
	if !ok || !strings.Contains(d.Description, "skin") {
		t.Fatalf("FindToolDef must be case-insensitive: %+v", d)
	}
}

func TestVerifyCatalogReportsMissing(t *testing.T) {
	registerFakes(t)
	reg.mu.Lock()
	h := reg.data[DefaultTool]
	delete(reg.data, DefaultTool)
	reg.mu.Unlock()
	defer Register(DefaultTool, h)

	err := VerifyCatalog()
	if err == nil || !strings.Contains(err.Error(), DefaultTool) {
		t.Fatalf("expected missing %s, got %v", DefaultTool, err)
	}
}

func TestServeUnknown(t *testing.T) {
	rec := newMemRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/tools/nope", nil)
	Serve(rec, req, "nope")
	if rec.status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.status)
	}
}
