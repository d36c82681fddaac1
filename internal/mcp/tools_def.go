// internal/mcp/tools_def.go
// Katalog tool (nama, deskripsi, skema input ringkas) dari mcp-tools.json

package mcp

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed mcp-tools.json
var toolsJSON []byte

type ToolDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema string `json:"input_schema"`
}

type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

// LoadToolDefs mem-parse katalog sekali; nama kosong atau ganda dianggap error.
func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		toolDefs, toolDefsErr = parseCatalog(toolsJSON)
	})
	return toolDefs, toolDefsErr
}

func parseCatalog(raw []byte) ([]ToolDef, error) {
	var cat ToolCatalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(cat.Tools))
	for i, d := range cat.Tools {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("tool catalog entry %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("tool %q listed twice in catalog", name)
		}
		seen[name] = struct{}{}
		cat.Tools[i].Name = name
	}
	return cat.Tools, nil
}

// FindToolDef mencari definisi tool di katalog (case-insensitive).
func FindToolDef(name string) (ToolDef, bool) {
	defs, err := LoadToolDefs()
	if err != nil {
		return ToolDef{}, false
	}
	for _, d := range defs {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return ToolDef{}, false
}
