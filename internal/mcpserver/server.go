// internal/mcpserver/server.go
// Server MCP resmi (stdio / streamable HTTP) di atas registry tool yang sama

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	skinmcp "mcp-skin/internal/mcp"
	"mcp-skin/internal/util"
)

// --- Input types ---

type ProfileInput struct {
	WellID              string   `json:"well_id,omitempty" jsonschema:"Stored well whose parameters are used as the base"`
	AreaAcres           *float64 `json:"area_acres,omitempty" jsonschema:"Drainage area in acres"`
	WellboreRadiusFt    *float64 `json:"wellbore_radius_ft,omitempty" jsonschema:"Wellbore radius rw in ft"`
	BoundaryPressurePsi *float64 `json:"boundary_pressure_psi,omitempty" jsonschema:"Pressure at the drainage boundary pe in psi"`
	OilFVF              *float64 `json:"oil_fvf_rb_per_stb,omitempty" jsonschema:"Oil formation volume factor Bo in rb/STB"`
	FlowRateSTBD        *float64 `json:"flow_rate_stb_per_day,omitempty" jsonschema:"Oil flow rate q in STB/day"`
	PermeabilityMD      *float64 `json:"permeability_md,omitempty" jsonschema:"Permeability k in mD"`
	ThicknessFt         *float64 `json:"thickness_ft,omitempty" jsonschema:"Net pay thickness h in ft"`
	ViscosityCP         *float64 `json:"viscosity_cp,omitempty" jsonschema:"Oil viscosity mu in cP"`
	Skin                *float64 `json:"skin,omitempty" jsonschema:"Skin factor S (positive = damage, negative = stimulation)"`
}

type SweepInput struct {
	ProfileInput
	Skins []float64 `json:"skins,omitempty" jsonschema:"Skin values to evaluate (max 50)"`
}

type ExplainInput struct {
	ProfileInput
	Question string `json:"question,omitempty" jsonschema:"Question to answer about the skin effect"`
	Lang     string `json:"lang,omitempty" jsonschema:"Answer language, e.g. en or id"`
}

type WellInput struct {
	WellID  string   `json:"well_id,omitempty" jsonschema:"Well to look up; empty lists wells"`
	WellIDs []string `json:"well_ids,omitempty" jsonschema:"Several wells to look up at once"`
	Field   string   `json:"field,omitempty" jsonschema:"Field name filter for listing"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Page size for listing"`
	Offset  int      `json:"offset,omitempty" jsonschema:"Page offset for listing"`
}

type EmptyInput struct{}

// New membuat server MCP; setiap tool diteruskan ke handler registry
// sehingga perilakunya sama dengan /mcp/route. Tool harus sudah diregister.
func New(version string) (*mcp.Server, error) {
	if err := skinmcp.VerifyCatalog(); err != nil {
		return nil, err
	}
	tool := func(name string) *mcp.Tool {
		d, _ := skinmcp.FindToolDef(name)
		return &mcp.Tool{Name: name, Description: d.Description}
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "skin-profile-mcp",
		Version: version,
	}, nil)

	mcp.AddTool(srv, tool("compute_pressure_profile"), bridge[ProfileInput]("compute_pressure_profile"))
	mcp.AddTool(srv, tool("compute_skin_sweep"), bridge[SweepInput]("compute_skin_sweep"))
	mcp.AddTool(srv, tool("explain_skin_effect"), bridge[ExplainInput]("explain_skin_effect"))
	mcp.AddTool(srv, tool("get_well_parameters"), bridge[WellInput]("get_well_parameters"))
	mcp.AddTool(srv, tool("get_form_defaults"), bridge[EmptyInput]("get_form_defaults"))
	return srv, nil
}

// HTTPHandler membungkus server untuk transport streamable HTTP.
func HTTPHandler(srv *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)
}

func bridge[In any](name string) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		raw, err := json.Marshal(in)
		if err != nil {
			return toolError("Failed to encode input: %v", err), nil, nil
		}
		res := skinmcp.ExecuteRoutes(ctx, []skinmcp.Route{{Tool: name, Params: raw}}, util.NewID())[0]
		if res.Status >= http.StatusBadRequest {
			return toolError("%s failed (%d): %s", name, res.Status, res.Error), nil, nil
		}
		return toolJSON(res.Data)
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
