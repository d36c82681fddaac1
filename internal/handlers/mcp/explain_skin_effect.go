// internal/handlers/mcp/explain_skin_effect.go
// MCP Tool: explain_skin_effect - narasi dampak skin terhadap deliverability

package mcp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"mcp-skin/internal/mcp/llm"
	"mcp-skin/internal/services"
)

type explainReq struct {
	paramsReq
	Question string `json:"question,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

type ExplainResponse struct {
	Answer              string  `json:"answer"`
	Source              string  `json:"source"` // llm | fallback
	Skin                float64 `json:"skin"`
	SkinPressureDropPsi float64 `json:"skin_pressure_drop_psi"`
	IdealWellborePsi    float64 `json:"ideal_wellbore_psi"`
	DamagedWellborePsi  float64 `json:"damaged_wellbore_psi"`
	DrainageRadiusFt    float64 `json:"drainage_radius_ft"`
}

// ======= LLM client (lazy init) =======
var (
	llmMu      sync.Mutex
	llmClient  llm.Client
	llmInitErr error
	llmInited  bool
)

// SetLLMClient meng-inject client (app wiring / test). nil = paksa fallback.
func SetLLMClient(c llm.Client) {
	llmMu.Lock()
	defer llmMu.Unlock()
	llmClient = c
	llmInited = true
	llmInitErr = nil
	if c == nil {
		llmInitErr = llm.ErrNoAPIKey
	}
}

func getLLM() (llm.Client, error) {
	llmMu.Lock()
	defer llmMu.Unlock()
	if !llmInited {
		llmClient, llmInitErr = llm.NewFromEnv()
		llmInited = true
	}
	return llmClient, llmInitErr
}

func llmReady() bool {
	c, err := getLLM()
	return err == nil && c != nil
}

func ExplainSkinEffectHandler(w http.ResponseWriter, r *http.Request) {
	var in explainReq
	err := decodeInput(r, &in, func(q url.Values) error {
		base, err := parseQuery(q)
		in.paramsReq = base
		in.Question = strings.TrimSpace(q.Get("question"))
		in.Lang = strings.TrimSpace(q.Get("lang"))
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	params, skin, err := resolveParams(r.Context(), in.paramsReq)
	if err != nil {
		writeError(w, err)
		return
	}
	cmp, _, err := profileCache.GetOrCompute(r.Context(), params, skin)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ExplainResponse{
		Source:              "fallback",
		Skin:                float64(skin),
		SkinPressureDropPsi: cmp.SkinPressureDropPsi,
		IdealWellborePsi:    cmp.IdealWellborePsi,
		DamagedWellborePsi:  cmp.DamagedWellborePsi,
		DrainageRadiusFt:    cmp.DrainageRadiusFt,
	}

	// Coba LLM kalau ada client, jika tidak ada / gagal -> fallback deterministik
	if c, err := getLLM(); err == nil && c != nil {
		answer, err := c.Complete(r.Context(), explainSystemPrompt(), buildExplainPrompt(in, params, cmp))
		if err == nil && strings.TrimSpace(answer) != "" {
			resp.Answer = strings.TrimSpace(answer)
			resp.Source = "llm"
		} else if err != nil {
			logger.Warn("explain.llm_failed", zap.Error(err))
		}
	}
	if resp.Source == "fallback" {
		resp.Answer = fallbackExplanation(params, cmp)
		explainFall.Add(1)
	} else {
		explainLLM.Add(1)
	}

	writeJSON(w, http.StatusOK, resp)
}

func explainSystemPrompt() string {
	return `You are a reservoir engineering assistant.
Explain steady-state radial pressure profiles and near-wellbore skin damage.
Use ONLY the numbers provided; do not invent measurements.
Units are oilfield units (psi, ft, STB/day, cP, mD). Be concise.`
}

func buildExplainPrompt(in explainReq, p services.ReservoirParameters, c *services.ProfileComparison) string {
	var b strings.Builder
	q := in.Question
	if q == "" {
		q = "How much does the skin damage reduce the pressure near the wellbore?"
	}
	b.WriteString("Question:\n")
	b.WriteString(q)
	b.WriteString("\n\nInputs:\n")
	fmt.Fprintf(&b, "- area %.3g acres, rw %.3g ft, pe %.4g psi, Bo %.3g, q %.4g STB/d, k %.4g mD, h %.4g ft, mu %.3g cP\n",
		p.AreaAcres, p.WellboreRadiusFt, p.BoundaryPressurePsi, p.OilFVF,
		p.FlowRateSTBD, p.PermeabilityMD, p.ThicknessFt, p.ViscosityCP)
	fmt.Fprintf(&b, "- skin %.3g\n\nResults:\n", float64(c.Skin))
	b.WriteString(summaryLines(c))
	if in.Lang != "" {
		fmt.Fprintf(&b, "\nAnswer in language: %s\n", in.Lang)
	}
	return b.String()
}

func summaryLines(c *services.ProfileComparison) string {
	return fmt.Sprintf(
		"- drainage radius %.1f ft\n- ideal wellbore pressure %.1f psi\n- damaged wellbore pressure %.1f psi\n- additional pressure drop due to skin %.1f psi\n- damaged zone sampled to %.0f ft, profile reconnects at %.0f ft\n",
		c.DrainageRadiusFt, c.IdealWellborePsi, c.DamagedWellborePsi, c.SkinPressureDropPsi,
		services.DamagedZoneRadiusFt, services.ReconnectRadiusFt)
}

// fallbackExplanation: ringkasan deterministik tanpa LLM.
func fallbackExplanation(p services.ReservoirParameters, c *services.ProfileComparison) string {
	var b strings.Builder
	switch {
	case c.Skin > 0:
		fmt.Fprintf(&b, "Skin %.2f represents formation damage: ", float64(c.Skin))
		fmt.Fprintf(&b, "the wellbore pressure falls from %.1f psi (ideal) to %.1f psi, an extra drop of %.1f psi.",
			c.IdealWellborePsi, c.DamagedWellborePsi, c.SkinPressureDropPsi)
	case c.Skin < 0:
		fmt.Fprintf(&b, "Skin %.2f represents stimulation: ", float64(c.Skin))
		fmt.Fprintf(&b, "the wellbore pressure rises from %.1f psi (ideal) to %.1f psi, %.1f psi less drawdown.",
			c.IdealWellborePsi, c.DamagedWellborePsi, -c.SkinPressureDropPsi)
	default:
		fmt.Fprintf(&b, "Skin is zero: the damaged profile equals the ideal profile (wellbore pressure %.1f psi).",
			c.IdealWellborePsi)
	}
	if p.FlowRateSTBD == 0 {
		b.WriteString(" With zero flow rate the pressure is flat at the boundary value.")
	}
	fmt.Fprintf(&b, " Drainage radius is %.1f ft; beyond %.0f ft the profile follows the undamaged curve.",
		c.DrainageRadiusFt, services.ReconnectRadiusFt)
	return b.String()
}
