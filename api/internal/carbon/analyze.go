package carbon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"carbon-coach/api/internal/llm"
)

const (
	ModeSingle = "single"
	ModeDay    = "day"
)

// AnalyzeRequest is a discriminated union on Mode. Entries, Date and Goal
// stay raw JSON: entry elements are deliberately unchecked and forwarded to
// the model as the client sent them.
type AnalyzeRequest struct {
	Mode        string            `json:"mode"`
	Description string            `json:"description"`
	Entries     []json.RawMessage `json:"entries"`
	Date        json.RawMessage   `json:"date"`
	Goal        json.RawMessage   `json:"goal"`
}

// Validate checks the inbound request shape. Handlers translate a non-nil
// error to a 400 without touching the gateway.
func (r AnalyzeRequest) Validate() error {
	switch r.Mode {
	case ModeSingle:
		if strings.TrimSpace(r.Description) == "" {
			return errors.New("description is required when mode is \"single\"")
		}
	case ModeDay:
		if r.Entries == nil {
			return errors.New("entries must be an array when mode is \"day\"")
		}
	default:
		return errors.New("mode must be \"single\" or \"day\"")
	}
	return nil
}

// Analyze sends the coaching payload to the model and returns the parsed
// analysis. No numeric sanitization here; the contract is string-shaped.
func Analyze(ctx context.Context, eng llm.Engine, model string, req AnalyzeRequest) (map[string]any, error) {
	payload := map[string]any{
		"mode": req.Mode,
		"date": req.Date,
		"goal": req.Goal,
	}
	if req.Mode == ModeSingle {
		payload["description"] = req.Description
	}
	if req.Entries != nil {
		payload["entries"] = req.Entries
	}
	user, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	content, err := eng.Complete(ctx, llm.Request{
		Model:  model,
		System: analyzeSystemPrompt,
		User:   string(user),
	})
	if err != nil {
		return nil, err
	}
	out, err := content.Normalize()
	if err != nil {
		return nil, err
	}
	return validateAnalysis(req.Mode, out)
}

// validateAnalysis requires a non-empty summary; every other field the model
// returned passes through untouched.
func validateAnalysis(mode string, m map[string]any) (map[string]any, error) {
	summary, ok := m["summary"].(string)
	if !ok || strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("%w: summary is missing or empty", llm.ErrMalformedResponse)
	}
	m["mode"] = mode
	return m, nil
}
