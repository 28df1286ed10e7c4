package carbon

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"carbon-coach/api/internal/llm"
)

type EstimateRequest struct {
	Description string `json:"description"`
}

// Estimate asks the model for a carbon estimate of one described activity
// and returns the validated, sanitized payload.
func Estimate(ctx context.Context, eng llm.Engine, model, description string) (map[string]any, error) {
	content, err := eng.Complete(ctx, llm.Request{
		Model:  model,
		System: estimateSystemPrompt,
		User:   description,
	})
	if err != nil {
		return nil, err
	}
	out, err := content.Normalize()
	if err != nil {
		return nil, err
	}
	return validateEstimate(out)
}

// validateEstimate enforces the estimate contract: numeric carbon_grams and
// carbon_calories, string category. assumptions and explanation pass through
// even when absent; clients then see null rather than an error.
func validateEstimate(m map[string]any) (map[string]any, error) {
	grams, ok := asNumber(m["carbon_grams"])
	if !ok {
		return nil, fmt.Errorf("%w: carbon_grams is not a number", llm.ErrMalformedResponse)
	}
	calories, ok := asNumber(m["carbon_calories"])
	if !ok {
		return nil, fmt.Errorf("%w: carbon_calories is not a number", llm.ErrMalformedResponse)
	}
	category, ok := m["category"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: category is not a string", llm.ErrMalformedResponse)
	}

	return map[string]any{
		"category":        category,
		"carbon_grams":    Sanitize(grams),
		"carbon_calories": Sanitize(calories),
		"assumptions":     m["assumptions"],
		"explanation":     m["explanation"],
	}, nil
}

// Sanitize clamps a model-produced amount to a non-negative integer.
// Rounding is half-away-from-zero (math.Round); inputs are expected
// non-negative, so the tie direction does not matter in practice.
func Sanitize(v float64) int {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	return int(r)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
