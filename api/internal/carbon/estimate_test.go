package carbon

import (
	"context"
	"errors"
	"testing"

	"carbon-coach/api/internal/llm"
)

type fakeEngine struct {
	content llm.Content
	err     error
	calls   int
	last    llm.Request
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Complete(_ context.Context, req llm.Request) (llm.Content, error) {
	f.calls++
	f.last = req
	return f.content, f.err
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{5, 5},
		{2.4, 2},
		{2.5, 3},
		{127.5, 128},
		{-3.7, 0},
		{-0.4, 0},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%v) = %d, want %d", c.in, got, c.want)
		}
	}

	// Idempotence: sanitizing an already-sanitized value changes nothing.
	for _, c := range cases {
		once := Sanitize(c.in)
		if twice := Sanitize(float64(once)); twice != once {
			t.Errorf("Sanitize not idempotent for %v: %d then %d", c.in, once, twice)
		}
	}
}

func TestEstimateSanitizesNumbers(t *testing.T) {
	f := &fakeEngine{content: llm.StructuredContent(map[string]any{
		"category":        "transport",
		"carbon_grams":    -12.4,
		"carbon_calories": 127.5,
		"explanation":     "short drive",
	})}

	out, err := Estimate(context.Background(), f, "fast", "drove to work")
	if err != nil {
		t.Fatal(err)
	}
	if out["carbon_grams"] != 0 {
		t.Errorf("carbon_grams = %v, want 0", out["carbon_grams"])
	}
	if out["carbon_calories"] != 128 {
		t.Errorf("carbon_calories = %v, want 128", out["carbon_calories"])
	}
	if out["category"] != "transport" {
		t.Errorf("category = %v", out["category"])
	}
	// Absent assumptions pass through as null rather than failing.
	if v, present := out["assumptions"]; !present || v != nil {
		t.Errorf("assumptions = %v (present=%v), want null", v, present)
	}
	if f.last.User != "drove to work" {
		t.Errorf("user turn = %q", f.last.User)
	}
}

func TestEstimateTextContent(t *testing.T) {
	f := &fakeEngine{content: llm.TextContent(`{"carbon_grams":5,"carbon_calories":5,"category":"food","assumptions":"x","explanation":"y"}`)}

	out, err := Estimate(context.Background(), f, "fast", "ate an apple")
	if err != nil {
		t.Fatal(err)
	}
	if out["carbon_grams"] != 5 || out["carbon_calories"] != 5 {
		t.Fatalf("got %v", out)
	}
	if out["assumptions"] != "x" || out["explanation"] != "y" {
		t.Fatalf("got %v", out)
	}
}

func TestEstimateContract(t *testing.T) {
	cases := []map[string]any{
		{"carbon_grams": "5", "carbon_calories": 5, "category": "food"},
		{"carbon_grams": 5, "category": "food"},
		{"carbon_grams": 5, "carbon_calories": 5, "category": 7},
		{},
	}
	for i, m := range cases {
		f := &fakeEngine{content: llm.StructuredContent(m)}
		if _, err := Estimate(context.Background(), f, "fast", "x"); !errors.Is(err, llm.ErrMalformedResponse) {
			t.Errorf("case %d: want ErrMalformedResponse, got %v", i, err)
		}
	}
}

func TestEstimatePropagatesGatewayErrors(t *testing.T) {
	f := &fakeEngine{err: llm.ErrMissingCredential}
	if _, err := Estimate(context.Background(), f, "fast", "x"); !errors.Is(err, llm.ErrMissingCredential) {
		t.Fatalf("got %v", err)
	}
}
