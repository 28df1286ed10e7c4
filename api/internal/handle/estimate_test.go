package handle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carbon-coach/api/internal/llm"
)

func TestEstimateRejectsBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"blank description", `{"description":""}`},
		{"whitespace description", `{"description":"   "}`},
		{"invalid json", `{`},
	}
	for _, c := range cases {
		f := &fakeEngine{}
		h := newHandle(f, false)

		rr, out := post(t, h.Estimate, c.body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", c.name, rr.Code)
		}
		if out["error"] == nil {
			t.Errorf("%s: missing error message", c.name)
		}
		if f.calls != 0 {
			t.Errorf("%s: gateway called %d times, want 0", c.name, f.calls)
		}
	}
}

func TestEstimateMethodGuard(t *testing.T) {
	h := newHandle(&fakeEngine{}, false)
	rr := httptest.NewRecorder()
	h.Estimate(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestEstimateSuccess(t *testing.T) {
	f := &fakeEngine{content: llm.TextContent(`{"carbon_grams":180.6,"carbon_calories":-2,"category":"food","assumptions":"medium portion","explanation":"dairy is carbon heavy"}`)}
	h := newHandle(f, false)

	rr, out := post(t, h.Estimate, `{"description":"a glass of milk"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %v", rr.Code, out)
	}
	if out["carbon_grams"] != float64(181) {
		t.Errorf("carbon_grams = %v", out["carbon_grams"])
	}
	if out["carbon_calories"] != float64(0) {
		t.Errorf("carbon_calories = %v", out["carbon_calories"])
	}
	if out["category"] != "food" || out["assumptions"] != "medium portion" {
		t.Errorf("got %v", out)
	}
	if f.calls != 1 {
		t.Errorf("gateway called %d times", f.calls)
	}
}

func TestEstimateGatewayFailureIsGeneric(t *testing.T) {
	f := &fakeEngine{err: &llm.GatewayError{Status: 500, Body: "upstream exploded"}}
	h := newHandle(f, false)

	rr, out := post(t, h.Estimate, `{"description":"drove 10km"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rr.Code)
	}
	if out["error"] == nil {
		t.Fatal("missing error message")
	}
	if _, present := out["details"]; present {
		t.Fatal("details leaked outside development mode")
	}
	if s, _ := out["error"].(string); strings.Contains(s, "upstream exploded") {
		t.Fatal("upstream body leaked in error message")
	}
}

func TestEstimateDevModeExposesDetails(t *testing.T) {
	f := &fakeEngine{err: llm.ErrMissingCredential}
	h := newHandle(f, true)

	rr, out := post(t, h.Estimate, `{"description":"drove 10km"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rr.Code)
	}
	details, _ := out["details"].(string)
	if !strings.Contains(details, "api key") {
		t.Fatalf("details = %q", details)
	}
}

func TestEstimateMalformedModelOutput(t *testing.T) {
	f := &fakeEngine{content: llm.TextContent("sorry, I can't help with that")}
	h := newHandle(f, false)

	rr, _ := post(t, h.Estimate, `{"description":"drove 10km"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rr.Code)
	}
}
