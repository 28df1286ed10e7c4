package handle

import (
	"encoding/json"
	"net/http"
	"strings"

	"carbon-coach/api/internal/carbon"
)

func (h *Handle) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req carbon.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		badRequest(w, "description is required")
		return
	}

	out, err := carbon.Estimate(r.Context(), h.eng, h.cfg.EstimateModel, req.Description)
	if err != nil {
		h.fail(w, "estimate", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
