package handle

import (
	"encoding/json"
	"net/http"

	"carbon-coach/api/internal/carbon"
)

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req carbon.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json body")
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(w, err.Error())
		return
	}

	out, err := carbon.Analyze(r.Context(), h.eng, h.cfg.AnalyzeModel, req)
	if err != nil {
		h.fail(w, "analysis", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
