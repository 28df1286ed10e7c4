package handle

import (
	"encoding/json"
	"log"
	"net/http"

	"carbon-coach/api/internal/config"
	"carbon-coach/api/internal/llm"
)

type Handle struct {
	cfg *config.Config
	eng llm.Engine
}

func New(cfg *config.Config, eng llm.Engine) *Handle {
	return &Handle{cfg: cfg, eng: eng}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"error": msg})
}

// fail is the single translation point from internal errors to a 500.
// The real error is logged server-side; clients get a generic message, with
// the detail string attached only in development mode.
func (h *Handle) fail(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	body := map[string]any{"error": op + " failed"}
	if h.cfg.DevMode {
		body["details"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

// Health answers the liveness probe on GET /.
func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "carbon-coach api is running",
	})
}
