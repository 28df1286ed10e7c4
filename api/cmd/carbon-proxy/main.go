package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"carbon-coach/api/internal/config"
	"carbon-coach/api/internal/handle"
	"carbon-coach/api/internal/llm"
	"carbon-coach/api/internal/llm/gemini"
	"carbon-coach/api/internal/llm/openrouter"
)

func main() {
	cfg := config.Load()

	engines := &llm.Engines{
		OpenRouter: openrouter.New(cfg.OpenRouterAPIKey, cfg.SiteURL, cfg.AppName),
		Gemini:     gemini.New(cfg.GeminiAPIKey),
	}
	eng, err := engines.Get(cfg.Provider)
	if err != nil {
		log.Fatal(err)
	}

	h := handle.New(cfg, eng)

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Health)
	mux.HandleFunc("/api/estimate", h.Estimate)
	mux.HandleFunc("/api/analyze", h.Analyze)

	// The API is meant to be called from any web client, so CORS is open.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := ":" + cfg.Port
	log.Printf("carbon-coach api listening on %s (provider=%s)", addr, eng.Name())
	log.Fatal(http.ListenAndServe(addr, c.Handler(mux)))
}
