package llm

import (
	"context"
	"fmt"
	"strings"
)

// Request is a single chat-style completion: one system turn, one user turn,
// structured JSON output requested from the model.
type Request struct {
	Model  string
	System string
	User   string
}

type Engine interface {
	Name() string
	Complete(ctx context.Context, req Request) (Content, error)
}

type Engines struct {
	OpenRouter Engine
	Gemini     Engine
}

// Get resolves a provider name to its engine. Empty name means the default
// OpenRouter engine.
func (e *Engines) Get(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "openrouter":
		return e.OpenRouter, nil
	case "gemini":
		return e.Gemini, nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", name)
}
