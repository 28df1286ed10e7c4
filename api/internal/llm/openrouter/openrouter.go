package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"carbon-coach/api/internal/llm"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

type Engine struct {
	APIKey string
	// BaseURL can be pointed at a test server; empty means the real API.
	BaseURL string
	// SiteURL/AppName become the HTTP-Referer and X-Title attribution
	// headers OpenRouter uses for app rankings.
	SiteURL string
	AppName string
	httpc   *http.Client
}

func New(key, siteURL, appName string) *Engine {
	return &Engine{
		APIKey:  key,
		SiteURL: siteURL,
		AppName: appName,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string { return "openrouter" }

func (e *Engine) Complete(ctx context.Context, in llm.Request) (llm.Content, error) {
	if strings.TrimSpace(e.APIKey) == "" {
		return llm.Content{}, llm.ErrMissingCredential
	}

	body := map[string]any{
		"model": in.Model,
		"messages": []any{
			map[string]any{"role": "system", "content": in.System},
			map[string]any{"role": "user", "content": in.User},
		},
		"temperature":     0,
		"response_format": map[string]any{"type": "json_object"},
	}
	payload, _ := json.Marshal(body)

	base := e.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(base, "/")+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return llm.Content{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)
	if e.SiteURL != "" {
		req.Header.Set("HTTP-Referer", e.SiteURL)
	}
	if e.AppName != "" {
		req.Header.Set("X-Title", e.AppName)
	}

	resp, err := e.httpc.Do(req)
	if err != nil {
		return llm.Content{}, fmt.Errorf("openrouter: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		x, _ := io.ReadAll(resp.Body)
		return llm.Content{}, &llm.GatewayError{Status: resp.StatusCode, Body: strings.TrimSpace(string(x))}
	}

	// Content arrives as a plain string or a block list depending on the
	// routed upstream model; llm.Content absorbs both.
	var raw struct {
		Choices []struct {
			Message struct {
				Content *llm.Content `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return llm.Content{}, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	if len(raw.Choices) == 0 || raw.Choices[0].Message.Content == nil {
		return llm.Content{}, llm.ErrNoContent
	}
	return *raw.Choices[0].Message.Content, nil
}
