package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"carbon-coach/api/internal/llm"
)

type Engine struct {
	APIKey string
}

func New(key string) *Engine {
	return &Engine{APIKey: key}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) Complete(ctx context.Context, in llm.Request) (llm.Content, error) {
	if strings.TrimSpace(e.APIKey) == "" {
		return llm.Content{}, llm.ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return llm.Content{}, fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(in.Model)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(in.System)}}

	resp, err := model.GenerateContent(ctx, genai.Text(in.User))
	if err != nil {
		return llm.Content{}, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return llm.Content{}, llm.ErrNoContent
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return llm.Content{}, llm.ErrNoContent
	}
	return llm.TextContent(string(text)), nil
}
