// Package ai provides the language model client used for metadata
// generation and visibility audits.
package ai

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"

	"vault/config"
	"vault/internal/domain/service"
)

const defaultModel = "gemini-2.5-flash"

// geminiGenerator implements service.TextGenerator on top of the Gemini API.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a text generator backed by the Gemini API.
// An empty API key is an error: callers that can tolerate a missing model
// decide their fallback themselves.
func NewGeminiGenerator(ctx context.Context, cfg *config.Config) (service.TextGenerator, error) {
	if cfg.Gemini == nil || cfg.Gemini.APIKey == "" {
		return nil, errors.New("gemini api key must be provided")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = defaultModel
	}

	return &geminiGenerator{
		client: client,
		model:  model,
	}, nil
}

// Generate sends a prompt and returns the raw model output.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("model returned an empty response")
	}

	return text, nil
}
