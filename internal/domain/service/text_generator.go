package service

import (
	"context"
)

// TextGenerator defines the interface for single-shot text generation
// against a language model. Callers own prompt construction and response
// parsing; implementations only move text across the wire.
type TextGenerator interface {
	// Generate sends a prompt and returns the raw model output.
	Generate(ctx context.Context, prompt string) (string, error)
}
