// File: services/intelligence/interface.go
package intelligence

import (
	"context"
	"fmt"

	"digitalmindset/models"
)

// TextGenerator is the language model capability used by every pipeline
// stage. Implementations wrap every failure in *UpstreamError and never
// retry.
type TextGenerator interface {
	GenerateText(ctx context.Context, messages []models.ChatMessage, temperature float32) (string, error)
}

// UpstreamError reports a failed call to the external language model.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Failed to call %s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream marks the error for utils.KindOf.
func (e *UpstreamError) Upstream() bool { return true }

func upstream(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}
