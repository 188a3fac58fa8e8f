// Package provider defines the outbound text generation contract used by the
// sweet assistant.
package provider

import (
	"context"
	"errors"
)

// ErrMissingAPIKey signals that no credentials are configured for the
// generation backend.
var ErrMissingAPIKey = errors.New("generation api key is missing")

// TextGenerator produces free-form text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
