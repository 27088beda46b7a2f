// Package llm talks to OpenAI-compatible chat completion APIs.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the model cannot be reached or the circuit is open.
var ErrUnavailable = errors.New("llm: completion service unavailable")

// Prompt is a single-turn chat prompt.
type Prompt struct {
	System string
	User   string
}

type Completer interface {
	// Complete returns the text of the first choice of the model's reply.
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
