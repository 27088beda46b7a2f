package llm

import (
	"context"
	"errors"
)

var _ Completer = (*StubCompleter)(nil)

type StubCompleter struct {
	CompleteFunc func(ctx context.Context, prompt Prompt) (string, error)
}

func (s *StubCompleter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if s.CompleteFunc == nil {
		return "", errors.New("Complete() not implemented by stub")
	}
	return s.CompleteFunc(ctx, prompt)
}
