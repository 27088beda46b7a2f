package errx_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ferdiebergado/bookstore/internal/pkg/errx"
)

func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Canceled", context.Canceled, true},
		{"Deadline exceeded", context.DeadlineExceeded, true},
		{"Wrapped canceled", fmt.Errorf("query books: %w", context.Canceled), true},
		{"Other error", errors.New("connection refused"), false},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errx.IsContextError(tt.err); got != tt.want {
				t.Errorf("errx.IsContextError(%v) = %t, want: %t", tt.err, got, tt.want)
			}
		})
	}
}
