package web

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoParams is returned when the request context holds no decoded payload
// of the requested type.
var ErrNoParams = errors.New("no decoded payload in context")

type paramsKey struct{}

// NewContextWithParams stores the decoded request payload in ctx.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(baseCtx context.Context, params any) context.Context {
	return context.WithValue(baseCtx, paramsKey{}, params)
}

// ParamsFromContext returns the payload stored by NewContextWithParams.
//
//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	params, ok := ctx.Value(paramsKey{}).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T", ErrNoParams, zero)
	}
	return params, nil
}
