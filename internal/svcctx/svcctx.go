// Package svcctx threads the services the inference pipeline needs through
// a context.Context: one struct, one context key, small accessor functions
// per field.
package svcctx

import (
	"context"
	"log/slog"
	"math/rand"
)

// Seed is the fixed global seed every run derives its randomness from, so
// that negative sampling and classifier initialization are reproducible
// across invocations on identical input.
const Seed = 42

// Services holds the resources threaded through the pipeline via context.
type Services struct {
	Logger *slog.Logger
	Rand   *rand.Rand
}

// NewServices builds a Services with a fresh seeded random source.
func NewServices(logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}
	return &Services{
		Logger: logger,
		Rand:   rand.New(rand.NewSource(Seed)),
	}
}

type servicesKey struct{}

// With returns a new context carrying s.
func With(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// From extracts Services from ctx, returning a fresh default instance if
// none was attached.
func From(ctx context.Context) *Services {
	if s, ok := ctx.Value(servicesKey{}).(*Services); ok && s != nil {
		return s
	}
	return NewServices(nil)
}

// LoggerFrom is a convenience accessor for the common case of only needing
// the logger.
func LoggerFrom(ctx context.Context) *slog.Logger {
	return From(ctx).Logger
}
