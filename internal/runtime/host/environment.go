package host

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/CosmWasm/blsverify/internal/runtime/gas"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const envKey contextKey = "env"

// Environment is the per-call state host functions need. It travels in the
// context passed to the guest export.
type Environment struct {
	Gas    gas.Meter
	Config gas.Config
	Logger zerolog.Logger
}

// NewEnvironment creates an environment with a fresh meter.
func NewEnvironment(gasLimit uint64, cfg gas.Config, logger zerolog.Logger) *Environment {
	return &Environment{
		Gas:    gas.NewDefaultMeter(gasLimit),
		Config: cfg,
		Logger: logger,
	}
}

func WithEnvironment(ctx context.Context, env *Environment) context.Context {
	return context.WithValue(ctx, envKey, env)
}

func EnvironmentFrom(ctx context.Context) (*Environment, bool) {
	env, ok := ctx.Value(envKey).(*Environment)
	return env, ok && env != nil
}
