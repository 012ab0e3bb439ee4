package environment

import (
	"context"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Staging     Environment = "staging"
)

// Parse normalizes an environment name, mapping the short aliases "dev",
// "stage" and "prod". Other names are returned lowercased as is.
func Parse(name string) Environment {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "dev":
		return Development
	case "stage":
		return Staging
	case "prod":
		return Production
	default:
		return Environment(n)
	}
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsDevelopment() bool { return e == Development }

type contextKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment from ctx, or "" when none is set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	return Parse(string(FromContext(ctx))).IsProduction()
}

func IsDevelopment(ctx context.Context) bool {
	return Parse(string(FromContext(ctx))).IsDevelopment()
}

func IsStaging(ctx context.Context) bool {
	return Parse(string(FromContext(ctx))).IsStaging()
}
