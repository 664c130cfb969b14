package scope

import "context"

// Scope carries the authenticated caller identity through a request.
type Scope struct {
	UserID string
	Email  string
	Role   string
}

// Manager verifies a bearer token and extracts its scope.
type Manager interface {
	Verify(token string) (Scope, error)
}

type contextKey struct{}

// SetScopeToContext returns a context carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, contextKey{}, sc)
}

// GetScopeFromContext extracts the scope from ctx, zero value if absent.
func GetScopeFromContext(ctx context.Context) Scope {
	if sc, ok := ctx.Value(contextKey{}).(Scope); ok {
		return sc
	}
	return Scope{}
}
