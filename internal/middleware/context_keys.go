package middleware

import (
	"context"

	"github.com/finledger/finledger/internal/apperrors"
)

// contextKey is a private type for context keys defined in this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	actorCtxKey  = contextKey("actor")
	tenantCtxKey = contextKey("tenantID")
)

// WithTenantID returns a context carrying the given tenant id. Set once per
// incoming request by TenantMiddleware, and explicitly by the validation
// scheduler for each per-tenant run. Never stored in process-wide state.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantCtxKey, tenantID)
}

// TenantIDFromCtx retrieves the ambient tenant id. Every tenant-scoped
// operation must call this before touching any entity; an unbound context
// fails with apperrors.ErrNoTenant.
func TenantIDFromCtx(ctx context.Context) (string, error) {
	tenantID, ok := ctx.Value(tenantCtxKey).(string)
	if !ok || tenantID == "" {
		return "", apperrors.ErrNoTenant
	}
	return tenantID, nil
}

// WithActor returns a context carrying the acting user's identity for audit
// attribution.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// ActorFromCtx retrieves the acting user's identity, if bound.
func ActorFromCtx(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorCtxKey).(string)
	return actor, ok && actor != ""
}
