package middleware_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finledger/finledger/internal/apperrors"
	"github.com/finledger/finledger/internal/middleware"
)

func TestTenantIDRoundTrip(t *testing.T) {
	tenantID := uuid.NewString()
	ctx := middleware.WithTenantID(context.Background(), tenantID)

	got, err := middleware.TenantIDFromCtx(ctx)
	require.NoError(t, err)
	assert.Equal(t, tenantID, got)
}

func TestTenantIDUnboundContext(t *testing.T) {
	_, err := middleware.TenantIDFromCtx(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoTenant)
}

func TestTenantIDEmptyIsUnbound(t *testing.T) {
	ctx := middleware.WithTenantID(context.Background(), "")
	_, err := middleware.TenantIDFromCtx(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoTenant)
}

func TestActorRoundTrip(t *testing.T) {
	ctx := middleware.WithActor(context.Background(), "user-7")

	actor, ok := middleware.ActorFromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-7", actor)

	_, ok = middleware.ActorFromCtx(context.Background())
	assert.False(t, ok)
}
