package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/finledger/finledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// TenantResolver loads a tenant so the middleware can verify it exists and is
// active before binding it. Implemented by the tenant service.
type TenantResolver interface {
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// TenantMiddleware resolves the active tenant for the request and binds it
// into the request context. Resolution order: the session's tenant claim,
// then the X-Tenant-ID header outside production. Requests without a
// resolvable, active tenant are rejected; nothing downstream runs unbound.
func TenantMiddleware(resolver TenantResolver, allowHeader bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tenantID := ""
		if claim, exists := c.Get("tenantClaim"); exists {
			tenantID, _ = claim.(string)
		}
		if tenantID == "" && allowHeader {
			tenantID = c.GetHeader("X-Tenant-ID")
		}
		if tenantID == "" {
			logger.Warn("No tenant resolvable for request")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No tenant bound to session"})
			return
		}

		tenant, err := resolver.GetTenantByID(c.Request.Context(), tenantID)
		if err != nil {
			logger.Warn("Tenant resolution failed", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unknown tenant"})
			return
		}
		if !tenant.IsActive {
			logger.Warn("Request for deactivated tenant", slog.String("tenant_id", tenantID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Tenant is deactivated"})
			return
		}

		ctx := WithTenantID(c.Request.Context(), tenant.TenantID)
		enriched := GetLoggerFromCtx(ctx).With(slog.String("tenant_id", tenant.TenantID))
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))

		c.Next()
	}
}
