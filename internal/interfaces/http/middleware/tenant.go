package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/infrastructure/logger"
	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Tenant context keys
const (
	TenantIDKey     = "tenant_id"
	TenantKey       = "tenant"
	ScopeKey        = "tenant_scope"
	TenantHeaderKey = "X-Tenant-ID"
)

// TenantResolver maps request input to a tenant. Unknown tenants yield
// shared.ErrInvalidTenant.
type TenantResolver interface {
	Resolve(ctx context.Context, header string) (*identity.Tenant, error)
	ResolveSubdomain(ctx context.Context, subdomain string) (*identity.Tenant, error)
}

// TenantMiddlewareConfig holds configuration for tenant middleware
type TenantMiddlewareConfig struct {
	Resolver TenantResolver
	// Required rejects requests without a tenant with TENANT_REQUIRED
	Required bool
	// BaseDomain enables subdomain extraction when the header is absent
	// (e.g. "alpha.aqario.com" with base "aqario.com")
	BaseDomain string
	Logger     *zap.Logger
}

// TenantMiddlewareWithConfig selects the tenant from X-Tenant-ID (or the
// host subdomain) and stores it with its scope. When a caller is
// authenticated, a non-SUPERADMIN caller may only select their own tenant.
func TenantMiddlewareWithConfig(cfg TenantMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			tenant *identity.Tenant
			err    error
			method string
		)
		if header := strings.TrimSpace(c.GetHeader(TenantHeaderKey)); header != "" {
			method = "header"
			tenant, err = cfg.Resolver.Resolve(ctx, header)
		} else if sub := extractTenantFromSubdomain(c.Request.Host, cfg.BaseDomain); sub != "" {
			method = "subdomain"
			tenant, err = cfg.Resolver.ResolveSubdomain(ctx, sub)
		}

		if err != nil {
			if errors.Is(err, shared.ErrInvalidTenant) {
				abortWithError(c, dto.ErrCodeInvalidTenant, shared.ErrInvalidTenant.Message)
				return
			}
			log.Error("Tenant resolution failed", zap.Error(err))
			abortWithError(c, dto.ErrCodeInternal, "Internal server error")
			return
		}

		if tenant == nil {
			if cfg.Required {
				abortWithError(c, dto.ErrCodeTenantRequired, "X-Tenant-ID header is required")
				return
			}
			c.Next()
			return
		}

		if actor, ok := GetActor(c); ok && !actor.CanAccessTenant(tenant.ID) {
			log.Warn("Tenant access denied",
				zap.String("user_id", actor.UserID.String()),
				zap.String("tenant_id", tenant.ID.String()))
			abortWithError(c, dto.ErrCodeForbidden, "You do not have access to this tenant")
			return
		}

		c.Set(TenantKey, tenant)
		c.Set(ScopeKey, tenant.Scope())
		c.Set(TenantIDKey, tenant.ID.String())
		c.Request = c.Request.WithContext(logger.WithTenantID(ctx, tenant.ID.String()))

		log.Debug("Tenant identified",
			zap.String("tenant_id", tenant.ID.String()),
			zap.String("method", method))

		c.Next()
	}
}

// extractTenantFromSubdomain extracts the tenant label from the host
// e.g. "acme.aqario.com" with baseDomain "aqario.com" returns "acme"
func extractTenantFromSubdomain(host, baseDomain string) string {
	if baseDomain == "" {
		return ""
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	if !strings.HasSuffix(host, "."+baseDomain) {
		return ""
	}
	subdomain := strings.TrimSuffix(host, "."+baseDomain)
	if subdomain == "" || subdomain == "www" || subdomain == "api" {
		return ""
	}
	// multi-level subdomains use the first label
	return strings.Split(subdomain, ".")[0]
}

// GetScope returns the tenant scope selected for this request
func GetScope(c *gin.Context) (shared.Scope, bool) {
	v, ok := c.Get(ScopeKey)
	if !ok {
		return shared.Scope{}, false
	}
	scope, ok := v.(shared.Scope)
	return scope, ok
}

// GetTenant returns the tenant selected for this request
func GetTenant(c *gin.Context) *identity.Tenant {
	if v, ok := c.Get(TenantKey); ok {
		if t, ok := v.(*identity.Tenant); ok {
			return t
		}
	}
	return nil
}
