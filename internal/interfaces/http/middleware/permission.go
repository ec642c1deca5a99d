package middleware

import (
	"net/http"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	Logger *zap.Logger
}

// RequirePermission creates middleware that requires a specific permission
func RequirePermission(permission identity.Permission) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permission)
}

// RequireAnyPermissionWithConfig creates middleware that requires any of the
// specified permissions
func RequireAnyPermissionWithConfig(cfg PermissionConfig, permissions ...identity.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		checkPermissions(c, cfg, permissions)
	}
}

// RequireResource checks permission for a resource with the action derived
// from the HTTP method:
//   - GET, HEAD -> read
//   - POST, PUT, PATCH -> write
//   - DELETE -> delete
func RequireResource(resource string) gin.HandlerFunc {
	return RequireResourceWithConfig(resource, PermissionConfig{})
}

// RequireResourceWithConfig creates middleware with custom config
func RequireResourceWithConfig(resource string, cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		permission := identity.Permission(resource + ":" + methodToAction(c.Request.Method))
		checkPermissions(c, cfg, []identity.Permission{permission})
	}
}

func checkPermissions(c *gin.Context, cfg PermissionConfig, permissions []identity.Permission) {
	actor, ok := GetActor(c)
	if !ok {
		abortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
		return
	}
	for _, p := range permissions {
		if actor.Role.Can(p) {
			if cfg.Logger != nil {
				cfg.Logger.Debug("Permission check passed",
					zap.String("user_id", actor.UserID.String()),
					zap.String("permission", string(p)))
			}
			c.Next()
			return
		}
	}
	handlePermissionDenied(c, cfg, actor.Role, permissions)
}

func methodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead:
		return "read"
	case http.MethodDelete:
		return "delete"
	default:
		return "write"
	}
}

func handlePermissionDenied(c *gin.Context, cfg PermissionConfig, role identity.Role, required []identity.Permission) {
	if cfg.Logger != nil {
		names := make([]string, len(required))
		for i, p := range required {
			names[i] = string(p)
		}
		cfg.Logger.Warn("Permission denied",
			zap.String("role", role.String()),
			zap.Strings("required", names),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
	}
	abortWithError(c, dto.ErrCodeForbidden, "You do not have permission to perform this action")
}
