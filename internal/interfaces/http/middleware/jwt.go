package middleware

import (
	"errors"
	"strings"

	identityapp "github.com/aqario/backend/internal/application/identity"
	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/infrastructure/auth"
	"github.com/aqario/backend/internal/infrastructure/logger"
	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	ActorKey      = "actor"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

var errNoCredentials = errors.New("missing credentials")

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	Logger         *zap.Logger
}

// JWTAuthMiddlewareWithConfig authenticates the bearer access token and
// stores the caller as an identityapp.Actor under ActorKey
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, log, errNoCredentials, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, log, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
		if tokenString == "" {
			handleAuthError(c, log, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, log, err, "Token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			// revocation checks fail open: a Redis outage must not log everyone out
			if claims.ID != "" {
				blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					log.Error("Failed to check token blacklist", zap.String("jti", claims.ID), zap.Error(err))
				} else if blacklisted {
					handleAuthError(c, log, auth.ErrTokenBlacklisted, "Token has been revoked")
					return
				}
			}

			invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
			if err != nil {
				log.Error("Failed to check user token invalidation", zap.String("user_id", claims.UserID), zap.Error(err))
			} else if invalidated {
				handleAuthError(c, log, auth.ErrTokenBlacklisted, "User session has been invalidated")
				return
			}
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			handleAuthError(c, log, auth.ErrInvalidClaims, err.Error())
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(ActorKey, actor)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		if claims.TenantID != "" {
			ctx = logger.WithTenantID(ctx, claims.TenantID)
		}
		c.Request = c.Request.WithContext(ctx)

		log.Debug("JWT authentication successful",
			zap.String("user_id", claims.UserID),
			zap.String("username", claims.Username),
			zap.String("role", claims.Role))

		c.Next()
	}
}

func actorFromClaims(claims *auth.Claims) (identityapp.Actor, error) {
	userID, err := claims.GetUserUUID()
	if err != nil {
		return identityapp.Actor{}, err
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return identityapp.Actor{}, err
	}
	actor := identityapp.Actor{UserID: userID, Username: claims.Username, Role: role}

	tenantID, ok, err := claims.GetTenantUUID()
	if err != nil {
		return identityapp.Actor{}, err
	}
	if ok {
		actor.TenantID = &tenantID
	} else if role.RequiresTenant() {
		return identityapp.Actor{}, errors.New("tenant claim missing")
	}
	return actor, nil
}

func handleAuthError(c *gin.Context, log *zap.Logger, err error, message string) {
	log.Warn("JWT authentication failed",
		zap.Error(err),
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path))

	code := dto.ErrCodeUnauthorized
	msg := "Authentication required"
	switch {
	case errors.Is(err, errNoCredentials):
		msg = "Authentication credentials were not provided"
	case errors.Is(err, auth.ErrExpiredToken):
		code, msg = dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		code, msg = dto.ErrCodeTokenRevoked, "Token has been revoked"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrInvalidClaims):
		code, msg = dto.ErrCodeTokenInvalid, "Given token not valid for any token type"
	}
	abortWithError(c, code, msg)
}

// GetActor returns the authenticated caller
func GetActor(c *gin.Context) (identityapp.Actor, bool) {
	v, ok := c.Get(ActorKey)
	if !ok {
		return identityapp.Actor{}, false
	}
	actor, ok := v.(identityapp.Actor)
	return actor, ok
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetActorUserID returns the caller's user id or uuid.Nil
func GetActorUserID(c *gin.Context) uuid.UUID {
	if actor, ok := GetActor(c); ok {
		return actor.UserID
	}
	return uuid.Nil
}
