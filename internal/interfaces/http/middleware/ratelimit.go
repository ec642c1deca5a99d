package middleware

import (
	"net/http"
	"time"

	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// RateLimitConfig holds rate limiting configuration for a route group
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
	Logger   *zap.Logger
}

// RateLimit creates an IP-based rate limiter keyed per endpoint. The
// limiter sets X-RateLimit-* headers; rejected requests get 429 with the
// API envelope.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Requests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		// the gin side writes the response
		httprate.WithLimitHandler(func(http.ResponseWriter, *http.Request) {}),
	)

	return func(c *gin.Context) {
		passed := false
		limiter(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)

		if !passed {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Rate limit exceeded",
					zap.String("ip", c.ClientIP()),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("user_agent", c.Request.UserAgent()))
			}
			abortWithError(c, dto.ErrCodeRateLimited, "Too many requests, please try again later")
		}
	}
}
