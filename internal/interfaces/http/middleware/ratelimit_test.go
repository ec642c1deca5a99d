package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aqario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitRouter(cfg RateLimitConfig) *gin.Engine {
	router := gin.New()
	router.Use(RateLimit(cfg))
	router.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/refresh", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func postFrom(router http.Handler, path, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{Enabled: true, Requests: 2, Window: time.Minute})

	assert.Equal(t, http.StatusOK, postFrom(router, "/login", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, postFrom(router, "/login", "10.0.0.1:1234").Code)

	w := postFrom(router, "/login", "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrCodeRateLimited, errorCode(t, w))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_KeysByIPAndEndpoint(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{Enabled: true, Requests: 1, Window: time.Minute})

	assert.Equal(t, http.StatusOK, postFrom(router, "/login", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, postFrom(router, "/login", "10.0.0.2:1234").Code)
	assert.Equal(t, http.StatusOK, postFrom(router, "/refresh", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, postFrom(router, "/login", "10.0.0.1:1234").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	router := rateLimitRouter(RateLimitConfig{Enabled: false, Requests: 1, Window: time.Minute})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, postFrom(router, "/login", "10.0.0.1:1234").Code)
	}
}
