package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultProfilingConfig(t *testing.T) {
	cfg := DefaultProfilingConfig()

	assert.True(t, cfg.Enabled)
	assert.Contains(t, cfg.SkipPathPrefixes, "/health")
	assert.Contains(t, cfg.SkipPathPrefixes, "/swagger")
}

func profilingRouter(cfg ProfilingConfig, labels map[string]string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(TenantIDKey, "tenant-1")
		c.Next()
	})
	r.Use(ProfilingWithConfig(cfg))
	capture := func(c *gin.Context) {
		pprof.ForLabels(c.Request.Context(), func(k, v string) bool {
			labels[k] = v
			return true
		})
		c.Status(http.StatusOK)
	}
	r.GET("/api/v1/properties/:id/", capture)
	r.GET("/health/ready", capture)
	return r
}

func TestProfilingMiddleware_Labels(t *testing.T) {
	labels := map[string]string{}
	r := profilingRouter(DefaultProfilingConfig(), labels)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/42/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v1/properties/:id/", labels["route"])
	assert.Equal(t, http.MethodGet, labels["method"])
	assert.Equal(t, "tenant-1", labels["tenant_id"])
}

func TestProfilingMiddleware_SkipPaths(t *testing.T) {
	labels := map[string]string{}
	r := profilingRouter(DefaultProfilingConfig(), labels)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, labels)
}

func TestProfilingMiddleware_Disabled(t *testing.T) {
	labels := map[string]string{}
	r := profilingRouter(ProfilingConfig{Enabled: false}, labels)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/properties/42/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, labels)
}
