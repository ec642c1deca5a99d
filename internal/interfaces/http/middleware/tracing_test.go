package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	identityapp "github.com/aqario/backend/internal/application/identity"
	"github.com/aqario/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer sets up a test tracer provider and returns the span recorder.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false, ServiceName: "aqario-test"}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracing_SpanEnricher(t *testing.T) {
	sr := setupTestTracer(t)
	tenantID := uuid.New()
	actor := identityapp.Actor{UserID: uuid.New(), Role: identity.RoleEmployee, TenantID: &tenantID}

	router := gin.New()
	router.Use(RequestID(), TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "aqario-test"}))
	router.Use(func(c *gin.Context) {
		c.Set(ActorKey, actor)
		c.Set(TenantIDKey, tenantID.String())
		c.Next()
	}, SpanEnricher())
	router.GET("/api/v1/invoices/:id/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/invoices/7/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spanAttrs(spans[0])
	assert.Equal(t, w.Header().Get("X-Request-ID"), attrs["request_id"].AsString())
	assert.Equal(t, tenantID.String(), attrs["tenant_id"].AsString())
	assert.Equal(t, actor.UserID.String(), attrs["user_id"].AsString())
	assert.Equal(t, "EMPLOYEE", attrs["user.role"].AsString())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestTracing_SpanEnricherMarksErrors(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: true, ServiceName: "aqario-test"}), SpanEnricher())
	router.GET("/boom", func(c *gin.Context) {
		abortWithError(c, "INTERNAL_ERROR", "Internal server error")
	})
	router.GET("/missing", func(c *gin.Context) {
		abortWithError(c, "NOT_FOUND", "Not found")
	})

	for _, path := range []string{"/boom", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "INTERNAL_ERROR", spanAttrs(spans[0])["error.code"].AsString())
	assert.NotEqual(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "NOT_FOUND", spanAttrs(spans[1])["error.code"].AsString())
}
