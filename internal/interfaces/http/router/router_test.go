package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	properties := NewDomainGroup("properties", "/properties")
	properties.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "list") })

	r.Register(properties).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/properties/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "list", w.Body.String())
}

func TestRouterUse_AppliesToEveryGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		c.Header("X-API", "yes")
		c.Next()
	}, nil)

	clients := NewDomainGroup("clients", "/clients")
	clients.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	invoices := NewDomainGroup("invoices", "/invoices")
	invoices.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.Register(clients, invoices).Setup()

	for _, path := range []string{"/api/v1/clients/", "/api/v1/invoices/"} {
		w := serve(engine, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "yes", w.Header().Get("X-API"), path)
	}
	assert.Empty(t, serve(engine, http.MethodGet, "/other").Header().Get("X-API"))
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }

	g := NewDomainGroup("contracts", "/contracts")
	g.GET("/", ok).
		POST("/", ok).
		PUT("/:id/", ok).
		PATCH("/:id/", ok).
		DELETE("/:id/", ok)
	g.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, "contracts", g.Name())
	assert.Equal(t, "/contracts", g.Prefix())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/contracts/"},
		{http.MethodPost, "/api/v1/contracts/"},
		{http.MethodPut, "/api/v1/contracts/42/"},
		{http.MethodPatch, "/api/v1/contracts/42/"},
		{http.MethodDelete, "/api/v1/contracts/42/"},
	}
	for _, tt := range tests {
		w := serve(engine, tt.method, tt.path)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.method, w.Body.String())
	}
}

func TestDomainGroup_MiddlewareSkipsNil(t *testing.T) {
	engine := gin.New()
	var calls []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			calls = append(calls, name)
			c.Next()
		}
	}

	g := NewDomainGroup("invoices", "/invoices").Use(mark("auth"), nil, mark("tenant"))
	g.GET("/export/", nil, mark("route"), func(c *gin.Context) { c.Status(http.StatusOK) })
	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, http.MethodGet, "/api/v1/invoices/export/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"auth", "tenant", "route"}, calls)
}

func TestDomainGroup_Subgroups(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("auth", "/auth")
	g.Group("tokens", "/token").POST("/refresh/", func(c *gin.Context) { c.String(http.StatusOK, "refreshed") })
	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, http.MethodPost, "/api/v1/auth/token/refresh/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "refreshed", w.Body.String())
}

func TestStaticSegmentNextToParam(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("invoices", "/invoices")
	g.GET("/export/", func(c *gin.Context) { c.String(http.StatusOK, "export") })
	g.GET("/:id/", func(c *gin.Context) { c.String(http.StatusOK, "id="+c.Param("id")) })
	g.GET("/:id/download_pdf/", func(c *gin.Context) { c.String(http.StatusOK, "pdf="+c.Param("id")) })
	g.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, "export", serve(engine, http.MethodGet, "/api/v1/invoices/export/").Body.String())
	assert.Equal(t, "id=abc", serve(engine, http.MethodGet, "/api/v1/invoices/abc/").Body.String())
	assert.Equal(t, "pdf=abc", serve(engine, http.MethodGet, "/api/v1/invoices/abc/download_pdf/").Body.String())
}
