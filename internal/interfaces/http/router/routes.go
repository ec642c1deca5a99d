package router

import (
	"github.com/aqario/backend/internal/domain/identity"
	"github.com/aqario/backend/internal/interfaces/http/handler"
	"github.com/aqario/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers are the HTTP handlers served by the API
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Tenant    *handler.TenantHandler
	User      *handler.UserHandler
	Property  *handler.PropertyHandler
	Client    *handler.ClientHandler
	Contract  *handler.ContractHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
}

// Guards are the per-group middleware built from configuration. Nil
// entries are skipped.
type Guards struct {
	// API runs for every route under the API prefix
	API []gin.HandlerFunc
	// Auth requires a valid bearer access token
	Auth gin.HandlerFunc
	// Tenant requires X-Tenant-ID and checks it against the caller
	Tenant gin.HandlerFunc
	// OptionalTenant resolves X-Tenant-ID when present (registration)
	OptionalTenant gin.HandlerFunc
	// AuthRateLimit throttles the credential endpoints
	AuthRateLimit gin.HandlerFunc
	// Profiling labels tenant requests; runs after Tenant
	Profiling gin.HandlerFunc
}

// Mount registers the health checks and every API route on engine and
// returns the configured Router.
func Mount(engine *gin.Engine, h Handlers, g Guards, opts ...RouterOption) *Router {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(h.System.NoRoute)
	engine.NoMethod(h.System.NoMethod)

	engine.GET("/health", h.System.Health)
	engine.GET("/health/ready", h.System.Ready)

	r := NewRouter(engine, opts...)
	r.Use(g.API...)

	root := NewDomainGroup("system", "")
	root.GET("/", h.System.Root)

	r.Register(
		root,
		authRoutes(h.Auth, g),
		tenantRoutes(h.Tenant, g),
		userRoutes(h.User, g),
		propertyRoutes(h.Property, g),
		clientRoutes(h.Client, g),
		contractRoutes(h.Contract, g),
		invoiceRoutes(h.Invoice, g),
		dashboardRoutes(h.Dashboard, g),
	)
	r.Setup()
	return r
}

func authRoutes(h *handler.AuthHandler, g Guards) *DomainGroup {
	routes := NewDomainGroup("auth", "/auth").Use(g.AuthRateLimit)
	routes.POST("/register/", g.OptionalTenant, h.Register)
	routes.POST("/login/", h.Login)
	routes.POST("/refresh/", h.Refresh)
	routes.POST("/logout/", g.Auth, h.Logout)
	routes.GET("/me/", g.Auth, h.Me)
	return routes
}

// tenantRoutes are not tenant scoped; visibility is decided per caller
func tenantRoutes(h *handler.TenantHandler, g Guards) *DomainGroup {
	read := middleware.RequirePermission(identity.PermTenantRead)
	write := middleware.RequirePermission(identity.PermTenantWrite)
	administer := middleware.RequirePermission(identity.PermTenantAdminister)

	routes := NewDomainGroup("tenants", "/tenants").Use(g.Auth)
	routes.GET("/", read, h.List)
	routes.POST("/", administer, h.Create)
	routes.GET("/:id/", read, h.Get)
	routes.PUT("/:id/", write, h.Update)
	routes.PATCH("/:id/", write, h.Update)
	routes.DELETE("/:id/", administer, h.Delete)
	routes.POST("/:id/logo/", write, h.UploadLogo)
	return routes
}

// tenantGroup is a tenant-owned resource: authenticated, scoped to the
// selected tenant and profiled with its label
func tenantGroup(name, prefix string, g Guards, checks ...gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup(name, prefix).
		Use(g.Auth, g.Tenant, g.Profiling).
		Use(checks...)
}

func userRoutes(h *handler.UserHandler, g Guards) *DomainGroup {
	read := middleware.RequirePermission(identity.PermUserRead)
	write := middleware.RequirePermission(identity.PermUserWrite)

	routes := tenantGroup("users", "/users", g)
	routes.GET("/", read, h.List)
	routes.POST("/", write, h.Create)
	routes.GET("/:id/", read, h.Get)
	routes.PUT("/:id/", write, h.Update)
	routes.PATCH("/:id/", write, h.Update)
	routes.DELETE("/:id/", write, h.Delete)
	return routes
}

func propertyRoutes(h *handler.PropertyHandler, g Guards) *DomainGroup {
	routes := tenantGroup("properties", "/properties", g, middleware.RequireResource("property"))
	routes.GET("/", h.List)
	routes.POST("/", h.Create)
	routes.GET("/:id/", h.Get)
	routes.PUT("/:id/", h.Update)
	routes.PATCH("/:id/", h.Update)
	routes.DELETE("/:id/", h.Delete)
	routes.POST("/:id/image/", h.UploadImage)
	return routes
}

func clientRoutes(h *handler.ClientHandler, g Guards) *DomainGroup {
	routes := tenantGroup("clients", "/clients", g, middleware.RequireResource("client"))
	routes.GET("/", h.List)
	routes.POST("/", h.Create)
	routes.GET("/:id/", h.Get)
	routes.PUT("/:id/", h.Update)
	routes.PATCH("/:id/", h.Update)
	routes.DELETE("/:id/", h.Delete)
	return routes
}

func contractRoutes(h *handler.ContractHandler, g Guards) *DomainGroup {
	routes := tenantGroup("contracts", "/contracts", g, middleware.RequireResource("contract"))
	routes.GET("/", h.List)
	routes.POST("/", h.Create)
	routes.GET("/:id/", h.Get)
	routes.PUT("/:id/", h.Update)
	routes.PATCH("/:id/", h.Update)
	routes.DELETE("/:id/", h.Delete)
	routes.GET("/:id/download_pdf/", h.DownloadPDF)
	return routes
}

func invoiceRoutes(h *handler.InvoiceHandler, g Guards) *DomainGroup {
	routes := tenantGroup("invoices", "/invoices", g, middleware.RequireResource("invoice"))
	routes.GET("/", h.List)
	routes.POST("/", h.Create)
	routes.GET("/export/", h.Export)
	routes.GET("/:id/", h.Get)
	routes.PUT("/:id/", h.Update)
	routes.PATCH("/:id/", h.Update)
	routes.DELETE("/:id/", h.Delete)
	routes.GET("/:id/download_pdf/", h.DownloadPDF)
	return routes
}

func dashboardRoutes(h *handler.DashboardHandler, g Guards) *DomainGroup {
	routes := tenantGroup("dashboard", "/dashboard", g, middleware.RequirePermission(identity.PermDashboardRead))
	routes.GET("/stats/", h.Stats)
	return routes
}
