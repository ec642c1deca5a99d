package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	financeapp "github.com/aqario/backend/internal/application/finance"
	identityapp "github.com/aqario/backend/internal/application/identity"
	leasingapp "github.com/aqario/backend/internal/application/leasing"
	partnerapp "github.com/aqario/backend/internal/application/partner"
	propertyapp "github.com/aqario/backend/internal/application/property"
	"github.com/aqario/backend/internal/infrastructure/auth"
	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/aqario/backend/internal/infrastructure/event"
	"github.com/aqario/backend/internal/infrastructure/logger"
	"github.com/aqario/backend/internal/infrastructure/notification"
	"github.com/aqario/backend/internal/infrastructure/persistence"
	"github.com/aqario/backend/internal/infrastructure/printing"
	"github.com/aqario/backend/internal/infrastructure/storage"
	"github.com/aqario/backend/internal/infrastructure/telemetry"
	"github.com/aqario/backend/internal/interfaces/http/handler"
	"github.com/aqario/backend/internal/interfaces/http/middleware"
	"github.com/aqario/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/aqario/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Aqario API
//	@version		1.0
//	@description	Multi-tenant real estate management: properties, clients, rental contracts and invoices.

//	@contact.name	API Support
//	@contact.email	support@aqario.com

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	bootLog, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	// Telemetry first so the OTLP log bridge can wrap the application logger
	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.App.Version, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	log := tel.Logs.Bridge(bootLog, logger.ParseLevel(cfg.Log.Level))
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Aqario backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", cfg.App.Version),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Database.SlowThreshold),
		logger.WithRedactedParams(cfg.App.IsProduction()))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Database.Driver == "sqlite" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}
	if err := persistence.InstallTenantGuard(db.DB); err != nil {
		log.Fatal("Failed to install tenant guard", zap.Error(err))
	}
	if cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
			DBName:             cfg.Database.DBName,
			SlowQueryThreshold: cfg.Database.SlowThreshold,
			IncludeVariables:   !cfg.App.IsProduction(),
		}, log); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	meter := tel.Meter.Meter("aqario")
	if tel.Meter.IsEnabled() {
		dbMetrics, err := telemetry.NewDBMetrics(meter, telemetry.DBMetricsConfig{
			SlowQueryThreshold: cfg.Database.SlowThreshold,
		}, log)
		if err != nil {
			log.Warn("Failed to create database metrics", zap.Error(err))
		} else if err := dbMetrics.Register(db.DB); err != nil {
			log.Warn("Failed to register database metrics", zap.Error(err))
		} else {
			dbMetrics.StartPoolStatsCollection(ctx)
			defer dbMetrics.Stop()
		}
	}
	domainMetrics, err := telemetry.NewDomainMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create domain metrics", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Token blacklist: Redis when configured, in-process otherwise
	checks := []handler.HealthCheck{{Name: "database", Check: db.Ping}}
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisClient, err := auth.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		checks = append(checks, handler.HealthCheck{Name: "redis", Check: redisPing(redisClient)})
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Warn("Redis disabled, token revocations are kept in memory")
	}

	// Documents, uploads and notifications
	assets, err := storage.New(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	chrome, err := printing.NewChromedpRenderer(printing.ChromedpConfigFrom(cfg.PDF), log)
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		_ = chrome.Close()
	}()
	documents := printing.NewDocumentGenerator(chrome, log)
	mailer := notification.NewSMTPMailer(cfg.Notification.SMTP, cfg.Notification.Timeout, log)
	whatsapp := notification.NewTwilioWhatsApp(cfg.Notification.Twilio, cfg.Notification.Timeout, log)
	log.Info("Notification channels",
		zap.Bool("email", mailer.Enabled()),
		zap.Bool("whatsapp", whatsapp.Enabled()))

	// Repositories
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Post-commit hooks: the PDF is stored first so the notifications can
	// link it
	invoiceDocs := financeapp.NewInvoiceDocuments(invoiceRepo, documents, assets, domainMetrics, log)
	invoiceHooks, err := event.NewHookPipeline(log, meter)
	if err != nil {
		log.Fatal("Failed to create invoice hook pipeline", zap.Error(err))
	}
	invoiceHooks.
		Register(financeapp.NewInvoicePDFHook(invoiceRepo, invoiceDocs), cfg.PDF.RenderTimeout).
		Register(financeapp.NewInvoiceEmailHook(invoiceRepo, mailer, domainMetrics), cfg.Notification.Timeout).
		Register(financeapp.NewInvoiceWhatsAppHook(invoiceRepo, whatsapp, domainMetrics), cfg.Notification.Timeout)

	contractDocs := leasingapp.NewContractDocuments(contractRepo, documents, assets, domainMetrics, log)
	contractHooks, err := event.NewHookPipeline(log, meter)
	if err != nil {
		log.Fatal("Failed to create contract hook pipeline", zap.Error(err))
	}
	contractHooks.
		Register(leasingapp.NewContractPDFHook(contractRepo, contractDocs), cfg.PDF.RenderTimeout).
		Register(leasingapp.NewContractEmailHook(contractRepo, mailer, domainMetrics), cfg.Notification.Timeout).
		Register(leasingapp.NewContractWhatsAppHook(contractRepo, whatsapp, domainMetrics), cfg.Notification.Timeout)

	// Services
	tenantService := identityapp.NewTenantService(tenantRepo, assets, log)
	authService := identityapp.NewAuthService(userRepo, tenantRepo, persistence.NewGormRegistrar(db.DB), jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, blacklist, cfg.JWT.RefreshTokenExpiration, log)
	propertyService := propertyapp.NewPropertyService(propertyRepo, assets, log)
	clientService := partnerapp.NewClientService(clientRepo, log)
	contractService := leasingapp.NewContractService(contractRepo, propertyRepo, clientRepo, contractDocs, contractHooks, domainMetrics, log)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, contractRepo, invoiceDocs, invoiceHooks, domainMetrics, log)
	dashboardService := financeapp.NewDashboardService(propertyRepo, clientRepo, contractRepo, invoiceRepo, log)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing and metrics
	// 5. Security headers
	// 6. CORS
	// 7. BodyLimit - JSON bodies and multipart uploads
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: tel.Meter,
		Enabled:       tel.Meter.IsEnabled(),
	}))
	secureConfig := middleware.DefaultSecurityConfig()
	secureConfig.HSTSEnabled = cfg.App.IsProduction()
	engine.Use(middleware.SecureWithConfig(secureConfig))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize, cfg.HTTP.MaxUploadSize))

	// Swagger documentation endpoint
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	tenantResolver := middleware.TenantMiddlewareConfig{
		Resolver:   tenantService,
		BaseDomain: cfg.HTTP.TenantBaseDomain,
		Logger:     log,
	}
	requiredTenant := tenantResolver
	requiredTenant.Required = true

	router.Mount(engine, router.Handlers{
		System:    handler.NewSystemHandler(cfg.App.Name, cfg.App.Version, log, checks...),
		Auth:      handler.NewAuthHandler(authService, log),
		Tenant:    handler.NewTenantHandler(tenantService, log),
		User:      handler.NewUserHandler(userService, log),
		Property:  handler.NewPropertyHandler(propertyService, log),
		Client:    handler.NewClientHandler(clientService, log),
		Contract:  handler.NewContractHandler(contractService, log),
		Invoice:   handler.NewInvoiceHandler(invoiceService, log),
		Dashboard: handler.NewDashboardHandler(dashboardService, log),
	}, router.Guards{
		API: []gin.HandlerFunc{middleware.SpanEnricher()},
		Auth: middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		}),
		Tenant:         middleware.TenantMiddlewareWithConfig(requiredTenant),
		OptionalTenant: middleware.TenantMiddlewareWithConfig(tenantResolver),
		AuthRateLimit: middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:  cfg.HTTP.AuthRateLimitEnabled,
			Requests: cfg.HTTP.AuthRateLimitRequests,
			Window:   cfg.HTTP.AuthRateLimitWindow,
			Logger:   log,
		}),
		Profiling: middleware.ProfilingWithConfig(middleware.ProfilingConfig{
			Enabled:          cfg.Telemetry.ProfilingEnabled,
			SkipPathPrefixes: middleware.DefaultProfilingConfig().SkipPathPrefixes,
		}),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		bootLog.Warn("Telemetry shutdown incomplete", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func redisPing(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
