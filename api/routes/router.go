package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ravikiranj/stocktrail-backend/api/controllers"
	"github.com/ravikiranj/stocktrail-backend/api/middleware"
	"github.com/ravikiranj/stocktrail-backend/internal/alerts"
	"github.com/ravikiranj/stocktrail-backend/internal/auth"
	"github.com/ravikiranj/stocktrail-backend/internal/inventory"
	"github.com/ravikiranj/stocktrail-backend/internal/messages"
	"github.com/ravikiranj/stocktrail-backend/internal/products"
	"github.com/ravikiranj/stocktrail-backend/internal/suppliers"
	"github.com/ravikiranj/stocktrail-backend/internal/templates"
	"github.com/ravikiranj/stocktrail-backend/pkg/auth/session"
	"github.com/ravikiranj/stocktrail-backend/pkg/config"
	"github.com/ravikiranj/stocktrail-backend/pkg/db"
	"github.com/ravikiranj/stocktrail-backend/pkg/logger"
	"github.com/ravikiranj/stocktrail-backend/pkg/metrics"
	"github.com/ravikiranj/stocktrail-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP db.Pinger,
	redisClient *redis.Client,
	sessionManager session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	authService auth.Service,
	registerService auth.RegisterService,
	supplierService suppliers.Service,
	productService products.Service,
	inventoryService inventory.Service,
	alertService alerts.Service,
	templateService templates.Service,
	messageService messages.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginHandleLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterHandleLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.Login(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.Register(registerService, logg))
		r.Post("/refresh", controllers.Refresh(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionManager, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.Post("/auth/logout", controllers.Logout(authService, logg))

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.SupplierList(supplierService, logg))
			r.Post("/", controllers.SupplierCreate(supplierService, logg))
			r.Get("/{supplierID}", controllers.SupplierGet(supplierService, logg))
			r.Put("/{supplierID}", controllers.SupplierUpdate(supplierService, logg))
			r.Delete("/{supplierID}", controllers.SupplierDelete(supplierService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(productService, logg))
			r.Post("/", controllers.ProductCreate(productService, logg))
			r.Get("/dashboard", controllers.Dashboard(productService, logg))
			r.Get("/{productID}", controllers.ProductGet(productService, logg))
			r.Put("/{productID}", controllers.ProductUpdate(productService, logg))
			r.Delete("/{productID}", controllers.ProductDelete(productService, logg))
			r.Post("/{productID}/adjust", controllers.InventoryAdjust(inventoryService, logg))
			r.Get("/{productID}/logs", controllers.InventoryLogs(inventoryService, logg))
			r.Get("/{productID}/consistency", controllers.InventoryConsistency(inventoryService, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/history", controllers.InventoryHistory(inventoryService, logg))
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/low-stock", controllers.LowStock(alertService, logg))
			r.Get("/low-stock/by-supplier", controllers.LowStockBySupplier(alertService, logg))
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", controllers.TemplateList(templateService, logg))
			r.Post("/", controllers.TemplateCreate(templateService, logg))
			r.Put("/{templateID}", controllers.TemplateUpdate(templateService, logg))
			r.Delete("/{templateID}", controllers.TemplateDelete(templateService, logg))
		})

		r.Post("/messages/compose", controllers.MessageCompose(messageService, logg))
	})

	return r
}
