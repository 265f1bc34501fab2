package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/comandero/dashboard-gateway/docs"
	"github.com/comandero/dashboard-gateway/internal/api/handler"
	"github.com/comandero/dashboard-gateway/internal/api/middleware"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/service"
	redisdb "github.com/comandero/dashboard-gateway/internal/infrastructure/db/redis"
	"github.com/comandero/dashboard-gateway/internal/infrastructure/upstream"
	"github.com/comandero/dashboard-gateway/internal/pkg/config"
)

// NewRouter builds the Echo instance with every route registered: the public
// auth endpoints, the guarded /dashboard surface, and the operational routes.
func NewRouter(cfg *config.Config, rdb *redis.Client, base *upstream.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	store := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	manager := service.NewSessionManager(upstream.NewAuthClient(base), store, cfg.SessionSecret, cfg.SessionTTL, log)

	productsAPI := upstream.NewProductsClient(base)
	clientSvc := service.NewClientService(upstream.NewClientsClient(base), manager, log)
	productSvc := service.NewProductService(productsAPI, manager, log)
	orderSvc := service.NewOrderService(upstream.NewOrdersClient(base), productsAPI, manager, log)
	employeeSvc := service.NewEmployeeService(upstream.NewEmployeesClient(base), manager, log)

	e.HTTPErrorHandler = NewHTTPErrorHandler(manager, log)

	// Session restoration runs on every request; the guard only bites on the
	// /dashboard subtree.
	e.Use(middleware.Session(manager))
	e.Use(middleware.Guard())

	// --- Auth routes (public prefix) ---
	authHandler := handler.NewAuthHandler(manager, cfg.SessionTTL, cfg.Production())
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Dashboard routes (guarded) ---
	dash := e.Group("/dashboard")

	sessionHandler := handler.NewSessionHandler(manager)
	dash.GET("/me", sessionHandler.Me)
	dash.GET("/notifications", sessionHandler.Notifications)

	clientsHandler := handler.NewClientsHandler(clientSvc)
	dash.GET("/clients", clientsHandler.List)
	dash.GET("/clients/search", clientsHandler.Search)
	dash.GET("/clients/:id", clientsHandler.Get)
	dash.POST("/clients", clientsHandler.Create)
	dash.PUT("/clients/:id", clientsHandler.Update)
	dash.DELETE("/clients/:id", clientsHandler.Delete)

	productsHandler := handler.NewProductsHandler(productSvc)
	dash.GET("/products", productsHandler.List)
	dash.GET("/products/all", productsHandler.ListAll, middleware.RequireRole(domain.RoleAdmin))
	dash.GET("/products/search", productsHandler.Search)
	dash.GET("/products/categories", productsHandler.Categories)
	dash.GET("/products/category/:category", productsHandler.ByCategory)
	dash.GET("/products/:id", productsHandler.Get)
	dash.POST("/products", productsHandler.Create)
	dash.PUT("/products/:id", productsHandler.Update)
	dash.DELETE("/products/:id", productsHandler.Delete)

	ordersHandler := handler.NewOrdersHandler(orderSvc)
	dash.GET("/orders", ordersHandler.List)
	dash.POST("/orders", ordersHandler.Create)
	dash.PUT("/orders/:id", ordersHandler.Update)
	dash.DELETE("/orders/:id", ordersHandler.Delete)
	dash.POST("/orders/:id/advance", ordersHandler.Advance)
	dash.POST("/orders/:id/cancel", ordersHandler.Cancel)

	employeesHandler := handler.NewEmployeesHandler(employeeSvc)
	dash.GET("/employees", employeesHandler.List)
	dash.POST("/employees", employeesHandler.Create)
	dash.PUT("/employees/:id", employeesHandler.Update)
	dash.DELETE("/employees/:id", employeesHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, base)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
