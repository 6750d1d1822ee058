package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"commerce-gateway/internal/config"
	"commerce-gateway/internal/database"
	"commerce-gateway/internal/handlers"
	"commerce-gateway/internal/middleware"
	"commerce-gateway/internal/repositories"
	"commerce-gateway/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// One HTTP client per downstream service, constructed at startup and
	// reused per request; each carries that service's configured timeout.
	catalogClient := &http.Client{Timeout: cfg.Catalog.Timeout}
	ordersClient := &http.Client{Timeout: cfg.Orders.Timeout}
	promoClient := &http.Client{Timeout: cfg.Promo.Timeout}

	// Product catalog client, optionally wrapped with a Redis cache for
	// the browse path
	var catalog services.ProductCatalog = services.NewCatalogService(services.CatalogConfig{
		BaseURL: cfg.Catalog.BaseURL,
	}, catalogClient)

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		catalog = services.NewCachedCatalog(catalog, rdb, cfg.Redis.CacheTTL)
		log.Println("Product browse cache enabled")
	}

	// Downstream orders and promo clients
	ordersService := services.NewOrdersService(services.OrdersConfig{
		BaseURL: cfg.Orders.BaseURL,
	}, ordersClient)

	promoService := services.NewPromoService(services.PromoConfig{
		BaseURL: cfg.Promo.BaseURL,
	}, promoClient)

	// Appointments need a database; the gateway degrades gracefully
	// without one.
	var appointmentService services.AppointmentServiceInterface
	var healthHandler *handlers.HealthHandler

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Printf("Warning: Failed to connect to database: %v", err)
		log.Println("Continuing without appointments...")
		healthHandler = handlers.NewHealthHandler(nil)
	} else {
		defer db.Close()
		log.Println("Database connection established successfully")

		if err := db.RunMigrations(); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		appointmentRepo := repositories.NewAppointmentRepository(db.DB)
		appointmentService = services.NewAppointmentService(appointmentRepo)
		healthHandler = handlers.NewHealthHandler(db.DB)
	}

	// Router and middleware
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(middleware.SecurityHeadersMiddleware)

	rateLimiter := middleware.NewMutationRateLimiter(60, time.Minute)
	r.Use(middleware.RateLimit(rateLimiter))

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", healthHandler.Health)

	// Mount the configured cart variant
	switch cfg.Cart.Mode {
	case config.CartModeLocal:
		cartHandler := handlers.NewLocalCartHandler(
			services.NewLocalCartService(catalog), cfg.Cart.CookieTTL)
		cartHandler.RegisterRoutes(r)
		log.Println("Cart mode: local")
	default:
		cartHandler := handlers.NewCartHandler(
			services.NewCartService(catalog), cfg.Cart.CookieTTL)
		cartHandler.RegisterRoutes(r)
		log.Println("Cart mode: delegated")
	}

	handlers.NewProductsHandler(catalog).RegisterRoutes(r)
	handlers.NewOrdersHandler(ordersService, cfg.Cart.CookieTTL).RegisterRoutes(r)
	handlers.NewPromosHandler(promoService).RegisterRoutes(r)
	handlers.NewAppointmentsHandler(appointmentService).RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Gateway listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
