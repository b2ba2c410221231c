package main

import (
	"context"
	"log"
	"time"

	"backoffice-api/internal/core/cache"
	"backoffice-api/internal/core/config"
	"backoffice-api/internal/core/datastore"
	"backoffice-api/internal/core/flash"
	"backoffice-api/internal/core/logger"
	"backoffice-api/internal/core/server"
	authadapter "backoffice-api/internal/features/auth/adapters"
	authhandler "backoffice-api/internal/features/auth/handler"
	authservice "backoffice-api/internal/features/auth/service"
	catalogadapter "backoffice-api/internal/features/catalog/adapters"
	cataloghandler "backoffice-api/internal/features/catalog/handler"
	catalogservice "backoffice-api/internal/features/catalog/service"
	customerhandler "backoffice-api/internal/features/customers/handler"
	customerservice "backoffice-api/internal/features/customers/service"
	dashboardhandler "backoffice-api/internal/features/dashboard/handler"
	dashboardservice "backoffice-api/internal/features/dashboard/service"
	eventadapter "backoffice-api/internal/features/events/adapters"
	eventhandler "backoffice-api/internal/features/events/handler"
	eventservice "backoffice-api/internal/features/events/service"
	notificationadapter "backoffice-api/internal/features/notifications/adapters"
	notificationhandler "backoffice-api/internal/features/notifications/handler"
	notificationservice "backoffice-api/internal/features/notifications/service"
	orderadapter "backoffice-api/internal/features/orders/adapters"
	orderhandler "backoffice-api/internal/features/orders/handler"
	orderservice "backoffice-api/internal/features/orders/service"
	promotionadapter "backoffice-api/internal/features/promotions/adapters"
	promotionhandler "backoffice-api/internal/features/promotions/handler"
	promotionservice "backoffice-api/internal/features/promotions/service"
	searchhandler "backoffice-api/internal/features/search/handler"
	searchservice "backoffice-api/internal/features/search/service"
	trackinghandler "backoffice-api/internal/features/tracking/handler"
	trackingservice "backoffice-api/internal/features/tracking/service"
	useradapter "backoffice-api/internal/features/users/adapters"
	userhandler "backoffice-api/internal/features/users/handler"
	userservice "backoffice-api/internal/features/users/service"

	"go.uber.org/zap"
)

// @title Backoffice API
// @version 1.0
// @description Back-office API for the store: orders, customers, catalog, promotions, events, notifications, users and tracking.
// @contact.name API Support
// @contact.email support@backoffice.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Row store
	store := datastore.New(cfg.Store)
	if err := store.HealthCheck(ctx); err != nil {
		l.Fatal("Row store health check failed", zap.Error(err))
	}
	l.Info("Row store connection verified")

	// Redis
	redis, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redis.Close()
	if err := redis.Ping(ctx); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	notices := flash.NewQueue(redis, 5*time.Minute)

	// Orders, customers, tracking
	orderRepo := orderadapter.NewStoreOrderRepository(store)
	orderHdl := orderhandler.NewOrderHandler(orderservice.NewOrderService(orderRepo))
	customerHdl := customerhandler.NewCustomerHandler(customerservice.NewCustomerService(orderRepo))
	trackingHdl := trackinghandler.NewTrackingHandler(trackingservice.NewTrackingService(orderRepo))

	// Catalog
	productRepo := catalogadapter.NewStoreCatalogRepository(store)
	categoryRepo := catalogadapter.NewStoreCategoryRepository(store)
	brandRepo := catalogadapter.NewStoreBrandRepository(store)
	catalogHdl := cataloghandler.NewCatalogHandler(
		catalogservice.NewCatalogService(productRepo, categoryRepo, brandRepo),
	)

	// Auth
	authSvc := authservice.NewAuthService(
		authadapter.NewStoreProfileRepository(store),
		authadapter.NewRedisCodeStore(redis),
		authadapter.NewSMTPMailer(cfg.SMTP),
		cfg,
	)
	authHdl := authhandler.NewAuthHandler(authSvc)

	// Promotions, events, notifications, users
	promotionHdl := promotionhandler.NewPromotionHandler(
		promotionservice.NewPromotionService(promotionadapter.NewStorePromotionRepository(store)),
	)
	eventHdl := eventhandler.NewEventHandler(
		eventservice.NewEventService(eventadapter.NewStoreEventRepository(store)),
	)
	notificationHdl := notificationhandler.NewNotificationHandler(
		notificationservice.NewNotificationService(notificationadapter.NewStoreNotificationRepository(store)),
		notices,
	)
	userHdl := userhandler.NewUserHandler(
		userservice.NewUserService(useradapter.NewStoreUserRepository(store)),
	)

	// Search and dashboard compose the repositories above.
	searchHdl := searchhandler.NewSearchHandler(
		searchservice.NewSearchService(productRepo, brandRepo, orderRepo),
	)
	dashboardHdl := dashboardhandler.NewDashboardHandler(
		dashboardservice.NewDashboardService(productRepo, orderRepo),
	)

	srv := server.New(cfg)
	app := srv.App

	// Public routes
	app.Get("/tracking/:number", trackingHdl.Track)
	app.Post("/auth/signup", authHdl.SignUp)
	app.Post("/auth/verify-otp", authHdl.VerifyCode)
	app.Post("/auth/resend-otp", authHdl.ResendCode)
	app.Post("/auth/signin", authHdl.SignIn)
	app.Post("/auth/signout", authHdl.SignOut)
	app.Post("/auth/reset-password", authHdl.RequestPasswordReset)
	app.Post("/auth/reset-password/confirm", authHdl.ResetPassword)

	// Back-office routes, session required
	admin := app.Group("/", authHdl.RequireSession)

	admin.Get("/dashboard", dashboardHdl.Stats)
	admin.Get("/search", searchHdl.Search)
	admin.Get("/notices", notificationHdl.DrainNotices)

	admin.Get("/orders", orderHdl.ListOrders)
	admin.Get("/orders/:id", orderHdl.GetOrder)
	admin.Put("/orders/:id/status", orderHdl.UpdateStatus)

	admin.Get("/customers", customerHdl.ListCustomers)

	admin.Get("/products", catalogHdl.ListProducts)
	admin.Post("/products", catalogHdl.SaveProduct)
	admin.Put("/products/:id", catalogHdl.SaveProduct)
	admin.Delete("/products/:id", catalogHdl.DeleteProduct)
	admin.Get("/categories", catalogHdl.ListCategories)
	admin.Post("/categories", catalogHdl.SaveCategory)
	admin.Put("/categories/:id", catalogHdl.SaveCategory)
	admin.Delete("/categories/:id", catalogHdl.DeleteCategory)
	admin.Get("/brands", catalogHdl.ListBrands)
	admin.Post("/brands", catalogHdl.SaveBrand)
	admin.Put("/brands/:id", catalogHdl.SaveBrand)
	admin.Delete("/brands/:id", catalogHdl.DeleteBrand)

	admin.Get("/promotions", promotionHdl.ListPromotions)
	admin.Post("/promotions", promotionHdl.SavePromotion)
	admin.Put("/promotions/:id", promotionHdl.SavePromotion)
	admin.Delete("/promotions/:id", promotionHdl.DeletePromotion)

	admin.Get("/events", eventHdl.ListEvents)
	admin.Post("/events", eventHdl.SaveEvent)
	admin.Put("/events/:id", eventHdl.SaveEvent)
	admin.Delete("/events/:id", eventHdl.DeleteEvent)

	admin.Get("/notifications", notificationHdl.ListNotifications)
	admin.Post("/notifications", notificationHdl.SaveNotification)
	admin.Put("/notifications/:id", notificationHdl.SaveNotification)
	admin.Post("/notifications/:id/send", notificationHdl.SendNotification)
	admin.Delete("/notifications/:id", notificationHdl.DeleteNotification)

	admin.Get("/users", userHdl.ListUsers)
	admin.Put("/users/:id/role", userHdl.AssignRole)
	admin.Delete("/users/:id/role", userHdl.RemoveRole)
	admin.Delete("/users/:id", userHdl.DeleteUser)
	admin.Get("/settings/permissions", userHdl.ListPermissions)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
