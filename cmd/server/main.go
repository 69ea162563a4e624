package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/adapter/cache"
	"github.com/stylesam/luxuria/internal/config"
	"github.com/stylesam/luxuria/internal/database"
	"github.com/stylesam/luxuria/internal/repository"
	postgresrepo "github.com/stylesam/luxuria/internal/repository/postgres"
	"github.com/stylesam/luxuria/internal/service"
	"github.com/stylesam/luxuria/internal/transport/http/handlers"
	"github.com/stylesam/luxuria/internal/transport/http/middleware"
	"github.com/stylesam/luxuria/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	// Database
	if err := database.Migrate(context.Background(), cfg); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Repositories
	var userRepo repository.UserRepository = postgresrepo.NewUserRepo(pool)
	zoneRepo := postgresrepo.NewZoneRepo(pool)

	// Optional Redis read-through cache for user lookups
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		userRepo = cache.NewCachedUserRepo(userRepo, client, cfg.UserCacheTTL, logger)
		logger.Info("user cache enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	// Services
	userService := service.NewUserService(userRepo, logger)
	authService := service.NewAuthService(userRepo, userService, cfg.JWTSecret, cfg.TokenTTL)
	friendService := service.NewFriendService(userRepo, logger)
	zoneService := service.NewZoneService(zoneRepo, userRepo, logger)

	// Real-time event feed
	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub, logger)
	userService.SetNotifier(notifier)
	friendService.SetNotifier(notifier)
	zoneService.SetNotifier(notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	friendHandler := handlers.NewFriendHandler(friendService, logger)
	zoneHandler := handlers.NewZoneHandler(zoneService, logger)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/users", userHandler.Create)

	// Protected - Users
	mux.Handle("GET /api/v1/users", auth(http.HandlerFunc(userHandler.List)))
	mux.Handle("GET /api/v1/users/{id}", auth(http.HandlerFunc(userHandler.Get)))
	mux.Handle("PATCH /api/v1/users/{id}", auth(http.HandlerFunc(userHandler.Update)))
	mux.Handle("DELETE /api/v1/users/{id}", auth(http.HandlerFunc(userHandler.Delete)))

	// Protected - Friends
	mux.Handle("GET /api/v1/users/{id}/friends", auth(http.HandlerFunc(friendHandler.List)))
	mux.Handle("PATCH /api/v1/users/{id}/friends", auth(http.HandlerFunc(friendHandler.Add)))
	mux.Handle("DELETE /api/v1/users/{id}/friends", auth(http.HandlerFunc(friendHandler.Remove)))

	// Protected - Zones
	mux.Handle("POST /api/v1/users/{id}/zones", auth(http.HandlerFunc(zoneHandler.Create)))
	mux.Handle("GET /api/v1/users/{id}/zones", auth(http.HandlerFunc(zoneHandler.List)))
	mux.Handle("GET /api/v1/users/{id}/zones/{zoneId}", auth(http.HandlerFunc(zoneHandler.Get)))
	mux.Handle("PATCH /api/v1/users/{id}/zones/{zoneId}", auth(http.HandlerFunc(zoneHandler.Update)))
	mux.Handle("DELETE /api/v1/users/{id}/zones/{zoneId}", auth(http.HandlerFunc(zoneHandler.Delete)))

	// Real-time events (auth via query param)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret, logger))

	// Start server with CORS and request logging
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))

	handler := middleware.CORS(middleware.RequestLogger(logger)(mux))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.Environment == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
