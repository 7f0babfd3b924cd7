package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jigarafy/backend/internal/auth"
	"jigarafy/backend/internal/cache"
	"jigarafy/backend/internal/config"
	"jigarafy/backend/internal/database"
	"jigarafy/backend/internal/events"
	"jigarafy/backend/internal/handler"
	"jigarafy/backend/internal/hub"
	"jigarafy/backend/internal/logger"
	"jigarafy/backend/internal/middleware"
	"jigarafy/backend/internal/repository"
	"jigarafy/backend/internal/service"
	"jigarafy/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "jigarafy/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	notificationHeartbeat = 25 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// @title           Jigarafy API
// @version         1.0
// @description     Language exchange social backend: friend requests, admin tools and video-call tokens.
// @host            localhost:5001
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}
	store := repository.NewStore(db)
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	var (
		denylist service.TokenDenylist
		limiter  auth.RateLimiter
	)
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		cancel()
		if err != nil {
			zlog.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		denylist = cache.NewTokenDenylist(rdb)
		limiter = cache.NewLimiter(rdb, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow)
	} else {
		zlog.Warn("REDIS_ADDR not set; auth rate limiting and token revocation disabled")
	}

	notifications := hub.NewHub(16)
	publishers := []events.Publisher{events.NewHubPublisher(notifications)}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer, err := events.NewSyncProducer(brokers, "jigarafy-backend")
		if err != nil {
			zlog.Fatal("kafka unavailable", zap.Error(err))
		}
		kafka := events.NewKafkaPublisher(producer, cfg.KafkaTopic)
		defer kafka.Close()
		publishers = append(publishers, kafka)
	}
	publisher := events.NewFanout(zlog, publishers...)

	if cfg.StreamAPIKey == "" || cfg.StreamAPISecret == "" {
		zlog.Warn("STREAM_API_KEY or STREAM_API_SECRET not set; /api/chat/token will fail")
	}

	authService := service.NewAuthService(store.Users(), tokens, denylist)
	userService := service.NewUserService(store)
	friendService := service.NewFriendService(store, publisher, zlog)
	adminService := service.NewAdminService(store, publisher, zlog)
	streamService := service.NewStreamService(cfg.StreamAPISecret)

	authHandler := handler.NewAuthHandler(authService, userService, tokens.TTL(), cfg.IsProduction(), zlog)
	userHandler := handler.NewUserHandler(userService, zlog)
	friendHandler := handler.NewFriendHandler(friendService, zlog)
	adminHandler := handler.NewAdminHandler(adminService, zlog)
	streamHandler := handler.NewStreamHandler(streamService, zlog)
	notificationHandler := handler.NewNotificationHandler(notifications, notificationHeartbeat)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(zlog),
		gin.Recovery(),
		middleware.Metrics(),
		middleware.CORS(cfg.AllowedOrigins()),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	protect := auth.AuthMiddleware(authService, zlog)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			signup := []gin.HandlerFunc{authHandler.Signup}
			login := []gin.HandlerFunc{authHandler.Login}
			if limiter != nil {
				signup = append([]gin.HandlerFunc{auth.RateLimit(limiter, "signup", zlog)}, signup...)
				login = append([]gin.HandlerFunc{auth.RateLimit(limiter, "login", zlog)}, login...)
			}
			authRoutes.POST("/signup", signup...)
			authRoutes.POST("/login", login...)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", protect, authHandler.Me)
			authRoutes.POST("/onboarding", protect, authHandler.Onboard)
		}

		userRoutes := api.Group("/users")
		userRoutes.Use(protect)
		{
			userRoutes.GET("", userHandler.Recommended)
			userRoutes.PUT("/me", userHandler.UpdateProfile)
			userRoutes.GET("/friends", friendHandler.Friends)
			userRoutes.POST("/friend-request/:id", friendHandler.SendRequest)
			userRoutes.PUT("/friend-request/:id/accept", friendHandler.AcceptRequest)
			userRoutes.GET("/friend-requests", friendHandler.FriendRequests)
			userRoutes.GET("/outgoing-friend-requests", friendHandler.OutgoingRequests)
		}

		api.GET("/chat/token", protect, streamHandler.Token)
		api.GET("/notifications/stream", protect, notificationHandler.Stream)

		adminRoutes := api.Group("/admin")
		adminRoutes.Use(protect, auth.AdminMiddleware())
		{
			adminRoutes.GET("/dashboard", adminHandler.Dashboard)
			adminRoutes.GET("/users", adminHandler.ListUsers)
			adminRoutes.GET("/users/:id", adminHandler.GetUser)
			adminRoutes.PUT("/users/:id", adminHandler.UpdateUser)
			adminRoutes.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
