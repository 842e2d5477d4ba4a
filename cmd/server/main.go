package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"ambition/internal/config"
	"ambition/internal/handlers"
	"ambition/internal/middleware"
	"ambition/internal/repositories/mongodb"
	"ambition/internal/services"
	"ambition/internal/utils"
	"ambition/pkg/cache"
	"ambition/pkg/logger"
	"ambition/pkg/maps"
	"ambition/pkg/push"
	"ambition/pkg/realtime"
	"ambition/pkg/sms"
	"ambition/pkg/storage"
	"ambition/routes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := connectMongo(cfg.Database)
	if err != nil {
		appLogger.Fatalf("failed to connect to mongodb: %v", err)
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Warnf("redis unavailable, events will not be mirrored: %v", err)
		redisCache = nil
	}

	// Repositories
	itemRepo := mongodb.NewItemRepository(db)
	categoryRepo := mongodb.NewVehicleCategoryRepository(db)
	carCategoryRepo := mongodb.NewCarCategoryRepository(db)
	driverRepo := mongodb.NewDriverRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewRideRequestRepository(db)
	zoneRepo := mongodb.NewCongestionZoneRepository(db)
	polylineRepo := mongodb.NewPolylineRepository(db)
	otpRepo := mongodb.NewOTPRepository(db)
	tokenRepo := mongodb.NewDeviceTokenRepository(db)

	// External providers
	distanceProvider, err := maps.NewGoogleMapsProvider(cfg.Maps.GoogleMapsAPIKey)
	if err != nil {
		appLogger.Fatalf("failed to initialize maps provider: %v", err)
	}

	smsSender := buildSMSSender(cfg.SMS, appLogger)
	store := buildStorage(cfg.Storage, appLogger)
	androidPush, iosPush := buildPushProviders(cfg.Push, appLogger)

	hub := realtime.NewHub()
	go hub.Run()

	// Services
	cargoService := services.NewCargoService(itemRepo, appLogger)
	categoryService := services.NewCategoryService(categoryRepo, cfg.Pricing.MoveHelpersOccupySeats, appLogger)
	fareService := services.NewFareService(utils.NewBandedRand(), appLogger)
	notificationService := services.NewNotificationService(hub, redisCache, tokenRepo, androidPush, iosPush, appLogger)
	requestService := services.NewRideRequestService(
		requestRepo, itemRepo, categoryRepo, carCategoryRepo, driverRepo, zoneRepo, polylineRepo,
		cargoService, fareService, distanceProvider, notificationService,
		cfg.Pricing.UpstreamTimeout, appLogger,
	)
	authService := services.NewAuthService(
		userRepo, driverRepo, otpRepo, smsSender,
		cfg.Security.JWTSecret, cfg.Security.JWTAccessTokenTTL,
		cfg.Security.OTPLength, cfg.Security.OTPExpiry, appLogger,
	)
	driverService := services.NewDriverService(driverRepo, requestRepo, notificationService, appLogger)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(itemRepo, categoryRepo, carCategoryRepo)
	paymentService := services.NewPaymentService(requestRepo, cfg.Payment.StripeSecretKey, cfg.Payment.Currency, appLogger)

	// Handlers
	rideHandler := handlers.NewRideRequestHandler(requestService, cargoService, categoryService)
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	driverHandler := handlers.NewDriverHandler(driverService)
	userHandler := handlers.NewUserHandler(userService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, hub)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, store, cfg.Storage.MaxUploadSizeMB, appLogger)
		routes.SetupCatalogRoutes(v1, catalogHandler, cfg.Security.JWTSecret)
		routes.SetupRideRequestRoutes(v1, rideHandler, paymentHandler, cfg.Security.JWTSecret)
		routes.SetupProfileRoutes(v1, userHandler, driverHandler, store, cfg.Storage.MaxUploadSizeMB, cfg.Security.JWTSecret, appLogger)
		routes.SetupNotificationRoutes(v1, notificationHandler, cfg.Security.JWTSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("server exited: %v", err)
	}
}

func connectMongo(cfg *config.DatabaseConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize)).
		SetMinPoolSize(uint64(cfg.MinPoolSize)).
		SetSocketTimeout(cfg.SocketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client.Database(cfg.Database), nil
}

func buildSMSSender(cfg *config.SMSConfig, log *logger.Logger) sms.Sender {
	switch cfg.Provider {
	case "aws_sns":
		sender, err := sms.NewAWSSNSSender(cfg.AWSRegion)
		if err != nil {
			log.Fatalf("failed to initialize SNS sender: %v", err)
		}
		return sender
	default:
		return sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	}
}

func buildStorage(cfg *config.StorageConfig, log *logger.Logger) storage.Provider {
	switch cfg.Provider {
	case "gcs":
		store, err := storage.NewGCSStorage(cfg.GCSBucket, cfg.GCSCredentials)
		if err != nil {
			log.Fatalf("failed to initialize GCS storage: %v", err)
		}
		return store
	case "s3":
		store, err := storage.NewS3Storage(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
		return store
	default:
		store, err := storage.NewLocalStorage(cfg.LocalBasePath, cfg.LocalBaseURL)
		if err != nil {
			log.Fatalf("failed to initialize local storage: %v", err)
		}
		return store
	}
}

func buildPushProviders(cfg *config.PushConfig, log *logger.Logger) (push.Provider, push.Provider) {
	var android, ios push.Provider

	if cfg.FCMCredentialsFile != "" {
		fcm, err := push.NewFCMProvider(cfg.FCMCredentialsFile)
		if err != nil {
			log.Warnf("FCM unavailable, android pushes disabled: %v", err)
		} else {
			android = fcm
		}
	}

	if cfg.APNSKeyFile != "" {
		apns, err := push.NewAPNSProvider(cfg.APNSKeyFile, cfg.APNSKeyID, cfg.APNSTeamID, cfg.APNSTopic, cfg.APNSProduction)
		if err != nil {
			log.Warnf("APNs unavailable, ios pushes disabled: %v", err)
		} else {
			ios = apns
		}
	}

	return android, ios
}
