package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	authapp "github.com/tokobajusablon/storefront/internal/auth/application"
	authdomain "github.com/tokobajusablon/storefront/internal/auth/domain"
	authmysql "github.com/tokobajusablon/storefront/internal/auth/infrastructure/persistence/mysql"
	authredis "github.com/tokobajusablon/storefront/internal/auth/infrastructure/persistence/redis"
	authhttp "github.com/tokobajusablon/storefront/internal/auth/interfaces/http"
	cartapp "github.com/tokobajusablon/storefront/internal/cart/application"
	cartredis "github.com/tokobajusablon/storefront/internal/cart/infrastructure/persistence/redis"
	carthttp "github.com/tokobajusablon/storefront/internal/cart/interfaces/http"
	catalogapp "github.com/tokobajusablon/storefront/internal/catalog/application"
	catalogdomain "github.com/tokobajusablon/storefront/internal/catalog/domain"
	catalogmysql "github.com/tokobajusablon/storefront/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/tokobajusablon/storefront/internal/catalog/interfaces/http"
	checkoutapp "github.com/tokobajusablon/storefront/internal/checkout/application"
	checkoutdomain "github.com/tokobajusablon/storefront/internal/checkout/domain"
	"github.com/tokobajusablon/storefront/internal/checkout/infrastructure/messaging"
	checkouthttp "github.com/tokobajusablon/storefront/internal/checkout/interfaces/http"
	settingsapp "github.com/tokobajusablon/storefront/internal/settings/application"
	settingsdomain "github.com/tokobajusablon/storefront/internal/settings/domain"
	settingsmysql "github.com/tokobajusablon/storefront/internal/settings/infrastructure/persistence/mysql"
	settingshttp "github.com/tokobajusablon/storefront/internal/settings/interfaces/http"
	"github.com/tokobajusablon/storefront/pkg/cache"
	"github.com/tokobajusablon/storefront/pkg/config"
	"github.com/tokobajusablon/storefront/pkg/db"
	"github.com/tokobajusablon/storefront/pkg/logger"
	"github.com/tokobajusablon/storefront/pkg/metrics"
	"github.com/tokobajusablon/storefront/pkg/middleware"
	"github.com/tokobajusablon/storefront/pkg/mq"
	"github.com/tokobajusablon/storefront/pkg/ratelimit"
)

var configPath = flag.String("config", "configs/config.toml", "config file path")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	ctx := context.Background()

	// Database
	database, err := db.Init(db.Config{
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to connect database", "error", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&catalogdomain.Product{},
		&catalogdomain.Category{},
		&settingsdomain.Setting{},
		&authdomain.User{},
	); err != nil {
		logger.Fatal(ctx, "failed to migrate database", "error", err)
	}

	// Redis
	redisClient, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to connect redis", "error", err)
	}

	// Kafka producer; no brokers configured means no events.
	var publisher checkoutdomain.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := mq.NewProducer(mq.Config{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		defer producer.Close()
		publisher = messaging.NewKafkaPublisher(producer)
	}

	// Repositories
	productRepo := catalogmysql.NewProductRepository(database.DB)
	categoryRepo := catalogmysql.NewCategoryRepository(database.DB)
	settingRepo := settingsmysql.NewSettingRepository(database.DB)
	userRepo := authmysql.NewUserRepository(database.DB)
	sessionRepo := authredis.NewSessionRepository(redisClient)
	cartRepo := cartredis.NewCartRepository(redisClient, time.Duration(cfg.Store.CartTTLHours)*time.Hour)

	// Application services
	catalogSvc := catalogapp.NewCatalogService(productRepo, categoryRepo)
	settingsSvc := settingsapp.NewSettingsService(settingRepo)
	cartSvc := cartapp.NewCartService(cartRepo)
	checkoutSvc := checkoutapp.NewService(cartSvc, settingsSvc, publisher, cfg.Store.FallbackWhatsApp)
	authSvc := authapp.NewAuthService(userRepo, sessionRepo, time.Duration(cfg.Store.SessionTTLHours)*time.Hour)

	if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatal(ctx, "failed to seed admin account", "error", err)
	}

	// HTTP
	if cfg.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	m := metrics.New("storefront")

	r := gin.New()
	r.Use(middleware.RequestLogging(), middleware.Recovery(), middleware.CORS(), m.Middleware())
	r.GET("/metrics", m.Handler())

	var checkoutLimit []gin.HandlerFunc
	if cfg.Store.CheckoutRatePerMinute > 0 {
		limiter := ratelimit.NewRedisLimiter(redisClient)
		checkoutLimit = append(checkoutLimit,
			ratelimit.Middleware(limiter, "checkout", ratelimit.PerMinute(cfg.Store.CheckoutRatePerMinute)))
	}

	api := r.Group("/api")

	cataloghttp.NewHandler(catalogSvc).RegisterPublicRoutes(api)
	settingsHandler := settingshttp.NewHandler(settingsSvc)
	settingsHandler.RegisterPublicRoutes(api)
	carthttp.NewHandler(cartSvc, m).RegisterRoutes(api)
	checkouthttp.NewHandler(checkoutSvc, m).RegisterRoutes(api, checkoutLimit...)

	adminOpen := api.Group("/v1/admin")
	adminAuthed := api.Group("/v1/admin")
	adminAuthed.Use(authhttp.RequireAdmin(authSvc))
	authhttp.NewHandler(authSvc).RegisterRoutes(adminOpen, adminAuthed)
	cataloghttp.NewHandler(catalogSvc).RegisterAdminRoutes(adminAuthed)
	settingsHandler.RegisterAdminRoutes(adminAuthed)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(gctx, "HTTP server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			logger.Info(gctx, "shutting down...")
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "server exited with error", "error", err)
	}
}
