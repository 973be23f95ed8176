package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/watch-storefront/application/admin"
	cartapp "github.com/muhammadheryan/watch-storefront/application/cart"
	catalogapp "github.com/muhammadheryan/watch-storefront/application/catalog"
	checkoutapp "github.com/muhammadheryan/watch-storefront/application/checkout"
	historyapp "github.com/muhammadheryan/watch-storefront/application/history"
	sessionapp "github.com/muhammadheryan/watch-storefront/application/session"
	"github.com/muhammadheryan/watch-storefront/cmd/config"
	redisclient "github.com/muhammadheryan/watch-storefront/cmd/redis"
	_ "github.com/muhammadheryan/watch-storefront/docs"
	adminRepo "github.com/muhammadheryan/watch-storefront/repository/admin"
	authRepo "github.com/muhammadheryan/watch-storefront/repository/auth"
	cartRepo "github.com/muhammadheryan/watch-storefront/repository/cart"
	catalogRepo "github.com/muhammadheryan/watch-storefront/repository/catalog"
	checkoutRepo "github.com/muhammadheryan/watch-storefront/repository/checkout"
	historyRepo "github.com/muhammadheryan/watch-storefront/repository/history"
	journalRepo "github.com/muhammadheryan/watch-storefront/repository/journal"
	redisRepo "github.com/muhammadheryan/watch-storefront/repository/redis"
	txRepo "github.com/muhammadheryan/watch-storefront/repository/tx"
	"github.com/muhammadheryan/watch-storefront/thirdparty/backend"
	"github.com/muhammadheryan/watch-storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/watch-storefront/transport"
	"github.com/muhammadheryan/watch-storefront/utils/logger"
	validatorx "github.com/muhammadheryan/watch-storefront/utils/validator"
	"go.uber.org/zap"
)

// @title WATCH STOREFRONT API
// @version 1.0
// @description Storefront gateway for the watch shop: session, cart, checkout and order history
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to the checkout journal database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Initialize repositories
	AuthRepo := authRepo.NewAuthRepository(client)
	CatalogRepo := catalogRepo.NewCatalogRepository(client)
	CartRepo := cartRepo.NewCartRepository(client)
	CheckoutRepo := checkoutRepo.NewCheckoutRepository(client)
	HistoryRepo := historyRepo.NewHistoryRepository(client)
	AdminRepo := adminRepo.NewAdminRepository(client)
	RedisRepo := redisRepo.NewRepository(rdb)
	JournalRepo := journalRepo.NewJournalRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	SessionApp := sessionapp.NewSessionApp(cfg, AuthRepo, RedisRepo)
	CatalogApp := catalogapp.NewCatalogApp(CatalogRepo)
	CartApp := cartapp.NewCartApp(cfg, CartRepo, RedisRepo)
	HistoryApp := historyapp.NewHistoryApp(cfg, HistoryRepo, RedisRepo)

	// The local history view is reset synchronously; with RabbitMQ enabled
	// the event is also published for every other gateway instance.
	var invalidator checkoutapp.HistoryInvalidator = HistoryApp
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
		invalidator = checkoutapp.Invalidators{HistoryApp, publisher}
	}

	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, CheckoutRepo, CartApp, invalidator, TxRepo, JournalRepo)
	AdminApp := adminapp.NewAdminApp(AdminRepo, JournalRepo, invalidator)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:      cfg,
		SessionApp:  SessionApp,
		CatalogApp:  CatalogApp,
		CartApp:     CartApp,
		CheckoutApp: CheckoutApp,
		HistoryApp:  HistoryApp,
		AdminApp:    AdminApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
