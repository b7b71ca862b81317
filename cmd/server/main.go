package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/cache"
	"github.com/mamadbah2/barstock/internal/config"
	"github.com/mamadbah2/barstock/internal/events"
	"github.com/mamadbah2/barstock/internal/repository"
	"github.com/mamadbah2/barstock/internal/repository/memory"
	"github.com/mamadbah2/barstock/internal/repository/mongodb"
	"github.com/mamadbah2/barstock/internal/repository/sheets"
	"github.com/mamadbah2/barstock/internal/scheduler"
	"github.com/mamadbah2/barstock/internal/server/handlers"
	"github.com/mamadbah2/barstock/internal/server/router"
	commandsvc "github.com/mamadbah2/barstock/internal/service/commands"
	inventorysvc "github.com/mamadbah2/barstock/internal/service/inventory"
	ordersvc "github.com/mamadbah2/barstock/internal/service/orders"
	purchasesvc "github.com/mamadbah2/barstock/internal/service/purchases"
	reportingsvc "github.com/mamadbah2/barstock/internal/service/reporting"
	sessionsvc "github.com/mamadbah2/barstock/internal/service/sessions"
	whatsappsvc "github.com/mamadbah2/barstock/internal/service/whatsapp"
	whatsappclient "github.com/mamadbah2/barstock/pkg/clients/whatsapp"
	"github.com/mamadbah2/barstock/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, baseLogger.Named("repo"))
	if err != nil {
		baseLogger.Fatal("failed to init storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close storage", zap.Error(err))
		}
	}()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQ.Enabled() {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.RabbitMQ, baseLogger.Named("events.amqp"))
		if err != nil {
			baseLogger.Warn("rabbitmq unavailable, domain events disabled", zap.Error(err))
		} else {
			publisher = amqpPublisher
			defer func() { _ = amqpPublisher.Close() }()
		}
	}

	var reportCache cache.Store = cache.NewMemoryStore()
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			baseLogger.Warn("redis unavailable, using in-process report cache", zap.Error(err))
		} else {
			reportCache = cache.NewRedisStore(client, "barstock:reports", cfg.Redis.TTL, baseLogger.Named("cache.redis"))
			defer func() { _ = client.Close() }()
		}
	}

	var exportSheet sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exportSheet = sheetsRepo
	}

	inventorySvc := inventorysvc.NewService(store, publisher, baseLogger.Named("svc.inventory"))
	sessionSvc := sessionsvc.NewService(store, publisher, baseLogger.Named("svc.sessions"))
	purchaseSvc := purchasesvc.NewService(store, publisher, baseLogger.Named("svc.purchases"))
	reportingSvc := reportingsvc.NewService(store, exportSheet, baseLogger.Named("svc.reporting"))
	orderSvc := ordersvc.NewService(store, reportingSvc, baseLogger.Named("svc.orders"))

	h := router.Handlers{
		Inventory: handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory")),
		Sessions:  handlers.NewSessionHandler(sessionSvc, baseLogger.Named("handlers.sessions")),
		Purchases: handlers.NewPurchaseHandler(purchaseSvc, baseLogger.Named("handlers.purchases")),
		Reports:   handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
		Orders:    handlers.NewOrderHandler(orderSvc, baseLogger.Named("handlers.orders")),
	}

	if cfg.WhatsApp.Enabled() {
		commandDispatcher := commandsvc.NewService(reportingSvc, baseLogger.Named("svc.commands"))
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, commandDispatcher, baseLogger.Named("svc.whatsapp"))
		h.Webhook = handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp"))

		if cfg.WhatsApp.ManagerID != "" {
			sched, err := scheduler.NewScheduler(cfg.Reporting, cfg.WhatsApp.ManagerID, reportingSvc, messagingSvc, baseLogger.Named("scheduler"))
			if err != nil {
				baseLogger.Fatal("failed to init scheduler", zap.Error(err))
			}
			if err := sched.Start(); err != nil {
				baseLogger.Fatal("failed to start scheduler", zap.Error(err))
			}
			defer sched.Stop()
		} else {
			baseLogger.Warn("WHATSAPP_MANAGER_ID missing, scheduled reports disabled")
		}
	} else {
		baseLogger.Warn("whatsapp credentials missing, webhook and scheduled reports disabled")
	}

	engine := router.New(h, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReportCache:    reportCache,
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName, logger.Named("mongodb"))
}
