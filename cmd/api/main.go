package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-insights-api/infrastructure/repository"
	"github.com/vfg2006/inventory-insights-api/internal/api"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/scheduler"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/cataloging"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/summarizing"
	"github.com/vfg2006/inventory-insights-api/pkg/tagcache"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	purchaseRepo := repository.NewPurchaseRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	salesSummaryRepo := repository.NewSalesSummaryRepository(pgConn)
	purchaseSummaryRepo := repository.NewPurchaseSummaryRepository(pgConn)
	expenseSummaryRepo := repository.NewExpenseSummaryRepository(pgConn)

	// One shared cache so the rollup jobs invalidate the read-side tags
	cache := tagcache.New()

	authService := authenticating.NewService(userRepo, cfg)
	authenticator := authService.(*authenticating.Service).WithCache(cache)

	catalogSvc := cataloging.NewService(cfg, productRepo)
	catalogService := catalogSvc.(*cataloging.Service).WithCache(cache)

	reportSvc := reporting.NewService(
		cfg,
		productRepo,
		salesSummaryRepo,
		purchaseSummaryRepo,
		expenseSummaryRepo,
	)
	reportService := reportSvc.(*reporting.Service).WithCache(cache)

	summarySvc := summarizing.NewService(
		cfg,
		saleRepo,
		purchaseRepo,
		expenseRepo,
		salesSummaryRepo,
		purchaseSummaryRepo,
		expenseSummaryRepo,
	)
	summaryService := summarySvc.(*summarizing.Service).WithCache(cache)

	salesSummarySyncService := scheduler.NewSalesSummarySyncService(summaryService, cfg)
	purchaseSummarySyncService := scheduler.NewPurchaseSummarySyncService(summaryService, cfg)
	expenseSummarySyncService := scheduler.NewExpenseSummarySyncService(summaryService, cfg)

	if err := salesSummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the sales summary sync scheduler")
	} else {
		logrus.Info("Sales summary sync scheduler started")
	}

	if err := purchaseSummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the purchase summary sync scheduler")
	} else {
		logrus.Info("Purchase summary sync scheduler started")
	}

	if err := expenseSummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the expense summary sync scheduler")
	} else {
		logrus.Info("Expense summary sync scheduler started")
	}

	server, err := api.New(
		cfg,
		catalogService,
		reportService,
		authenticator,
		salesSummarySyncService,
		purchaseSummarySyncService,
		expenseSummarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and behavior
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn opens the database connection
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
