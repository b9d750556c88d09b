package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-monitor-api/infrastructure/integrator/deepseek"
	"github.com/vfg2006/sales-monitor-api/infrastructure/integrator/deepseek/deepseekclient"
	"github.com/vfg2006/sales-monitor-api/infrastructure/repository"
	"github.com/vfg2006/sales-monitor-api/internal/api"
	"github.com/vfg2006/sales-monitor-api/internal/config"
	"github.com/vfg2006/sales-monitor-api/internal/scheduler"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/flagging"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesmanRepo := repository.NewSalesmanRepository(pgConn)
	leaderRepo := repository.NewLeaderRepository(pgConn)
	regionRepo := repository.NewRegionRepository(pgConn)
	outletRepo := repository.NewOutletRepository(pgConn)
	checkinRepo := repository.NewCheckinRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	insightCacheRepo := repository.NewInsightCacheRepository(pgConn)

	resolver := timewindow.NewResolver(cfg.Business.TZOffset)

	analyzer := analyzing.NewService(
		resolver,
		salesmanRepo,
		checkinRepo,
		saleRepo,
		leaderRepo,
		regionRepo,
		outletRepo,
	)
	detector := flagging.NewService(resolver, checkinRepo)

	deepseekClient := deepseekclient.NewClient(cfg.DeepSeek)
	generator := deepseek.New(cfg.DeepSeek, deepseekClient)

	insighter := insighting.NewService(resolver, analyzer, detector, generator, insightCacheRepo)
	ingester := ingesting.NewService(salesmanRepo, outletRepo, checkinRepo, saleRepo)

	insightWarmService := scheduler.NewInsightWarmService(cfg, resolver, insighter)
	if err := insightWarmService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting insight warm scheduler")
	} else {
		logrus.Info("insight warm scheduler started")
	}

	server, err := api.New(
		cfg,
		resolver,
		analyzer,
		detector,
		insighter,
		ingester,
		insightWarmService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
