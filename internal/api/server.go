package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-monitor-api/internal/api/handler"
	"github.com/vfg2006/sales-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/sales-monitor-api/internal/config"
	"github.com/vfg2006/sales-monitor-api/internal/scheduler"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/flagging"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-monitor-api/pkg/middleware"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	resolver *timewindow.Resolver,
	analyzer analyzing.Analyzer,
	detector flagging.Detector,
	insighter insighting.Insighter,
	ingester ingesting.Ingester,
	insightWarmService *scheduler.InsightWarmService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		InsightWarmService: insightWarmService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Analytics(resolver, analyzer, detector)...),
		router.WithRoutes(handler.Insights(resolver, insighter)...),
		router.WithRoutes(handler.Ingest(ingester)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("http server stopped")
	return nil
}
