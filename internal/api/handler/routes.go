package handler

import (
	"net/http"

	"github.com/vfg2006/sales-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/flagging"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(resolver *timewindow.Resolver, analyzer analyzing.Analyzer, detector flagging.Detector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/daily",
			Method:  http.MethodGet,
			Handler: DailyAnalytics(resolver, analyzer, detector),
		},
		{
			Path:    "/v1/analytics/salesman",
			Method:  http.MethodGet,
			Handler: SalesmanAnalytics(analyzer, detector),
		},
		{
			Path:    "/v1/analytics/salesman/day",
			Method:  http.MethodGet,
			Handler: SalesmanDay(resolver, analyzer),
		},
		{
			Path:    "/v1/analytics/leader-region",
			Method:  http.MethodGet,
			Handler: LeaderRegion(resolver, analyzer),
		},
		{
			Path:    "/v1/analytics/outlets",
			Method:  http.MethodGet,
			Handler: Outlets(resolver, analyzer),
		},
	}
}

func Insights(resolver *timewindow.Resolver, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/daily",
			Method:  http.MethodGet,
			Handler: DailyInsight(resolver, insighter),
		},
		{
			Path:    "/v1/insights/weekly",
			Method:  http.MethodGet,
			Handler: WeeklyInsight(resolver, insighter),
		},
		{
			Path:    "/v1/insights/sales-performance",
			Method:  http.MethodGet,
			Handler: SalesPerformanceInsights(resolver, insighter),
		},
	}
}

func Ingest(ingester ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ingest/checkin",
			Method:  http.MethodPost,
			Handler: IngestCheckin(ingester),
		},
		{
			Path:    "/v1/ingest/sale",
			Method:  http.MethodPost,
			Handler: IngestSale(ingester),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
