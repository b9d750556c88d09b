package analyzing

import (
	"context"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

// Analyzer computes activity metrics from raw check-in and sale events.
// Every result is derived fresh from the store; nothing is persisted.
type Analyzer interface {
	// DailyMetricsForDate aggregates every active salesman's activity
	// for one business-local date.
	DailyMetricsForDate(ctx context.Context, date string) (*domain.AggregatedMetrics, error)

	// MetricsForRange aggregates over an inclusive date range. Outlet
	// uniqueness is counted across the whole range, not per day.
	MetricsForRange(ctx context.Context, from, to string) (*domain.AggregatedMetrics, error)

	// MetricsForSalesman returns the per-day breakdown for one salesman.
	// Salesman is nil in the result when the id does not exist.
	MetricsForSalesman(ctx context.Context, salesmanID, from, to string) (*domain.SalesmanPeriodMetrics, error)

	// SalesmanDayDetail returns the raw events for one salesman on one
	// date, or nil when the salesman does not exist.
	SalesmanDayDetail(ctx context.Context, salesmanID, date string) (*domain.SalesmanDayDetail, error)

	// LeaderRegionMetrics rolls activity up to leaders and regions over
	// an inclusive date range.
	LeaderRegionMetrics(ctx context.Context, from, to string) (*domain.LeaderRegionMetrics, error)

	// OutletMetricsForPeriod builds the per-outlet activity table over
	// an inclusive date range.
	OutletMetricsForPeriod(ctx context.Context, from, to string) ([]domain.OutletMetrics, error)

	// DaypartStats breaks each salesman's visits down by business-local
	// daypart over an inclusive date range, busiest slots first.
	DaypartStats(ctx context.Context, from, to string) ([]domain.DaypartStat, error)

	// Rankings builds the top/bottom-3 tables from aggregated metrics.
	Rankings(metrics *domain.AggregatedMetrics) *domain.Rankings
}
