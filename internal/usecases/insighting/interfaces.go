package insighting

import (
	"context"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

// Insighter produces narrative reports over the analytics aggregates.
// Daily and weekly reports are cached; generation failures always fall
// back to the deterministic templates, never to an error.
type Insighter interface {
	// DailyInsight returns the narrative for one date. The second
	// return reports whether the payload came from the cache.
	DailyInsight(ctx context.Context, date string) (*domain.DailyInsight, bool, error)

	// WeeklyInsight returns the normalized weekly report for the exact
	// (from, to) pair. refresh forces recomputation and overwrites the
	// cached entry.
	WeeklyInsight(ctx context.Context, from, to string, refresh bool) (*domain.WeeklyInsight, bool, error)

	// SalesPerformanceInsights returns the free-form insight list for a
	// period. Not cached.
	SalesPerformanceInsights(ctx context.Context, from, to string) (*domain.SalesPerformanceInsights, error)
}
