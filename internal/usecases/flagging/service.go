package flagging

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-monitor-api/infrastructure/repository"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

// DailyRule inspects a single day's metrics for one salesman.
type DailyRule interface {
	Evaluate(metrics domain.SalesmanMetrics) *domain.RedFlag
}

// HistoryRule inspects the trailing per-day visit counts ending at the
// evaluation date. The slice always holds one count per day, oldest
// first, zero-filled for days without activity.
type HistoryRule interface {
	Lookback() int
	Evaluate(metrics domain.SalesmanMetrics, trailingVisits []int) *domain.RedFlag
}

// Detector runs the registered rules over daily metrics and reports
// only salesmen that triggered at least one flag. Flags are ephemeral,
// recomputed per request.
type Detector interface {
	AllForDate(ctx context.Context, date string, salesmenMetrics []domain.SalesmanMetrics) ([]domain.SalesmanRedFlags, error)
}

type Service struct {
	resolver     *timewindow.Resolver
	checkinRepo  repository.CheckinRepository
	dailyRules   []DailyRule
	historyRules []HistoryRule
}

// NewService wires the shipped rule set. Additional rules register by
// appending to the slices before first use.
func NewService(
	resolver *timewindow.Resolver,
	checkinRepo repository.CheckinRepository,
) Detector {
	return &Service{
		resolver:     resolver,
		checkinRepo:  checkinRepo,
		dailyRules:   []DailyRule{LowEffectivenessRule{}},
		historyRules: []HistoryRule{TooConsistentRule{}},
	}
}

func (s *Service) AllForDate(ctx context.Context, date string, salesmenMetrics []domain.SalesmanMetrics) ([]domain.SalesmanRedFlags, error) {
	results := make([]domain.SalesmanRedFlags, 0)

	for _, metrics := range salesmenMetrics {
		flags := make([]domain.RedFlag, 0)

		for _, rule := range s.dailyRules {
			if flag := rule.Evaluate(metrics); flag != nil {
				flags = append(flags, *flag)
			}
		}

		for _, rule := range s.historyRules {
			trailing, err := s.trailingVisitCounts(ctx, metrics.SalesmanID, date, rule.Lookback())
			if err != nil {
				return nil, err
			}
			if flag := rule.Evaluate(metrics, trailing); flag != nil {
				flags = append(flags, *flag)
			}
		}

		if len(flags) > 0 {
			results = append(results, domain.SalesmanRedFlags{
				SalesmanID:   metrics.SalesmanID,
				SalesmanCode: metrics.SalesmanCode,
				SalesmanName: metrics.SalesmanName,
				RedFlags:     flags,
			})
		}
	}

	return results, nil
}

// trailingVisitCounts returns one count per day for the `days` days
// ending at the evaluation date, oldest first. Days after the
// evaluation date are never inspected.
func (s *Service) trailingVisitCounts(ctx context.Context, salesmanID, date string, days int) ([]int, error) {
	end, err := timewindow.ParseDate(date)
	if err != nil {
		return nil, err
	}
	from := timewindow.FormatDate(end.AddDate(0, 0, -(days - 1)))

	window, err := s.resolver.RangeWindow(from, date)
	if err != nil {
		return nil, err
	}

	dailyAggs, err := s.checkinRepo.DailyVisitCounts(ctx, salesmanID, window, s.resolver.OffsetMinutes())
	if err != nil {
		return nil, fmt.Errorf("error loading trailing visit counts: %w", err)
	}
	countsByDate := make(map[string]int, len(dailyAggs))
	for _, agg := range dailyAggs {
		countsByDate[agg.Date] = agg.VisitCount
	}

	dates, err := timewindow.DatesBetween(from, date)
	if err != nil {
		return nil, err
	}
	counts := make([]int, 0, len(dates))
	for _, d := range dates {
		counts = append(counts, countsByDate[d])
	}

	return counts, nil
}
