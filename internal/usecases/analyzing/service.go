package analyzing

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/sales-monitor-api/infrastructure/repository"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

type Service struct {
	resolver     *timewindow.Resolver
	salesmanRepo repository.SalesmanRepository
	checkinRepo  repository.CheckinRepository
	saleRepo     repository.SaleRepository
	leaderRepo   repository.LeaderRepository
	regionRepo   repository.RegionRepository
	outletRepo   repository.OutletRepository
}

func NewService(
	resolver *timewindow.Resolver,
	salesmanRepo repository.SalesmanRepository,
	checkinRepo repository.CheckinRepository,
	saleRepo repository.SaleRepository,
	leaderRepo repository.LeaderRepository,
	regionRepo repository.RegionRepository,
	outletRepo repository.OutletRepository,
) Analyzer {
	return &Service{
		resolver:     resolver,
		salesmanRepo: salesmanRepo,
		checkinRepo:  checkinRepo,
		saleRepo:     saleRepo,
		leaderRepo:   leaderRepo,
		regionRepo:   regionRepo,
		outletRepo:   outletRepo,
	}
}

func (s *Service) DailyMetricsForDate(ctx context.Context, date string) (*domain.AggregatedMetrics, error) {
	window, err := s.resolver.DayWindow(date)
	if err != nil {
		return nil, err
	}

	metrics, err := s.aggregateWindow(ctx, window)
	if err != nil {
		return nil, err
	}
	metrics.Date = date
	for i := range metrics.SalesmenMetrics {
		metrics.SalesmenMetrics[i].Date = date
	}

	return metrics, nil
}

func (s *Service) MetricsForRange(ctx context.Context, from, to string) (*domain.AggregatedMetrics, error) {
	window, err := s.resolver.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}

	metrics, err := s.aggregateWindow(ctx, window)
	if err != nil {
		return nil, err
	}
	metrics.Period = &domain.Period{From: from, To: to}

	return metrics, nil
}

// aggregateWindow merges the per-salesman check-in and sale rollups for
// one window. Every active salesman appears in the result, zero rows
// included. The average conversion rate is visit-weighted: total outlets
// with sales over total visits.
func (s *Service) aggregateWindow(ctx context.Context, window timewindow.Window) (*domain.AggregatedMetrics, error) {
	salesmen, err := s.salesmanRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing salesmen: %w", err)
	}

	result := &domain.AggregatedMetrics{
		SalesmenMetrics: make([]domain.SalesmanMetrics, 0, len(salesmen)),
	}
	if len(salesmen) == 0 {
		return result, nil
	}

	activityAggs, err := s.checkinRepo.AggBySalesman(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating checkins: %w", err)
	}
	salesAggs, err := s.saleRepo.AggBySalesman(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating sales: %w", err)
	}

	activityBySalesman := make(map[string]repository.SalesmanActivityAgg, len(activityAggs))
	for _, agg := range activityAggs {
		activityBySalesman[agg.SalesmanID] = agg
	}
	salesBySalesman := make(map[string]repository.SalesmanSalesAgg, len(salesAggs))
	for _, agg := range salesAggs {
		salesBySalesman[agg.SalesmanID] = agg
	}

	for _, salesman := range salesmen {
		activity := activityBySalesman[salesman.ID]
		sales := salesBySalesman[salesman.ID]

		metrics := domain.SalesmanMetrics{
			SalesmanID:           salesman.ID,
			SalesmanCode:         salesman.Code,
			SalesmanName:         salesman.Name,
			VisitCount:           activity.VisitCount,
			UniqueOutletCount:    activity.UniqueOutletCount,
			TotalSalesAmount:     sales.TotalAmount,
			TotalSalesQty:        sales.TotalQty,
			OutletWithSalesCount: sales.OutletWithSalesCount,
			ConversionRate:       conversionRate(sales.OutletWithSalesCount, activity.VisitCount),
		}

		result.TotalVisits += metrics.VisitCount
		result.TotalSalesAmount += metrics.TotalSalesAmount
		result.TotalSalesQty += metrics.TotalSalesQty
		result.TotalOutletsWithSales += metrics.OutletWithSalesCount
		result.SalesmenMetrics = append(result.SalesmenMetrics, metrics)
	}

	result.TotalSalesmen = len(salesmen)
	result.AvgConversionRate = conversionRate(result.TotalOutletsWithSales, result.TotalVisits)

	return result, nil
}

func (s *Service) MetricsForSalesman(ctx context.Context, salesmanID, from, to string) (*domain.SalesmanPeriodMetrics, error) {
	salesman, err := s.salesmanRepo.GetByID(ctx, salesmanID)
	if err != nil {
		return nil, fmt.Errorf("error loading salesman: %w", err)
	}
	if salesman == nil {
		return &domain.SalesmanPeriodMetrics{
			Salesman:     nil,
			DailyMetrics: []domain.SalesmanMetrics{},
		}, nil
	}

	window, err := s.resolver.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}
	dates, err := timewindow.DatesBetween(from, to)
	if err != nil {
		return nil, err
	}

	offset := s.resolver.OffsetMinutes()
	dailyActivity, err := s.checkinRepo.DailyVisitCounts(ctx, salesmanID, window, offset)
	if err != nil {
		return nil, fmt.Errorf("error aggregating daily checkins: %w", err)
	}
	dailySales, err := s.saleRepo.DailyAggBySalesman(ctx, salesmanID, window, offset)
	if err != nil {
		return nil, fmt.Errorf("error aggregating daily sales: %w", err)
	}

	activityByDate := make(map[string]repository.DailyActivityAgg, len(dailyActivity))
	for _, agg := range dailyActivity {
		activityByDate[agg.Date] = agg
	}
	salesByDate := make(map[string]repository.DailySalesAgg, len(dailySales))
	for _, agg := range dailySales {
		salesByDate[agg.Date] = agg
	}

	result := &domain.SalesmanPeriodMetrics{
		Salesman: &domain.SalesmanRef{
			ID:   salesman.ID,
			Code: salesman.Code,
			Name: salesman.Name,
		},
		DailyMetrics: make([]domain.SalesmanMetrics, 0, len(dates)),
	}

	for _, date := range dates {
		activity := activityByDate[date]
		sales := salesByDate[date]

		metrics := domain.SalesmanMetrics{
			SalesmanID:           salesman.ID,
			SalesmanCode:         salesman.Code,
			SalesmanName:         salesman.Name,
			Date:                 date,
			VisitCount:           activity.VisitCount,
			UniqueOutletCount:    activity.UniqueOutletCount,
			TotalSalesAmount:     sales.TotalAmount,
			TotalSalesQty:        sales.TotalQty,
			OutletWithSalesCount: sales.OutletWithSalesCount,
			ConversionRate:       conversionRate(sales.OutletWithSalesCount, activity.VisitCount),
		}

		result.Totals.TotalVisits += metrics.VisitCount
		result.Totals.TotalSalesAmount += metrics.TotalSalesAmount
		result.Totals.TotalSalesQty += metrics.TotalSalesQty
		result.Totals.TotalOutletsWithSales += metrics.OutletWithSalesCount
		// Dashboard convention: the period's unique-outlet figure is the
		// busiest day's count, not a distinct count over the range.
		if metrics.UniqueOutletCount > result.Totals.TotalUniqueOutlets {
			result.Totals.TotalUniqueOutlets = metrics.UniqueOutletCount
		}
		result.DailyMetrics = append(result.DailyMetrics, metrics)
	}

	result.Totals.AvgConversionRate = conversionRate(result.Totals.TotalOutletsWithSales, result.Totals.TotalVisits)

	return result, nil
}

func (s *Service) SalesmanDayDetail(ctx context.Context, salesmanID, date string) (*domain.SalesmanDayDetail, error) {
	salesman, err := s.salesmanRepo.GetByID(ctx, salesmanID)
	if err != nil {
		return nil, fmt.Errorf("error loading salesman: %w", err)
	}
	if salesman == nil {
		return nil, nil
	}

	window, err := s.resolver.DayWindow(date)
	if err != nil {
		return nil, err
	}

	checkins, err := s.checkinRepo.ListBySalesmanAndWindow(ctx, salesmanID, window)
	if err != nil {
		return nil, fmt.Errorf("error listing checkins: %w", err)
	}
	sales, err := s.saleRepo.ListBySalesmanAndWindow(ctx, salesmanID, window)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	detail := &domain.SalesmanDayDetail{
		Date: date,
		Salesman: &domain.SalesmanRef{
			ID:   salesman.ID,
			Code: salesman.Code,
			Name: salesman.Name,
		},
		Checkins: checkins,
		Sales:    sales,
	}
	detail.Totals.TotalCheckins = len(checkins)
	detail.Totals.TotalSales = len(sales)
	for _, sale := range sales {
		detail.Totals.TotalSalesAmount += sale.Amount
		detail.Totals.TotalSalesQty += sale.Qty
	}

	return detail, nil
}

func (s *Service) LeaderRegionMetrics(ctx context.Context, from, to string) (*domain.LeaderRegionMetrics, error) {
	window, err := s.resolver.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}

	leaders, err := s.leaderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing leaders: %w", err)
	}
	regions, err := s.regionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing regions: %w", err)
	}

	leaderActivity, err := s.checkinRepo.AggByLeader(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating leader checkins: %w", err)
	}
	leaderSales, err := s.saleRepo.AggByLeader(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating leader sales: %w", err)
	}
	regionActivity, err := s.checkinRepo.AggByRegion(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating region checkins: %w", err)
	}
	regionSales, err := s.saleRepo.AggByRegion(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating region sales: %w", err)
	}

	result := &domain.LeaderRegionMetrics{
		Period:  &domain.Period{From: from, To: to},
		Leaders: make([]domain.GroupMetrics, 0, len(leaders)),
		Regions: make([]domain.GroupMetrics, 0, len(regions)),
	}

	activityByGroup := make(map[string]repository.GroupActivityAgg, len(leaderActivity))
	for _, agg := range leaderActivity {
		activityByGroup[agg.ID] = agg
	}
	salesByGroup := make(map[string]repository.GroupSalesAgg, len(leaderSales))
	for _, agg := range leaderSales {
		salesByGroup[agg.ID] = agg
	}
	for _, leader := range leaders {
		result.Leaders = append(result.Leaders, buildGroupMetrics(
			leader.ID, leader.Code, leader.Name, nil,
			activityByGroup[leader.ID], salesByGroup[leader.ID],
		))
	}

	activityByGroup = make(map[string]repository.GroupActivityAgg, len(regionActivity))
	for _, agg := range regionActivity {
		activityByGroup[agg.ID] = agg
	}
	salesByGroup = make(map[string]repository.GroupSalesAgg, len(regionSales))
	for _, agg := range regionSales {
		salesByGroup[agg.ID] = agg
	}
	for _, region := range regions {
		result.Regions = append(result.Regions, buildGroupMetrics(
			region.ID, region.Code, region.Name, region.LeaderID,
			activityByGroup[region.ID], salesByGroup[region.ID],
		))
	}

	sortGroupMetrics(result.Leaders)
	sortGroupMetrics(result.Regions)

	return result, nil
}

func buildGroupMetrics(id, code, name string, leaderID *string, activity repository.GroupActivityAgg, sales repository.GroupSalesAgg) domain.GroupMetrics {
	return domain.GroupMetrics{
		ID:                   id,
		Code:                 code,
		Name:                 name,
		LeaderID:             leaderID,
		VisitCount:           activity.VisitCount,
		UniqueOutletCount:    activity.UniqueOutletCount,
		TotalSalesAmount:     sales.TotalAmount,
		TotalSalesQty:        sales.TotalQty,
		OutletWithSalesCount: sales.OutletWithSalesCount,
		ConversionRate:       conversionRate(sales.OutletWithSalesCount, activity.VisitCount),
	}
}

func sortGroupMetrics(groups []domain.GroupMetrics) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].TotalSalesAmount != groups[j].TotalSalesAmount {
			return groups[i].TotalSalesAmount > groups[j].TotalSalesAmount
		}
		return groups[i].VisitCount > groups[j].VisitCount
	})
}

func (s *Service) OutletMetricsForPeriod(ctx context.Context, from, to string) ([]domain.OutletMetrics, error) {
	window, err := s.resolver.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}

	outlets, err := s.outletRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing outlets: %w", err)
	}
	activityAggs, err := s.checkinRepo.AggByOutlet(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating outlet checkins: %w", err)
	}
	salesAggs, err := s.saleRepo.AggByOutlet(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("error aggregating outlet sales: %w", err)
	}

	activityByOutlet := make(map[string]repository.OutletActivityAgg, len(activityAggs))
	for _, agg := range activityAggs {
		activityByOutlet[agg.ID] = agg
	}
	salesByOutlet := make(map[string]repository.OutletSalesAgg, len(salesAggs))
	for _, agg := range salesAggs {
		salesByOutlet[agg.ID] = agg
	}

	result := make([]domain.OutletMetrics, 0, len(outlets))
	for _, outlet := range outlets {
		activity := activityByOutlet[outlet.ID]
		sales := salesByOutlet[outlet.ID]
		result = append(result, domain.OutletMetrics{
			ID:               outlet.ID,
			Code:             outlet.Code,
			Name:             outlet.Name,
			VisitCount:       activity.VisitCount,
			SalesCount:       sales.SalesCount,
			TotalSalesAmount: sales.TotalAmount,
			TotalSalesQty:    sales.TotalQty,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalSalesAmount != result[j].TotalSalesAmount {
			return result[i].TotalSalesAmount > result[j].TotalSalesAmount
		}
		return result[i].VisitCount > result[j].VisitCount
	})

	return result, nil
}

// DaypartStats lists the 15 busiest salesman/daypart slots in a range.
// A slot counts as successful when the same outlet bought on the same
// business-local day as the visit.
func (s *Service) DaypartStats(ctx context.Context, from, to string) ([]domain.DaypartStat, error) {
	window, err := s.resolver.RangeWindow(from, to)
	if err != nil {
		return nil, err
	}

	aggs, err := s.checkinRepo.DaypartSuccess(ctx, window, s.resolver.OffsetMinutes())
	if err != nil {
		return nil, fmt.Errorf("error aggregating dayparts: %w", err)
	}

	stats := make([]domain.DaypartStat, 0, len(aggs))
	for _, agg := range aggs {
		if agg.VisitCount == 0 {
			continue
		}
		stats = append(stats, domain.DaypartStat{
			SalesmanName: agg.SalesmanName,
			Daypart:      agg.Daypart,
			VisitCount:   agg.VisitCount,
			SuccessRate:  float64(agg.SuccessCount) / float64(agg.VisitCount),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].VisitCount > stats[j].VisitCount
	})
	if len(stats) > 15 {
		stats = stats[:15]
	}

	return stats, nil
}

// Rankings builds the dashboard's top/bottom-3 tables. Conversion
// rankings only consider salesmen with at least one visit.
func (s *Service) Rankings(metrics *domain.AggregatedMetrics) *domain.Rankings {
	withVisits := make([]domain.SalesmanMetrics, 0, len(metrics.SalesmenMetrics))
	for _, m := range metrics.SalesmenMetrics {
		if m.VisitCount > 0 {
			withVisits = append(withVisits, m)
		}
	}

	byConversion := make([]domain.SalesmanMetrics, len(withVisits))
	copy(byConversion, withVisits)
	sort.SliceStable(byConversion, func(i, j int) bool {
		return byConversion[i].ConversionRate > byConversion[j].ConversionRate
	})

	bySales := make([]domain.SalesmanMetrics, len(metrics.SalesmenMetrics))
	copy(bySales, metrics.SalesmenMetrics)
	sort.SliceStable(bySales, func(i, j int) bool {
		return bySales[i].TotalSalesAmount > bySales[j].TotalSalesAmount
	})

	byVisits := make([]domain.SalesmanMetrics, len(withVisits))
	copy(byVisits, withVisits)
	sort.SliceStable(byVisits, func(i, j int) bool {
		return byVisits[i].VisitCount > byVisits[j].VisitCount
	})

	rankings := &domain.Rankings{}
	for _, m := range headMetrics(byConversion, 3) {
		rankings.TopByConversion = append(rankings.TopByConversion, domain.RankingEntry{
			SalesmanID:     m.SalesmanID,
			SalesmanName:   m.SalesmanName,
			ConversionRate: m.ConversionRate,
			VisitCount:     m.VisitCount,
		})
	}
	for _, m := range tailMetrics(byConversion, 3) {
		rankings.BottomByConversion = append(rankings.BottomByConversion, domain.RankingEntry{
			SalesmanID:     m.SalesmanID,
			SalesmanName:   m.SalesmanName,
			ConversionRate: m.ConversionRate,
			VisitCount:     m.VisitCount,
		})
	}
	for _, m := range headMetrics(bySales, 3) {
		rankings.TopBySales = append(rankings.TopBySales, domain.RankingEntry{
			SalesmanID:       m.SalesmanID,
			SalesmanName:     m.SalesmanName,
			TotalSalesAmount: m.TotalSalesAmount,
		})
	}
	for _, m := range tailMetrics(bySales, 3) {
		rankings.BottomBySales = append(rankings.BottomBySales, domain.RankingEntry{
			SalesmanID:       m.SalesmanID,
			SalesmanName:     m.SalesmanName,
			TotalSalesAmount: m.TotalSalesAmount,
		})
	}
	for _, m := range headMetrics(byVisits, 3) {
		rankings.TopByVisits = append(rankings.TopByVisits, domain.RankingEntry{
			SalesmanID:   m.SalesmanID,
			SalesmanName: m.SalesmanName,
			VisitCount:   m.VisitCount,
		})
	}

	return rankings
}

func headMetrics(metrics []domain.SalesmanMetrics, n int) []domain.SalesmanMetrics {
	if len(metrics) < n {
		n = len(metrics)
	}
	return metrics[:n]
}

// tailMetrics returns the last n entries, worst first.
func tailMetrics(metrics []domain.SalesmanMetrics, n int) []domain.SalesmanMetrics {
	if len(metrics) < n {
		n = len(metrics)
	}
	out := make([]domain.SalesmanMetrics, 0, n)
	for i := len(metrics) - 1; i >= len(metrics)-n; i-- {
		out = append(out, metrics[i])
	}
	return out
}

func conversionRate(outletsWithSales, visits int) float64 {
	if visits == 0 {
		return 0
	}
	return float64(outletsWithSales) / float64(visits)
}
