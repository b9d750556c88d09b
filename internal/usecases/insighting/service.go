package insighting

import (
	"context"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-monitor-api/infrastructure/integrator/deepseek"
	"github.com/vfg2006/sales-monitor-api/infrastructure/repository"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/flagging"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type Service struct {
	resolver  *timewindow.Resolver
	analyzer  analyzing.Analyzer
	detector  flagging.Detector
	generator deepseek.Generator
	cacheRepo repository.InsightCacheRepository
}

func NewService(
	resolver *timewindow.Resolver,
	analyzer analyzing.Analyzer,
	detector flagging.Detector,
	generator deepseek.Generator,
	cacheRepo repository.InsightCacheRepository,
) Insighter {
	return &Service{
		resolver:  resolver,
		analyzer:  analyzer,
		detector:  detector,
		generator: generator,
		cacheRepo: cacheRepo,
	}
}

func (s *Service) DailyInsight(ctx context.Context, date string) (*domain.DailyInsight, bool, error) {
	cached, err := s.cacheRepo.GetDaily(ctx, date)
	if err != nil {
		logrus.WithError(err).Warn("daily insight cache lookup failed, recomputing")
	}
	if cached != nil {
		insight := &domain.DailyInsight{}
		if err := jsonAPI.Unmarshal(cached, insight); err == nil {
			return insight, true, nil
		}
		logrus.WithField("date", date).Warn("discarding unreadable cached daily insight")
	}

	metrics, err := s.analyzer.DailyMetricsForDate(ctx, date)
	if err != nil {
		return nil, false, err
	}
	redFlags, err := s.detector.AllForDate(ctx, date, metrics.SalesmenMetrics)
	if err != nil {
		return nil, false, err
	}

	var insight *domain.DailyInsight
	if s.generator.Enabled() {
		insight, err = s.generator.DailyInsight(ctx, metrics, redFlags)
		if err != nil {
			logrus.WithError(err).WithField("date", date).Info("daily insight generation failed, using fallback")
			insight = nil
		}
	}
	if insight == nil {
		insight = fallbackDailyInsight(metrics, redFlags)
	}

	s.saveDaily(ctx, date, insight)

	return insight, false, nil
}

func (s *Service) saveDaily(ctx context.Context, date string, insight *domain.DailyInsight) {
	payload, err := jsonAPI.Marshal(insight)
	if err != nil {
		logrus.WithError(err).Error("error encoding daily insight for cache")
		return
	}
	if err := s.cacheRepo.SaveDaily(ctx, date, payload); err != nil {
		logrus.WithError(err).WithField("date", date).Error("error caching daily insight")
	}
}

func (s *Service) WeeklyInsight(ctx context.Context, from, to string, refresh bool) (*domain.WeeklyInsight, bool, error) {
	if !refresh {
		cached, err := s.cacheRepo.GetWeekly(ctx, from, to)
		if err != nil {
			logrus.WithError(err).Warn("weekly insight cache lookup failed, recomputing")
		}
		if cached != nil {
			insight := &domain.WeeklyInsight{}
			if err := jsonAPI.Unmarshal(cached, insight); err == nil {
				return insight, true, nil
			}
			logrus.WithFields(logrus.Fields{"from": from, "to": to}).
				Warn("discarding unreadable cached weekly insight")
		}
	}

	input, err := s.buildWeeklyInput(ctx, from, to)
	if err != nil {
		return nil, false, err
	}

	var insight *domain.WeeklyInsight
	if s.generator.Enabled() {
		generated, err := s.generator.WeeklyInsight(ctx, input)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).
				Info("weekly insight generation failed, using fallback")
		} else {
			insight = normalizeWeeklyInsight(generated, input)
			insight.Period = input.Period
		}
	}
	if insight == nil {
		insight = fallbackWeeklyInsight(input)
	}

	payload, err := jsonAPI.Marshal(insight)
	if err != nil {
		logrus.WithError(err).Error("error encoding weekly insight for cache")
	} else if err := s.cacheRepo.SaveWeekly(ctx, from, to, payload); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).
			Error("error caching weekly insight")
	}

	return insight, false, nil
}

// buildWeeklyInput assembles every aggregate the weekly prompt,
// normalizer and fallback share. The previous period is the same number
// of days immediately before the requested one.
func (s *Service) buildWeeklyInput(ctx context.Context, from, to string) (*domain.WeeklyInsightInput, error) {
	dates, err := timewindow.DatesBetween(from, to)
	if err != nil {
		return nil, err
	}

	fromTime, err := timewindow.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toTime, err := timewindow.ParseDate(to)
	if err != nil {
		return nil, err
	}
	prevFrom := timewindow.FormatDate(fromTime.AddDate(0, 0, -len(dates)))
	prevTo := timewindow.FormatDate(toTime.AddDate(0, 0, -len(dates)))

	rangeMetrics, err := s.analyzer.MetricsForRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	prevMetrics, err := s.analyzer.MetricsForRange(ctx, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}
	groupMetrics, err := s.analyzer.LeaderRegionMetrics(ctx, from, to)
	if err != nil {
		return nil, err
	}
	prevGroupMetrics, err := s.analyzer.LeaderRegionMetrics(ctx, prevFrom, prevTo)
	if err != nil {
		return nil, err
	}

	input := &domain.WeeklyInsightInput{
		Period: domain.Period{From: from, To: to},
		Totals: domain.WeeklyTotals{
			TotalVisits:       rangeMetrics.TotalVisits,
			TotalSalesAmount:  rangeMetrics.TotalSalesAmount,
			TotalSalesQty:     rangeMetrics.TotalSalesQty,
			AvgConversionRate: rangeMetrics.AvgConversionRate,
			TotalSalesmen:     rangeMetrics.TotalSalesmen,
		},
		PrevTotals: domain.PrevWeeklyTotals{
			WeeklyTotals: domain.WeeklyTotals{
				TotalVisits:       prevMetrics.TotalVisits,
				TotalSalesAmount:  prevMetrics.TotalSalesAmount,
				TotalSalesQty:     prevMetrics.TotalSalesQty,
				AvgConversionRate: prevMetrics.AvgConversionRate,
				TotalSalesmen:     prevMetrics.TotalSalesmen,
			},
			Period: domain.Period{From: prevFrom, To: prevTo},
		},
		Regions:     regionStandings(groupMetrics.Regions),
		PrevRegions: regionStandings(prevGroupMetrics.Regions),
	}

	bySales := make([]domain.SalesmanMetrics, len(rangeMetrics.SalesmenMetrics))
	copy(bySales, rangeMetrics.SalesmenMetrics)
	sort.SliceStable(bySales, func(i, j int) bool {
		return bySales[i].TotalSalesAmount > bySales[j].TotalSalesAmount
	})
	for i, m := range bySales {
		if i == 3 {
			break
		}
		input.TopBySales = append(input.TopBySales, domain.NamedAmount{Name: m.SalesmanName, Amount: m.TotalSalesAmount})
	}
	if len(bySales) > 0 && bySales[0].TotalSalesAmount > 0 {
		top := bySales[0]
		input.TopSalesmanBySales = &domain.NamedAmount{Name: top.SalesmanName, Amount: top.TotalSalesAmount}
	}

	byConversion := make([]domain.SalesmanMetrics, 0, len(rangeMetrics.SalesmenMetrics))
	for _, m := range rangeMetrics.SalesmenMetrics {
		if m.VisitCount > 0 {
			byConversion = append(byConversion, m)
		}
	}
	sort.SliceStable(byConversion, func(i, j int) bool {
		return byConversion[i].ConversionRate > byConversion[j].ConversionRate
	})
	for i, m := range byConversion {
		if i == 3 {
			break
		}
		input.TopByConversion = append(input.TopByConversion, domain.NamedRate{Name: m.SalesmanName, Rate: m.ConversionRate})
	}

	for i, leader := range groupMetrics.Leaders {
		if i == 2 || leader.TotalSalesAmount <= 0 {
			break
		}
		input.TopLeadersBySales = append(input.TopLeadersBySales, domain.NamedAmount{Name: leader.Name, Amount: leader.TotalSalesAmount})
	}

	for _, region := range input.Regions {
		if region.VisitCount == 0 {
			continue
		}
		if input.TopRegionByVisits == nil || region.VisitCount > input.TopRegionByVisits.VisitCount {
			input.TopRegionByVisits = &domain.RegionVisits{Name: region.Name, VisitCount: region.VisitCount}
		}
		if region.ConversionRate < lowConversionThreshold {
			if input.LowConversionRegion == nil || region.ConversionRate < input.LowConversionRegion.ConversionRate {
				r := region
				input.LowConversionRegion = &r
			}
		}
	}

	for _, m := range rangeMetrics.SalesmenMetrics {
		input.SalesPerformance = append(input.SalesPerformance, domain.SalesmanWeekPerformance{
			SalesmanID:           m.SalesmanID,
			Name:                 m.SalesmanName,
			VisitCountWeek:       m.VisitCount,
			TotalSalesAmount:     m.TotalSalesAmount,
			OutletWithSalesCount: m.OutletWithSalesCount,
		})
	}

	flaggedDays := make(map[string]int)
	for _, date := range dates {
		dayMetrics, err := s.analyzer.DailyMetricsForDate(ctx, date)
		if err != nil {
			return nil, err
		}
		dayFlags, err := s.detector.AllForDate(ctx, date, dayMetrics.SalesmenMetrics)
		if err != nil {
			return nil, err
		}
		counts := domain.CountRedFlagsBySeverity(dayFlags)
		input.RedFlagCounts.High += counts.High
		input.RedFlagCounts.Medium += counts.Medium
		input.RedFlagCounts.Low += counts.Low
		for _, sf := range dayFlags {
			flaggedDays[sf.SalesmanID]++
		}
	}

	for _, perf := range input.SalesPerformance {
		count, ok := flaggedDays[perf.SalesmanID]
		if !ok {
			continue
		}
		rate := 0.0
		if perf.VisitCountWeek > 0 {
			rate = float64(perf.OutletWithSalesCount) / float64(perf.VisitCountWeek)
		}
		input.PoorPerformers = append(input.PoorPerformers, domain.PoorPerformer{
			Name:                 perf.Name,
			Count:                count,
			VisitCountWeek:       perf.VisitCountWeek,
			TotalSalesAmount:     perf.TotalSalesAmount,
			ConversionRate:       rate,
			OutletWithSalesCount: perf.OutletWithSalesCount,
		})
	}

	return input, nil
}

func regionStandings(regions []domain.GroupMetrics) []domain.RegionStanding {
	standings := make([]domain.RegionStanding, 0, len(regions))
	for _, r := range regions {
		standings = append(standings, domain.RegionStanding{
			ID:                   r.ID,
			Name:                 r.Name,
			VisitCount:           r.VisitCount,
			TotalSalesAmount:     r.TotalSalesAmount,
			OutletWithSalesCount: r.OutletWithSalesCount,
			ConversionRate:       r.ConversionRate,
		})
	}
	return standings
}

func (s *Service) SalesPerformanceInsights(ctx context.Context, from, to string) (*domain.SalesPerformanceInsights, error) {
	dates, err := timewindow.DatesBetween(from, to)
	if err != nil {
		return nil, err
	}

	metrics, err := s.analyzer.MetricsForRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := s.analyzer.DaypartStats(ctx, from, to)
	if err != nil {
		return nil, err
	}

	input := &domain.SalesPerformanceInput{
		Period: domain.Period{From: from, To: to},
		Totals: domain.PerformanceTotals{
			TotalVisits:      metrics.TotalVisits,
			TotalSalesAmount: metrics.TotalSalesAmount,
			TotalSalesQty:    metrics.TotalSalesQty,
		},
		TimeOfDay:       timeOfDay,
		VisitPerDayBins: visitPerDayBins(metrics.SalesmenMetrics, len(dates)),
	}

	byConversion := make([]domain.SalesmanMetrics, 0, len(metrics.SalesmenMetrics))
	for _, m := range metrics.SalesmenMetrics {
		if m.VisitCount > 0 {
			byConversion = append(byConversion, m)
		}
	}
	sort.SliceStable(byConversion, func(i, j int) bool {
		return byConversion[i].ConversionRate > byConversion[j].ConversionRate
	})
	for i, m := range byConversion {
		if i == 5 {
			break
		}
		input.TopByConversion = append(input.TopByConversion, domain.ConversionEntry{
			Name:           m.SalesmanName,
			ConversionRate: m.ConversionRate,
			Visits:         m.VisitCount,
		})
	}

	bySales := make([]domain.SalesmanMetrics, len(metrics.SalesmenMetrics))
	copy(bySales, metrics.SalesmenMetrics)
	sort.SliceStable(bySales, func(i, j int) bool {
		return bySales[i].TotalSalesAmount > bySales[j].TotalSalesAmount
	})
	for i, m := range bySales {
		if i == 5 {
			break
		}
		input.TopBySales = append(input.TopBySales, domain.SalesEntry{
			Name:             m.SalesmanName,
			TotalSalesAmount: m.TotalSalesAmount,
		})
	}

	if s.generator.Enabled() {
		insights, err := s.generator.SalesPerformanceInsights(ctx, input)
		if err == nil {
			return insights, nil
		}
		logrus.WithError(err).WithFields(logrus.Fields{"from": from, "to": to}).
			Info("sales performance generation failed, using fallback")
	}

	return fallbackSalesPerformanceInsights(input), nil
}

var visitBinBounds = []struct {
	label string
	min   float64
	max   float64
}{
	{"0-2", 0, 2},
	{"3-5", 3, 5},
	{"6-8", 6, 8},
	{"9+", 9, -1},
}

// visitPerDayBins buckets salesmen by average visits per day and
// reports each bucket's visit-weighted conversion.
func visitPerDayBins(salesmenMetrics []domain.SalesmanMetrics, daysCount int) []domain.VisitBin {
	type binAgg struct {
		salesmen            int
		totalVisits         int
		totalWithSalesCount int
	}
	aggs := make([]binAgg, len(visitBinBounds))

	for _, m := range salesmenMetrics {
		avgVisits := 0.0
		if daysCount > 0 {
			avgVisits = float64(m.VisitCount) / float64(daysCount)
		}
		for i, b := range visitBinBounds {
			inBin := false
			if b.max < 0 {
				inBin = avgVisits >= b.min
			} else {
				inBin = avgVisits >= b.min && avgVisits <= b.max
			}
			if inBin {
				aggs[i].salesmen++
				aggs[i].totalVisits += m.VisitCount
				aggs[i].totalWithSalesCount += m.OutletWithSalesCount
				break
			}
		}
	}

	bins := make([]domain.VisitBin, 0, len(visitBinBounds))
	for i, b := range visitBinBounds {
		rate := 0.0
		if aggs[i].totalVisits > 0 {
			rate = float64(aggs[i].totalWithSalesCount) / float64(aggs[i].totalVisits)
		}
		bins = append(bins, domain.VisitBin{
			Label:          b.label,
			SalesmenCount:  aggs[i].salesmen,
			ConversionRate: rate,
		})
	}

	return bins
}
