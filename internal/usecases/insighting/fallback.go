package insighting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

// fallbackDailyInsight builds the deterministic daily narrative used
// whenever generation is unavailable or rejected.
func fallbackDailyInsight(metrics *domain.AggregatedMetrics, redFlags []domain.SalesmanRedFlags) *domain.DailyInsight {
	flagCounts := domain.CountRedFlagsBySeverity(redFlags)

	highlights := make([]string, 0, 3)
	if metrics.TotalVisits > 0 {
		highlights = append(highlights, fmt.Sprintf(
			"Total %d kunjungan tercatat oleh %d sales",
			metrics.TotalVisits, metrics.TotalSalesmen,
		))
	}
	if metrics.TotalSalesAmount > 0 {
		highlights = append(highlights, fmt.Sprintf(
			"Total penjualan sebesar %s (%d unit)",
			formatCurrency(metrics.TotalSalesAmount), metrics.TotalSalesQty,
		))
	}
	if metrics.AvgConversionRate > 0.5 {
		highlights = append(highlights, fmt.Sprintf(
			"Rata-rata konversi %s melebihi 50%%",
			formatPercentage(metrics.AvgConversionRate),
		))
	}
	if len(highlights) == 0 {
		highlights = append(highlights, "Tidak ada aktivitas signifikan pada tanggal ini")
	}

	risks := make([]string, 0, 3)
	if flagCounts.High > 0 {
		risks = append(risks, fmt.Sprintf(
			"%d pola dengan tingkat tinggi terdeteksi dan perlu ditinjau segera", flagCounts.High,
		))
	}
	if flagCounts.Medium > 0 {
		risks = append(risks, fmt.Sprintf("%d pola tingkat sedang perlu perhatian", flagCounts.Medium))
	}
	if metrics.AvgConversionRate < lowConversionThreshold && metrics.TotalVisits > 0 {
		risks = append(risks, fmt.Sprintf(
			"Rata-rata konversi rendah: %s", formatPercentage(metrics.AvgConversionRate),
		))
	}
	if len(risks) == 0 {
		risks = append(risks, "Tidak ada risiko signifikan yang teridentifikasi")
	}

	actions := make([]string, 0, 3)
	if len(redFlags) > 0 {
		names := make([]string, 0, 2)
		for _, rf := range redFlags {
			names = append(names, rf.SalesmanName)
			if len(names) == 2 {
				break
			}
		}
		actions = append(actions, fmt.Sprintf("Tinjau pola aktivitas untuk: %s", strings.Join(names, ", ")))
	}
	if metrics.AvgConversionRate < lowConversionThreshold && metrics.TotalVisits > 0 {
		actions = append(actions, "Investigasi outlet dengan konversi rendah dan berikan pelatihan sales")
	}
	zeroSales := 0
	for _, m := range metrics.SalesmenMetrics {
		if m.VisitCount > 0 && m.TotalSalesAmount == 0 {
			zeroSales++
		}
	}
	if zeroSales > 0 {
		actions = append(actions, fmt.Sprintf(
			"Tindak lanjuti %d sales yang memiliki kunjungan tetapi tanpa penjualan", zeroSales,
		))
	}
	if len(actions) == 0 {
		actions = append(actions, "Lanjutkan pemantauan tren performa")
	}

	return &domain.DailyInsight{
		Date:       metrics.Date,
		Highlights: highlights,
		Risks:      risks,
		Actions:    actions,
		Notes:      fmt.Sprintf("Ringkasan otomatis. %d sales memiliki pola yang ditandai.", len(redFlags)),
	}
}

// fallbackWeeklyInsight builds the deterministic weekly report and runs
// it through the same normalizer as generated output.
func fallbackWeeklyInsight(input *domain.WeeklyInsightInput) *domain.WeeklyInsight {
	base := &domain.WeeklyInsight{
		Period: input.Period,
		Summary: domain.InsightSummary{
			Highlights: []string{},
			Risks:      []string{},
			Actions:    []string{},
		},
		Detail: "Secara umum performa minggu ini stabil dengan kontribusi utama dari beberapa sales teratas. Rata-rata konversi dan volume kunjungan bergerak sejalan dengan distribusi aktivitas sales selama periode ini.",
		Notes:  "Laporan ini dihasilkan otomatis dari data mingguan.",
	}

	return normalizeWeeklyInsight(base, input)
}

// fallbackSalesPerformanceInsights derives up to five sentences
// directly from the aggregates.
func fallbackSalesPerformanceInsights(input *domain.SalesPerformanceInput) *domain.SalesPerformanceInsights {
	insights := make([]string, 0, 5)

	if len(input.TopByConversion) > 0 {
		top := input.TopByConversion[0]
		insights = append(insights, fmt.Sprintf(
			"%s memimpin konversi %s dari %d kunjungan.",
			top.Name, formatPercentage(top.ConversionRate), top.Visits,
		))
	}

	lowTimes := make([]domain.DaypartStat, 0, len(input.TimeOfDay))
	for _, t := range input.TimeOfDay {
		if t.VisitCount >= 5 {
			lowTimes = append(lowTimes, t)
		}
	}
	sort.SliceStable(lowTimes, func(i, j int) bool {
		return lowTimes[i].SuccessRate < lowTimes[j].SuccessRate
	})
	if len(lowTimes) > 0 && lowTimes[0].SuccessRate < 0.2 {
		low := lowTimes[0]
		insights = append(insights, fmt.Sprintf(
			"%s rendah di %s (%s), pertimbangkan ganti jadwal.",
			low.SalesmanName, low.Daypart, formatPercentage(low.SuccessRate),
		))
	}

	bins := make([]domain.VisitBin, 0, len(input.VisitPerDayBins))
	for _, b := range input.VisitPerDayBins {
		if b.SalesmenCount > 0 {
			bins = append(bins, b)
		}
	}
	sort.SliceStable(bins, func(i, j int) bool {
		return bins[i].ConversionRate > bins[j].ConversionRate
	})
	if len(bins) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Pola %s kunjungan/hari menunjukkan konversi tertinggi (%s).",
			bins[0].Label, formatPercentage(bins[0].ConversionRate),
		))
	}

	if len(insights) == 0 {
		insights = append(insights, "Data belum cukup untuk insight spesifik minggu ini.")
	}
	if len(insights) > 5 {
		insights = insights[:5]
	}

	return &domain.SalesPerformanceInsights{
		Period:   input.Period,
		Insights: insights,
	}
}
