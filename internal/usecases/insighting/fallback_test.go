package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

func TestFallbackDailyInsight(t *testing.T) {
	metrics := &domain.AggregatedMetrics{
		Date:                  "2025-03-10",
		TotalVisits:           20,
		TotalSalesmen:         4,
		TotalSalesAmount:      1500000,
		TotalSalesQty:         6,
		TotalOutletsWithSales: 3,
		AvgConversionRate:     0.15,
		SalesmenMetrics: []domain.SalesmanMetrics{
			{SalesmanID: "S1", SalesmanName: "Budi", VisitCount: 8, TotalSalesAmount: 0},
			{SalesmanID: "S2", SalesmanName: "Citra", VisitCount: 12, TotalSalesAmount: 1500000},
		},
	}
	redFlags := []domain.SalesmanRedFlags{
		{
			SalesmanID:   "S1",
			SalesmanName: "Budi",
			RedFlags: []domain.RedFlag{
				{Code: domain.RedFlagLowEffectiveness, Severity: domain.SeverityHigh},
			},
		},
	}

	insight := fallbackDailyInsight(metrics, redFlags)

	assert.Equal(t, "2025-03-10", insight.Date)

	require.NotEmpty(t, insight.Highlights)
	assert.Contains(t, insight.Highlights[0], "20 kunjungan")
	assert.Contains(t, insight.Highlights[1], "Rp 1.500.000")

	require.NotEmpty(t, insight.Risks)
	assert.Contains(t, insight.Risks[0], "1 pola dengan tingkat tinggi")
	// Conversion under 30% adds its own risk line.
	assert.Contains(t, insight.Risks[1], "15.0%")

	require.NotEmpty(t, insight.Actions)
	assert.Contains(t, insight.Actions[0], "Budi")
	// One salesman visited without selling.
	assert.Contains(t, insight.Actions[2], "1 sales")

	assert.Contains(t, insight.Notes, "1 sales memiliki pola yang ditandai")
}

func TestFallbackDailyInsight_QuietDay(t *testing.T) {
	metrics := &domain.AggregatedMetrics{Date: "2025-03-10"}

	insight := fallbackDailyInsight(metrics, nil)

	require.Len(t, insight.Highlights, 1)
	assert.Equal(t, "Tidak ada aktivitas signifikan pada tanggal ini", insight.Highlights[0])
	require.Len(t, insight.Risks, 1)
	assert.Equal(t, "Tidak ada risiko signifikan yang teridentifikasi", insight.Risks[0])
	require.Len(t, insight.Actions, 1)
	assert.Equal(t, "Lanjutkan pemantauan tren performa", insight.Actions[0])
}

func TestFallbackWeeklyInsight(t *testing.T) {
	input := quietWeekInput()

	insight := fallbackWeeklyInsight(input)

	assert.Equal(t, input.Period, insight.Period)
	// The fallback runs through the same normalizer as generated output.
	require.Len(t, insight.Summary.Highlights, 5)
	require.Len(t, insight.Summary.Risks, 1)
	assert.Equal(t, noRiskSentence, insight.Summary.Risks[0])
	assert.Empty(t, insight.Summary.Actions)
	assert.NotEmpty(t, insight.Detail)
	assert.NotEmpty(t, insight.Notes)
}

func TestFallbackSalesPerformanceInsights(t *testing.T) {
	input := &domain.SalesPerformanceInput{
		Period: domain.Period{From: "2025-03-03", To: "2025-03-09"},
		TopByConversion: []domain.ConversionEntry{
			{Name: "Budi", ConversionRate: 0.6, Visits: 15},
		},
		TimeOfDay: []domain.DaypartStat{
			{SalesmanName: "Citra", Daypart: "Malam", VisitCount: 8, SuccessRate: 0.1},
			{SalesmanName: "Dewi", Daypart: "Pagi", VisitCount: 3, SuccessRate: 0.0},
		},
		VisitPerDayBins: []domain.VisitBin{
			{Label: "0-2", SalesmenCount: 2, ConversionRate: 0.5},
			{Label: "3-5", SalesmenCount: 3, ConversionRate: 0.2},
			{Label: "6-8", SalesmenCount: 0, ConversionRate: 0},
		},
	}

	insights := fallbackSalesPerformanceInsights(input)

	assert.Equal(t, input.Period, insights.Period)
	require.Len(t, insights.Insights, 3)
	assert.Contains(t, insights.Insights[0], "Budi memimpin konversi 60.0%")
	// Dewi has fewer than five visits; Citra is the low-success slot.
	assert.Contains(t, insights.Insights[1], "Citra")
	assert.Contains(t, insights.Insights[1], "Malam")
	// Empty bins are skipped before picking the best-converting pattern.
	assert.Contains(t, insights.Insights[2], "0-2")
}

func TestFallbackSalesPerformanceInsights_NoData(t *testing.T) {
	input := &domain.SalesPerformanceInput{
		Period: domain.Period{From: "2025-03-03", To: "2025-03-09"},
	}

	insights := fallbackSalesPerformanceInsights(input)

	require.Len(t, insights.Insights, 1)
	assert.Equal(t, "Data belum cukup untuk insight spesifik minggu ini.", insights.Insights[0])
}
