package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

func quietWeekInput() *domain.WeeklyInsightInput {
	return &domain.WeeklyInsightInput{
		Period: domain.Period{From: "2025-03-03", To: "2025-03-09"},
		Totals: domain.WeeklyTotals{
			TotalVisits:       50,
			TotalSalesAmount:  1000000,
			TotalSalesQty:     8,
			AvgConversionRate: 0.4,
		},
		PrevTotals: domain.PrevWeeklyTotals{
			WeeklyTotals: domain.WeeklyTotals{
				TotalVisits:       45,
				TotalSalesAmount:  900000,
				TotalSalesQty:     7,
				AvgConversionRate: 0.38,
			},
			Period: domain.Period{From: "2025-02-24", To: "2025-03-02"},
		},
	}
}

func TestBuildWeeklyHighlights(t *testing.T) {
	input := quietWeekInput()
	input.TopLeadersBySales = []domain.NamedAmount{
		{Name: "Pak Agus", Amount: 600000},
		{Name: "Bu Rina", Amount: 400000},
	}
	input.TopSalesmanBySales = &domain.NamedAmount{Name: "Budi", Amount: 350000}
	input.TopRegionByVisits = &domain.RegionVisits{Name: "Jakarta Barat", VisitCount: 30}

	highlights := buildWeeklyHighlights(input)

	// Always exactly five, fixed order: sales, conversion, leaders,
	// salesman, region.
	require.Len(t, highlights, 5)
	assert.Contains(t, highlights[0], "Rp 1.000.000")
	assert.Contains(t, highlights[0], "8 unit")
	assert.Contains(t, highlights[0], "naik")
	assert.Contains(t, highlights[1], "40.0%")
	assert.Contains(t, highlights[1], "naik")
	assert.Contains(t, highlights[2], "Pak Agus dan Bu Rina")
	assert.Contains(t, highlights[3], "Budi")
	assert.Contains(t, highlights[4], "Jakarta Barat")
}

func TestBuildWeeklyHighlights_EmptyWeek(t *testing.T) {
	highlights := buildWeeklyHighlights(quietWeekInput())

	require.Len(t, highlights, 5)
	assert.Contains(t, highlights[2], "Belum ada leader")
	assert.Contains(t, highlights[3], "Belum ada sales")
	assert.Contains(t, highlights[4], "Belum ada data kunjungan")
}

func TestBuildRisks_NoRiskFallsBackToCannedSentence(t *testing.T) {
	risks := buildRisks(quietWeekInput())

	require.Len(t, risks, 1)
	assert.Equal(t, noRiskSentence, risks[0])
}

func TestBuildRisks_VisitDecline(t *testing.T) {
	input := quietWeekInput()
	input.Totals.TotalVisits = 30
	input.PrevTotals.TotalVisits = 60

	risks := buildRisks(input)

	require.NotEmpty(t, risks)
	assert.Contains(t, risks[0], "menurun 50%")
}

func TestBuildRisks_SmallConversionDropIgnored(t *testing.T) {
	input := quietWeekInput()
	// 0.5 point drop stays under the 1 point threshold.
	input.Totals.AvgConversionRate = 0.375
	input.PrevTotals.AvgConversionRate = 0.38

	risks := buildRisks(input)

	require.Len(t, risks, 1)
	assert.Equal(t, noRiskSentence, risks[0])
}

func TestBuildRisks_LowPerformers(t *testing.T) {
	input := quietWeekInput()
	input.SalesPerformance = []domain.SalesmanWeekPerformance{
		{SalesmanID: "S1", Name: "Budi", VisitCountWeek: 10, TotalSalesAmount: 0, OutletWithSalesCount: 0},
		{SalesmanID: "S2", Name: "Citra", VisitCountWeek: 10, TotalSalesAmount: 500000, OutletWithSalesCount: 2},
	}

	risks := buildRisks(input)

	require.NotEmpty(t, risks)
	assert.Contains(t, risks[0], "Budi")
	assert.Contains(t, risks[0], "belum ada yang berhasil closing")
	// Citra converts at 20%, below the 30% bar.
	assert.Contains(t, risks[0], "Citra hanya 2 deal dari 10 kunjungan")
}

func TestBuildRisks_DecliningRegions(t *testing.T) {
	input := quietWeekInput()
	input.Regions = []domain.RegionStanding{
		{ID: "R1", Name: "Jakarta Barat", VisitCount: 20, TotalSalesAmount: 700000, OutletWithSalesCount: 10, ConversionRate: 0.5},
	}
	input.PrevRegions = []domain.RegionStanding{
		{ID: "R1", Name: "Jakarta Barat", VisitCount: 22, TotalSalesAmount: 1000000, OutletWithSalesCount: 12, ConversionRate: 0.55},
	}

	risks := buildRisks(input)

	require.NotEmpty(t, risks)
	assert.Contains(t, risks[0], "Jakarta Barat turun 30%")
}

func TestNormalizeWeeklyInsight_FiltersActions(t *testing.T) {
	input := quietWeekInput()
	// Force at least one real risk so actions survive.
	input.Totals.TotalVisits = 30
	input.PrevTotals.TotalVisits = 60

	generated := &domain.WeeklyInsight{
		Period: input.Period,
		Summary: domain.InsightSummary{
			Highlights: []string{"model highlight, ignored"},
			Risks:      []string{"model risk, ignored"},
			Actions: []string{
				"Mitigasi Risiko 1: jadwalkan coaching untuk sales dengan konversi rendah.",
				"Perluas jangkauan kunjungan ke outlet baru.",
				"Mitigasi risiko 2: review rute kunjungan region dengan penurunan.",
				"Mitigasi Risiko 3: pantau pipeline mingguan.",
				"Mitigasi Risiko 1: tindakan keempat yang tidak boleh masuk.",
			},
		},
		Detail: "Ringkasan minggu ini.",
		Notes:  "Catatan model.",
	}

	normalized := normalizeWeeklyInsight(generated, input)

	// Only actions naming a numbered risk survive, capped at three,
	// case-insensitively.
	require.Len(t, normalized.Summary.Actions, 3)
	assert.Contains(t, normalized.Summary.Actions[0], "Risiko 1")
	assert.Contains(t, normalized.Summary.Actions[1], "risiko 2")
	assert.Contains(t, normalized.Summary.Actions[2], "Risiko 3")

	// Highlights are rebuilt, not passed through.
	require.Len(t, normalized.Summary.Highlights, 5)
	assert.NotContains(t, normalized.Summary.Highlights, "model highlight, ignored")

	// Detail and notes pass through untouched.
	assert.Equal(t, "Ringkasan minggu ini.", normalized.Detail)
	assert.Equal(t, "Catatan model.", normalized.Notes)
}

func TestNormalizeWeeklyInsight_NoRiskEmptiesActions(t *testing.T) {
	input := quietWeekInput()

	generated := &domain.WeeklyInsight{
		Period: input.Period,
		Summary: domain.InsightSummary{
			Highlights: []string{},
			Risks:      []string{},
			Actions:    []string{"Mitigasi Risiko 1: tindakan yang tidak punya risiko."},
		},
	}

	normalized := normalizeWeeklyInsight(generated, input)

	require.Len(t, normalized.Summary.Risks, 1)
	assert.Equal(t, noRiskSentence, normalized.Summary.Risks[0])
	assert.Empty(t, normalized.Summary.Actions)
}

func TestIsValidRisk_ForbiddenVocabulary(t *testing.T) {
	tests := []struct {
		risk     string
		expected bool
	}{
		{"Penjualan menurun tajam di wilayah timur.", true},
		{"Ada peluang besar untuk ekspansi.", false},
		{"Potensi pertumbuhan di segmen retail.", false},
		{"Butuh OPTIMASI rute kunjungan.", false},
		{"Growth opportunity di region baru.", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isValidRisk(tt.risk), tt.risk)
	}
}
