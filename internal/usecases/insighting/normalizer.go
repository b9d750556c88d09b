package insighting

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

// noRiskSentence is the canned entry used when the cascade produces no
// valid risk. Its presence forces an empty action list.
const noRiskSentence = "Secara umum performa minggu ini cukup stabil tanpa risiko yang signifikan."

// Risks phrased as opportunities are not risks. Entries containing any
// of these words are dropped.
var forbiddenRiskKeywords = []string{
	"peluang",
	"opportunity",
	"optimasi",
	"optimalisasi",
	"growth",
	"pertumbuhan",
	"eksplorasi",
	"potensi",
}

var actionPattern = regexp.MustCompile(`(?i)risiko\s*[1-3]`)

const lowConversionThreshold = 0.3

// normalizeWeeklyInsight reshapes a generated weekly report into the
// fixed schema: highlights are always rebuilt from the aggregates,
// risks come from the deterministic cascade, and only actions that
// reference a numbered risk survive. The generated detail and notes
// pass through untouched.
func normalizeWeeklyInsight(insight *domain.WeeklyInsight, input *domain.WeeklyInsightInput) *domain.WeeklyInsight {
	normalized := *insight

	risks := buildRisks(input)

	actions := []string{}
	if risks[0] != noRiskSentence {
		for _, action := range insight.Summary.Actions {
			if actionPattern.MatchString(action) {
				actions = append(actions, action)
				if len(actions) == 3 {
					break
				}
			}
		}
	}

	normalized.Summary = domain.InsightSummary{
		Highlights: buildWeeklyHighlights(input),
		Risks:      risks,
		Actions:    actions,
	}

	return &normalized
}

// buildWeeklyHighlights produces the five fixed highlight entries:
// sales totals, average conversion, best leaders, best salesman and
// busiest region, each compared against the previous week.
func buildWeeklyHighlights(input *domain.WeeklyInsightInput) []string {
	salesTrend := trendLabel(input.Totals.TotalSalesAmount, input.PrevTotals.TotalSalesAmount)
	salesHighlight := fmt.Sprintf(
		"Total penjualan %s dengan %d unit terjual, %s dibanding minggu lalu (%s dan %d unit).",
		formatCurrency(input.Totals.TotalSalesAmount),
		input.Totals.TotalSalesQty,
		salesTrend,
		formatCurrency(input.PrevTotals.TotalSalesAmount),
		input.PrevTotals.TotalSalesQty,
	)

	conversionTrend := trendLabel(input.Totals.AvgConversionRate, input.PrevTotals.AvgConversionRate)
	conversionHighlight := fmt.Sprintf(
		"Rata-rata konversi %s, %s dibanding minggu lalu (%s).",
		formatPercentage(input.Totals.AvgConversionRate),
		conversionTrend,
		formatPercentage(input.PrevTotals.AvgConversionRate),
	)

	leaderNames := "Belum ada leader dengan kontribusi penjualan signifikan"
	if len(input.TopLeadersBySales) > 0 {
		names := make([]string, 0, len(input.TopLeadersBySales))
		for _, l := range input.TopLeadersBySales {
			names = append(names, l.Name)
		}
		leaderNames = strings.Join(names, " dan ")
	}
	leaderHighlight := fmt.Sprintf("Performa leader terbaik minggu ini: %s.", leaderNames)

	topSalesHighlight := "Belum ada sales dengan performa penjualan menonjol minggu ini."
	if input.TopSalesmanBySales != nil {
		topSalesHighlight = fmt.Sprintf("Sales dengan performa terbaik: %s.", input.TopSalesmanBySales.Name)
	}

	topRegionHighlight := "Belum ada data kunjungan region yang dominan minggu ini."
	if input.TopRegionByVisits != nil {
		topRegionHighlight = fmt.Sprintf("Daerah paling ramai minggu ini: %s.", input.TopRegionByVisits.Name)
	}

	return []string{
		salesHighlight,
		conversionHighlight,
		leaderHighlight,
		topSalesHighlight,
		topRegionHighlight,
	}
}

func trendLabel(current, prev float64) string {
	switch {
	case current > prev:
		return "naik"
	case current < prev:
		return "turun"
	default:
		return "stabil"
	}
}

// buildRisks runs the fixed cascade over the weekly aggregates. Order
// matters: salesman effectiveness first, then regions, then the
// week-over-week totals.
func buildRisks(input *domain.WeeklyInsightInput) []string {
	result := make([]string, 0)

	if risk := lowPerformerRisk(input.SalesPerformance); risk != "" {
		result = append(result, risk)
	}
	if risk := lowConversionRegionsRisk(input.Regions); risk != "" {
		result = append(result, risk)
	}
	if risk := decliningRegionsRisk(input.Regions, input.PrevRegions); risk != "" {
		result = append(result, risk)
	}

	if input.PrevTotals.TotalVisits > 0 && input.Totals.TotalVisits < input.PrevTotals.TotalVisits {
		drop := float64(input.PrevTotals.TotalVisits-input.Totals.TotalVisits) /
			float64(input.PrevTotals.TotalVisits) * 100
		result = append(result, fmt.Sprintf(
			"Aktivitas kunjungan menurun %.0f%% dari minggu sebelumnya (%d → %d kunjungan), ini bisa berdampak pada pipeline penjualan.",
			drop, input.PrevTotals.TotalVisits, input.Totals.TotalVisits,
		))
	}

	if input.Totals.AvgConversionRate < input.PrevTotals.AvgConversionRate {
		dropPp := (input.PrevTotals.AvgConversionRate - input.Totals.AvgConversionRate) * 100
		if dropPp >= 1 {
			result = append(result, fmt.Sprintf(
				"Rata-rata closing rate turun %.1f poin dari %s menjadi %s.",
				dropPp,
				formatPercentage(input.PrevTotals.AvgConversionRate),
				formatPercentage(input.Totals.AvgConversionRate),
			))
		}
	}

	if input.Totals.TotalSalesAmount < input.PrevTotals.TotalSalesAmount {
		dropValue := input.PrevTotals.TotalSalesAmount - input.Totals.TotalSalesAmount
		dropPct := dropValue / input.PrevTotals.TotalSalesAmount * 100
		result = append(result, fmt.Sprintf(
			"Total penjualan minggu ini lebih rendah %s (%.1f%%) dibanding minggu lalu.",
			formatCurrency(dropValue), dropPct,
		))
	}

	filtered := make([]string, 0, len(result))
	for _, risk := range result {
		if isValidRisk(risk) {
			filtered = append(filtered, risk)
		}
	}
	if len(filtered) == 0 {
		return []string{noRiskSentence}
	}
	return filtered
}

func isValidRisk(risk string) bool {
	lower := strings.ToLower(risk)
	for _, keyword := range forbiddenRiskKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}
	return true
}

// lowPerformerRisk combines salesmen with zero closings and salesmen
// below the conversion threshold into one sentence.
func lowPerformerRisk(salesPerf []domain.SalesmanWeekPerformance) string {
	type ratedPerformance struct {
		domain.SalesmanWeekPerformance
		rate float64
	}

	lowConversion := make([]ratedPerformance, 0)
	for _, s := range salesPerf {
		if s.VisitCountWeek == 0 {
			continue
		}
		rate := float64(s.OutletWithSalesCount) / float64(s.VisitCountWeek)
		if rate < lowConversionThreshold {
			lowConversion = append(lowConversion, ratedPerformance{s, rate})
		}
	}
	sort.SliceStable(lowConversion, func(i, j int) bool {
		return lowConversion[i].rate < lowConversion[j].rate
	})
	if len(lowConversion) > 3 {
		lowConversion = lowConversion[:3]
	}

	zeroSales := make([]domain.SalesmanWeekPerformance, 0, 2)
	for _, s := range salesPerf {
		if s.VisitCountWeek > 0 && s.TotalSalesAmount == 0 {
			zeroSales = append(zeroSales, s)
			if len(zeroSales) == 2 {
				break
			}
		}
	}

	if len(lowConversion) == 0 && len(zeroSales) == 0 {
		return ""
	}

	parts := make([]string, 0, 2)
	if len(zeroSales) == 1 {
		parts = append(parts, fmt.Sprintf(
			"%s perlu perhatian khusus karena dari %d kunjungan belum ada yang berhasil closing",
			zeroSales[0].Name, zeroSales[0].VisitCountWeek,
		))
	} else if len(zeroSales) == 2 {
		parts = append(parts, fmt.Sprintf(
			"%s dan %s belum menghasilkan deal sama sekali meski sudah melakukan banyak kunjungan",
			zeroSales[0].Name, zeroSales[1].Name,
		))
	}

	zeroNames := make(map[string]bool, len(zeroSales))
	for _, s := range zeroSales {
		zeroNames[s.Name] = true
	}
	convTexts := make([]string, 0, len(lowConversion))
	for _, s := range lowConversion {
		if zeroNames[s.Name] {
			continue
		}
		convTexts = append(convTexts, fmt.Sprintf(
			"%s hanya %d deal dari %d kunjungan",
			s.Name, s.OutletWithSalesCount, s.VisitCountWeek,
		))
	}
	if len(convTexts) > 0 {
		parts = append(parts, strings.Join(convTexts, ", "))
	}

	return strings.Join(parts, ". ") + "."
}

func lowConversionRegionsRisk(regions []domain.RegionStanding) string {
	low := make([]domain.RegionStanding, 0)
	for _, r := range regions {
		if r.VisitCount > 0 && r.ConversionRate < lowConversionThreshold {
			low = append(low, r)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].ConversionRate < low[j].ConversionRate
	})

	switch {
	case len(low) == 0:
		return ""
	case len(low) == 1:
		r := low[0]
		return fmt.Sprintf(
			"Wilayah %s masih jadi tantangan dengan tingkat closing hanya %s (%d deal dari %d kunjungan).",
			r.Name, formatPercentage(r.ConversionRate), r.OutletWithSalesCount, r.VisitCount,
		)
	default:
		texts := make([]string, 0, 2)
		for _, r := range low[:2] {
			texts = append(texts, fmt.Sprintf("%s (%s)", r.Name, formatPercentage(r.ConversionRate)))
		}
		return fmt.Sprintf(
			"%s masih perlu perbaikan strategi karena tingkat closing-nya di bawah 30%%.",
			strings.Join(texts, " dan "),
		)
	}
}

func decliningRegionsRisk(regions, prevRegions []domain.RegionStanding) string {
	prevByID := make(map[string]domain.RegionStanding, len(prevRegions))
	for _, r := range prevRegions {
		prevByID[r.ID] = r
	}

	type decline struct {
		name      string
		prevSales float64
		curSales  float64
		dropPct   float64
	}

	declining := make([]decline, 0)
	for _, r := range regions {
		prev, ok := prevByID[r.ID]
		if !ok || prev.TotalSalesAmount <= 0 {
			continue
		}
		dropPct := (prev.TotalSalesAmount - r.TotalSalesAmount) / prev.TotalSalesAmount * 100
		if dropPct >= 20 {
			declining = append(declining, decline{
				name:      r.Name,
				prevSales: prev.TotalSalesAmount,
				curSales:  r.TotalSalesAmount,
				dropPct:   dropPct,
			})
		}
	}
	sort.SliceStable(declining, func(i, j int) bool {
		return declining[i].dropPct > declining[j].dropPct
	})

	switch {
	case len(declining) == 0:
		return ""
	case len(declining) == 1:
		d := declining[0]
		return fmt.Sprintf(
			"Penjualan di %s turun %.0f%% dibanding minggu lalu, dari %s menjadi %s.",
			d.name, d.dropPct, formatCurrency(d.prevSales), formatCurrency(d.curSales),
		)
	default:
		texts := make([]string, 0, 2)
		for _, d := range declining[:2] {
			texts = append(texts, fmt.Sprintf("%s turun %.0f%%", d.name, d.dropPct))
		}
		return fmt.Sprintf(
			"Beberapa wilayah mengalami penurunan penjualan yang cukup signifikan: %s.",
			strings.Join(texts, " dan "),
		)
	}
}
