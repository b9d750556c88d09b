package domain

// DailyInsight is the narrative payload for one date. Daily payloads are
// accepted as generated (or from the fallback template); only field
// presence is validated.
type DailyInsight struct {
	Date       string   `json:"date"`
	Highlights []string `json:"highlights"`
	Risks      []string `json:"risks"`
	Actions    []string `json:"actions"`
	Notes      string   `json:"notes"`
}

// InsightSummary is the highlights/risks/actions block of a weekly report.
type InsightSummary struct {
	Highlights []string `json:"highlights"`
	Risks      []string `json:"risks"`
	Actions    []string `json:"actions"`
}

// WeeklyInsight is the normalized weekly report. Summary.Highlights is
// always exactly five entries in fixed order after normalization.
type WeeklyInsight struct {
	Period  Period         `json:"period"`
	Summary InsightSummary `json:"summary"`
	Detail  string         `json:"detail"`
	Notes   string         `json:"notes"`
}

// SalesPerformanceInsights is the free-form insight list for the
// sales-performance view.
type SalesPerformanceInsights struct {
	Period   Period   `json:"period"`
	Insights []string `json:"insights"`
}

// WeeklyTotals are the period totals fed into weekly narrative generation.
type WeeklyTotals struct {
	TotalVisits       int     `json:"total_visits"`
	TotalSalesAmount  float64 `json:"total_sales_amount"`
	TotalSalesQty     int     `json:"total_sales_qty"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
	TotalSalesmen     int     `json:"total_salesmen"`
}

// PrevWeeklyTotals carries the previous period alongside its totals so
// week-over-week deltas can be labeled.
type PrevWeeklyTotals struct {
	WeeklyTotals
	Period Period `json:"period"`
}

// NamedAmount ranks an entity by sales amount.
type NamedAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// NamedRate ranks an entity by conversion rate.
type NamedRate struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// RegionVisits names the region with the most visits in a period.
type RegionVisits struct {
	Name       string `json:"name"`
	VisitCount int    `json:"visit_count"`
}

// RegionStanding is a region's aggregate standing inside a weekly input.
type RegionStanding struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	VisitCount           int     `json:"visit_count"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	OutletWithSalesCount int     `json:"outlet_with_sales_count"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// SalesmanWeekPerformance is a salesman's aggregate week inside a weekly
// input; the normalizer derives the risk list from these rows.
type SalesmanWeekPerformance struct {
	SalesmanID           string  `json:"salesman_id"`
	Name                 string  `json:"name"`
	VisitCountWeek       int     `json:"visit_count_week"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	OutletWithSalesCount int     `json:"outlet_with_sales_count"`
}

// PoorPerformer is a salesman with flagged days during the week; Count is
// the number of flagged days.
type PoorPerformer struct {
	Name                 string  `json:"name"`
	Count                int     `json:"count"`
	VisitCountWeek       int     `json:"visit_count_week"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	ConversionRate       float64 `json:"conversion_rate"`
	OutletWithSalesCount int     `json:"outlet_with_sales_count"`
}

// WeeklyInsightInput is the single shared input shape for weekly
// narrative generation, normalization and the deterministic fallback.
type WeeklyInsightInput struct {
	Period              Period                    `json:"period"`
	Totals              WeeklyTotals              `json:"totals"`
	PrevTotals          PrevWeeklyTotals          `json:"prev_totals"`
	TopBySales          []NamedAmount             `json:"top_by_sales"`
	TopByConversion     []NamedRate               `json:"top_by_conversion"`
	TopLeadersBySales   []NamedAmount             `json:"top_leaders_by_sales"`
	TopSalesmanBySales  *NamedAmount              `json:"top_salesman_by_sales"`
	TopRegionByVisits   *RegionVisits             `json:"top_region_by_visits"`
	LowConversionRegion *RegionStanding           `json:"low_conversion_region"`
	PoorPerformers      []PoorPerformer           `json:"poor_performers"`
	SalesPerformance    []SalesmanWeekPerformance `json:"sales_performance"`
	Regions             []RegionStanding          `json:"regions"`
	PrevRegions         []RegionStanding          `json:"prev_regions"`
	RedFlagCounts       SeverityCount             `json:"red_flag_counts"`
}

// ConversionEntry ranks a salesman by conversion for the
// sales-performance input.
type ConversionEntry struct {
	Name           string  `json:"name"`
	ConversionRate float64 `json:"conversion_rate"`
	Visits         int     `json:"visits"`
}

// SalesEntry ranks a salesman by sales amount.
type SalesEntry struct {
	Name             string  `json:"name"`
	TotalSalesAmount float64 `json:"total_sales_amount"`
}

// DaypartStat is a salesman's visit volume and success rate for one
// business-local daypart.
type DaypartStat struct {
	SalesmanName string  `json:"salesman_name"`
	Daypart      string  `json:"daypart"`
	VisitCount   int     `json:"visit_count"`
	SuccessRate  float64 `json:"success_rate"`
}

// VisitBin buckets salesmen by average visits per day.
type VisitBin struct {
	Label          string  `json:"label"`
	SalesmenCount  int     `json:"salesmen_count"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PerformanceTotals are the reduced totals for the sales-performance view.
type PerformanceTotals struct {
	TotalVisits      int     `json:"total_visits"`
	TotalSalesAmount float64 `json:"total_sales_amount"`
	TotalSalesQty    int     `json:"total_sales_qty"`
}

// SalesPerformanceInput feeds sales-performance narrative generation.
type SalesPerformanceInput struct {
	Period          Period            `json:"period"`
	Totals          PerformanceTotals `json:"totals"`
	TopByConversion []ConversionEntry `json:"top_by_conversion"`
	TopBySales      []SalesEntry      `json:"top_by_sales"`
	TimeOfDay       []DaypartStat     `json:"time_of_day"`
	VisitPerDayBins []VisitBin        `json:"visit_per_day_bins"`
}
