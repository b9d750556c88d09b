package domain

// Period is an inclusive pair of business-local calendar dates.
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SalesmanMetrics is the per-salesman activity summary for one date or
// one period. Derived fresh on every request, never persisted.
//
// OutletWithSalesCount counts distinct outlets with at least one sale of
// amount > 0 in the window; it is not a transaction count. ConversionRate
// is OutletWithSalesCount / VisitCount, or 0 when there were no visits.
type SalesmanMetrics struct {
	SalesmanID           string  `json:"salesman_id"`
	SalesmanCode         string  `json:"salesman_code"`
	SalesmanName         string  `json:"salesman_name"`
	Date                 string  `json:"date,omitempty"`
	VisitCount           int     `json:"visit_count"`
	UniqueOutletCount    int     `json:"unique_outlet_count"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	TotalSalesQty        int     `json:"total_sales_qty"`
	OutletWithSalesCount int     `json:"outlet_with_sales_count"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// AggregatedMetrics rolls SalesmanMetrics up to period totals.
// AvgConversionRate is visit-weighted: TotalOutletsWithSales / TotalVisits.
type AggregatedMetrics struct {
	Date                  string            `json:"date,omitempty"`
	Period                *Period           `json:"period,omitempty"`
	TotalVisits           int               `json:"total_visits"`
	TotalSalesmen         int               `json:"total_salesmen"`
	TotalSalesAmount      float64           `json:"total_sales_amount"`
	TotalSalesQty         int               `json:"total_sales_qty"`
	TotalOutletsWithSales int               `json:"total_outlets_with_sales"`
	AvgConversionRate     float64           `json:"avg_conversion_rate"`
	SalesmenMetrics       []SalesmanMetrics `json:"salesmen_metrics"`
}

// SalesmanPeriodTotals sums one salesman's daily metrics over a period.
//
// TotalUniqueOutlets is the maximum of the per-day unique-outlet counts,
// not a distinct count over the whole range. The dashboard has always
// read it that way; keep it.
type SalesmanPeriodTotals struct {
	TotalVisits           int     `json:"total_visits"`
	TotalUniqueOutlets    int     `json:"total_unique_outlets"`
	TotalSalesAmount      float64 `json:"total_sales_amount"`
	TotalSalesQty         int     `json:"total_sales_qty"`
	TotalOutletsWithSales int     `json:"total_outlets_with_sales"`
	AvgConversionRate     float64 `json:"avg_conversion_rate"`
}

// SalesmanPeriodMetrics is the per-day breakdown for one salesman.
// Salesman is nil when the requested id does not exist.
type SalesmanPeriodMetrics struct {
	Salesman     *SalesmanRef         `json:"salesman"`
	DailyMetrics []SalesmanMetrics    `json:"daily_metrics"`
	Totals       SalesmanPeriodTotals `json:"totals"`
}

// GroupMetrics is the rollup row for a leader or a region over a window.
type GroupMetrics struct {
	ID                   string  `json:"id"`
	Code                 string  `json:"code"`
	Name                 string  `json:"name"`
	LeaderID             *string `json:"leader_id,omitempty"`
	VisitCount           int     `json:"visit_count"`
	UniqueOutletCount    int     `json:"unique_outlet_count"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	TotalSalesQty        int     `json:"total_sales_qty"`
	OutletWithSalesCount int     `json:"outlet_with_sales_count"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// OutletMetrics is the per-outlet activity row for the outlet table view.
type OutletMetrics struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	VisitCount       int     `json:"visit_count"`
	SalesCount       int     `json:"sales_count"`
	TotalSalesAmount float64 `json:"total_sales_amount"`
	TotalSalesQty    int     `json:"total_sales_qty"`
}

// DayDetailTotals summarizes one salesman's raw events for a single day.
type DayDetailTotals struct {
	TotalCheckins    int     `json:"total_checkins"`
	TotalSales       int     `json:"total_sales"`
	TotalSalesAmount float64 `json:"total_sales_amount"`
	TotalSalesQty    int     `json:"total_sales_qty"`
}

// SalesmanDayDetail is the raw event view for one salesman on one date.
type SalesmanDayDetail struct {
	Date     string           `json:"date"`
	Salesman *SalesmanRef     `json:"salesman"`
	Totals   DayDetailTotals  `json:"totals"`
	Checkins []*CheckinDetail `json:"checkins"`
	Sales    []*SaleDetail    `json:"sales"`
}

// LeaderRegionMetrics carries both rollup tables for one window. Every
// registered leader and region appears, zero-activity ones included.
type LeaderRegionMetrics struct {
	Date    string         `json:"date,omitempty"`
	Period  *Period        `json:"period,omitempty"`
	Leaders []GroupMetrics `json:"leaders"`
	Regions []GroupMetrics `json:"regions"`
}

// RankingEntry is one row of a top/bottom ranking table.
type RankingEntry struct {
	SalesmanID       string  `json:"salesman_id"`
	SalesmanName     string  `json:"salesman_name"`
	ConversionRate   float64 `json:"conversion_rate,omitempty"`
	TotalSalesAmount float64 `json:"total_sales_amount,omitempty"`
	VisitCount       int     `json:"visit_count,omitempty"`
}

// Rankings groups the dashboard ranking tables for one metrics window.
type Rankings struct {
	TopByConversion    []RankingEntry `json:"top_by_conversion"`
	BottomByConversion []RankingEntry `json:"bottom_by_conversion"`
	TopBySales         []RankingEntry `json:"top_by_sales"`
	BottomBySales      []RankingEntry `json:"bottom_by_sales"`
	TopByVisits        []RankingEntry `json:"top_by_visits"`
}
