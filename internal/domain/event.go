package domain

import "time"

// Checkin is an append-only visit event. Leader and region ids are
// denormalized from the salesman at ingestion time so rollup queries can
// group without joins.
type Checkin struct {
	ID         string    `json:"id"`
	SalesmanID string    `json:"salesman_id"`
	LeaderID   *string   `json:"leader_id,omitempty"`
	RegionID   *string   `json:"region_id,omitempty"`
	OutletID   *string   `json:"outlet_id,omitempty"`
	TS         time.Time `json:"ts"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}

// Sale is an append-only sale event. Amount and quantity are never
// negative; missing values are coerced to zero at the store boundary.
type Sale struct {
	ID         string    `json:"id"`
	SalesmanID string    `json:"salesman_id"`
	LeaderID   *string   `json:"leader_id,omitempty"`
	RegionID   *string   `json:"region_id,omitempty"`
	OutletID   *string   `json:"outlet_id,omitempty"`
	TS         time.Time `json:"ts"`
	Amount     float64   `json:"amount"`
	Qty        int       `json:"qty"`
	InvoiceNo  *string   `json:"invoice_no,omitempty"`
}

// CheckinDetail is a check-in row with its outlet joined, for the
// per-salesman day view.
type CheckinDetail struct {
	ID     string     `json:"id"`
	TS     time.Time  `json:"ts"`
	Lat    *float64   `json:"lat,omitempty"`
	Lng    *float64   `json:"lng,omitempty"`
	Notes  *string    `json:"notes,omitempty"`
	Outlet *OutletRef `json:"outlet,omitempty"`
}

// SaleDetail is a sale row with its outlet joined.
type SaleDetail struct {
	ID        string     `json:"id"`
	TS        time.Time  `json:"ts"`
	Amount    float64    `json:"amount"`
	Qty       int        `json:"qty"`
	InvoiceNo *string    `json:"invoice_no,omitempty"`
	Outlet    *OutletRef `json:"outlet,omitempty"`
}
