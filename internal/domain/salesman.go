package domain

import "time"

// Salesman is a field salesman registered through ingestion or seeding.
// Rows are upserted by code and never mutated by the analytics path.
type Salesman struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	LeaderID  *string   `json:"leader_id,omitempty"`
	RegionID  *string   `json:"region_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// SalesmanRef is the identity triple embedded in analytics payloads.
type SalesmanRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Leader struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Region struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	LeaderID *string `json:"leader_id,omitempty"`
}

type Outlet struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OutletRef is the outlet identity joined onto event detail rows.
type OutletRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
