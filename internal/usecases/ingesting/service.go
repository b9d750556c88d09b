package ingesting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-monitor-api/infrastructure/repository"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/pkg/utils"
)

// ValidationError marks rejected input so handlers can answer 400
// instead of 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CheckinRequest is the ingestion payload for one visit event.
// Salesman and outlet are referenced by code; a name is required only
// when the code is not registered yet.
type CheckinRequest struct {
	SalesmanCode string     `json:"salesman_code"`
	SalesmanName string     `json:"salesman_name"`
	OutletCode   string     `json:"outlet_code"`
	OutletName   string     `json:"outlet_name"`
	TS           *time.Time `json:"ts"`
	Lat          *float64   `json:"lat"`
	Lng          *float64   `json:"lng"`
	Notes        *string    `json:"notes"`
}

// SaleRequest is the ingestion payload for one sale event.
type SaleRequest struct {
	SalesmanCode string     `json:"salesman_code"`
	SalesmanName string     `json:"salesman_name"`
	OutletCode   string     `json:"outlet_code"`
	OutletName   string     `json:"outlet_name"`
	TS           *time.Time `json:"ts"`
	Amount       *float64   `json:"amount"`
	Qty          *int       `json:"qty"`
	InvoiceNo    *string    `json:"invoice_no"`
}

// Ingester appends check-in and sale events, upserting the referenced
// salesman and outlet by code on the way in.
type Ingester interface {
	IngestCheckin(ctx context.Context, req CheckinRequest) (*domain.Checkin, error)
	IngestSale(ctx context.Context, req SaleRequest) (*domain.Sale, error)
}

type Service struct {
	salesmanRepo repository.SalesmanRepository
	outletRepo   repository.OutletRepository
	checkinRepo  repository.CheckinRepository
	saleRepo     repository.SaleRepository
}

func NewService(
	salesmanRepo repository.SalesmanRepository,
	outletRepo repository.OutletRepository,
	checkinRepo repository.CheckinRepository,
	saleRepo repository.SaleRepository,
) Ingester {
	return &Service{
		salesmanRepo: salesmanRepo,
		outletRepo:   outletRepo,
		checkinRepo:  checkinRepo,
		saleRepo:     saleRepo,
	}
}

func (s *Service) IngestCheckin(ctx context.Context, req CheckinRequest) (*domain.Checkin, error) {
	salesman, err := s.resolveSalesman(ctx, req.SalesmanCode, req.SalesmanName)
	if err != nil {
		return nil, err
	}

	checkin := &domain.Checkin{
		SalesmanID: salesman.ID,
		LeaderID:   salesman.LeaderID,
		RegionID:   salesman.RegionID,
		TS:         eventTime(req.TS),
		Lat:        req.Lat,
		Lng:        req.Lng,
		Notes:      req.Notes,
	}

	if req.OutletCode != "" {
		outlet, err := s.resolveOutlet(ctx, req.OutletCode, req.OutletName, req.Lat, req.Lng)
		if err != nil {
			return nil, err
		}
		checkin.OutletID = &outlet.ID
	}

	if err := s.checkinRepo.Insert(ctx, checkin); err != nil {
		return nil, fmt.Errorf("error inserting checkin: %w", err)
	}

	return checkin, nil
}

func (s *Service) IngestSale(ctx context.Context, req SaleRequest) (*domain.Sale, error) {
	salesman, err := s.resolveSalesman(ctx, req.SalesmanCode, req.SalesmanName)
	if err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		SalesmanID: salesman.ID,
		LeaderID:   salesman.LeaderID,
		RegionID:   salesman.RegionID,
		TS:         eventTime(req.TS),
		Amount:     nonNegativeAmount(req.Amount),
		Qty:        nonNegativeQty(req.Qty),
	}

	if req.OutletCode != "" {
		outlet, err := s.resolveOutlet(ctx, req.OutletCode, req.OutletName, nil, nil)
		if err != nil {
			return nil, err
		}
		sale.OutletID = &outlet.ID
	}

	if req.InvoiceNo != nil && *req.InvoiceNo != "" {
		sale.InvoiceNo = req.InvoiceNo
	} else {
		ref, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("error generating invoice reference: %w", err)
		}
		sale.InvoiceNo = &ref
	}

	if err := s.saleRepo.Insert(ctx, sale); err != nil {
		return nil, fmt.Errorf("error inserting sale: %w", err)
	}

	return sale, nil
}

// resolveSalesman returns the salesman for a code, registering it when
// unknown. Unknown codes without a name are rejected.
func (s *Service) resolveSalesman(ctx context.Context, code, name string) (*domain.Salesman, error) {
	if code == "" {
		return nil, &ValidationError{Reason: "salesman_code is required"}
	}

	salesman, err := s.salesmanRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error loading salesman by code: %w", err)
	}
	if salesman != nil {
		return salesman, nil
	}

	if name == "" {
		return nil, &ValidationError{Reason: fmt.Sprintf("salesman_name is required for unknown code %q", code)}
	}

	salesman, err = s.salesmanRepo.Insert(ctx, &domain.Salesman{
		Code:   code,
		Name:   name,
		Active: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error registering salesman: %w", err)
	}

	return salesman, nil
}

func (s *Service) resolveOutlet(ctx context.Context, code, name string, lat, lng *float64) (*domain.Outlet, error) {
	outlet, err := s.outletRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error loading outlet by code: %w", err)
	}
	if outlet != nil {
		return outlet, nil
	}

	if name == "" {
		return nil, &ValidationError{Reason: fmt.Sprintf("outlet_name is required for unknown code %q", code)}
	}

	outlet, err = s.outletRepo.Insert(ctx, &domain.Outlet{
		Code: code,
		Name: name,
		Lat:  lat,
		Lng:  lng,
	})
	if err != nil {
		return nil, fmt.Errorf("error registering outlet: %w", err)
	}

	return outlet, nil
}

func eventTime(ts *time.Time) time.Time {
	if ts == nil || ts.IsZero() {
		return time.Now().UTC()
	}
	return ts.UTC()
}

func nonNegativeAmount(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

func nonNegativeQty(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
