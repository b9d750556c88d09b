package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-monitor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

type ingesterMocks struct {
	salesmanRepo *mocks.MockSalesmanRepository
	outletRepo   *mocks.MockOutletRepository
	checkinRepo  *mocks.MockCheckinRepository
	saleRepo     *mocks.MockSaleRepository
}

func newIngester(ctrl *gomock.Controller) (Ingester, ingesterMocks) {
	m := ingesterMocks{
		salesmanRepo: mocks.NewMockSalesmanRepository(ctrl),
		outletRepo:   mocks.NewMockOutletRepository(ctrl),
		checkinRepo:  mocks.NewMockCheckinRepository(ctrl),
		saleRepo:     mocks.NewMockSaleRepository(ctrl),
	}
	return NewService(m.salesmanRepo, m.outletRepo, m.checkinRepo, m.saleRepo), m
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(s string) *string     { return &s }

func TestService_IngestCheckin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leaderID := "L1"
	regionID := "R1"
	known := &domain.Salesman{
		ID:       "S1",
		Code:     "SLS-001",
		Name:     "Budi",
		LeaderID: &leaderID,
		RegionID: &regionID,
		Active:   true,
	}
	ts := time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC)

	t.Run("known salesman and outlet", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-001").Return(known, nil)
		m.outletRepo.EXPECT().GetByCode(gomock.Any(), "OUT-001").
			Return(&domain.Outlet{ID: "O1", Code: "OUT-001", Name: "Toko Sinar"}, nil)
		m.checkinRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, checkin *domain.Checkin) error {
				assert.Equal(t, "S1", checkin.SalesmanID)
				require.NotNil(t, checkin.LeaderID)
				assert.Equal(t, "L1", *checkin.LeaderID)
				require.NotNil(t, checkin.RegionID)
				assert.Equal(t, "R1", *checkin.RegionID)
				require.NotNil(t, checkin.OutletID)
				assert.Equal(t, "O1", *checkin.OutletID)
				assert.Equal(t, ts, checkin.TS)
				return nil
			})

		checkin, err := ingester.IngestCheckin(context.Background(), CheckinRequest{
			SalesmanCode: "SLS-001",
			OutletCode:   "OUT-001",
			TS:           &ts,
			Lat:          floatPtr(-6.2),
			Lng:          floatPtr(106.8),
		})
		require.NoError(t, err)
		require.NotNil(t, checkin)
	})

	t.Run("unknown salesman with name is registered", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-099").Return(nil, nil)
		m.salesmanRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, salesman *domain.Salesman) (*domain.Salesman, error) {
				assert.Equal(t, "SLS-099", salesman.Code)
				assert.Equal(t, "Eka", salesman.Name)
				assert.True(t, salesman.Active)
				salesman.ID = "S99"
				return salesman, nil
			})
		m.checkinRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		checkin, err := ingester.IngestCheckin(context.Background(), CheckinRequest{
			SalesmanCode: "SLS-099",
			SalesmanName: "Eka",
		})
		require.NoError(t, err)
		assert.Equal(t, "S99", checkin.SalesmanID)
		assert.Nil(t, checkin.OutletID)
		// No timestamp in the payload defaults to now.
		assert.WithinDuration(t, time.Now().UTC(), checkin.TS, time.Minute)
	})

	t.Run("unknown salesman without name is rejected", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-404").Return(nil, nil)

		_, err := ingester.IngestCheckin(context.Background(), CheckinRequest{
			SalesmanCode: "SLS-404",
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "salesman_name is required")
	})

	t.Run("missing salesman code is rejected", func(t *testing.T) {
		ingester, _ := newIngester(ctrl)

		_, err := ingester.IngestCheckin(context.Background(), CheckinRequest{})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("unknown outlet without name is rejected", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-001").Return(known, nil)
		m.outletRepo.EXPECT().GetByCode(gomock.Any(), "OUT-404").Return(nil, nil)

		_, err := ingester.IngestCheckin(context.Background(), CheckinRequest{
			SalesmanCode: "SLS-001",
			OutletCode:   "OUT-404",
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "outlet_name is required")
	})
}

func TestService_IngestSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	known := &domain.Salesman{ID: "S1", Code: "SLS-001", Name: "Budi", Active: true}

	t.Run("negative amount and qty are coerced to zero", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-001").Return(known, nil)
		m.saleRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
				assert.Zero(t, sale.Amount)
				assert.Zero(t, sale.Qty)
				return nil
			})

		sale, err := ingester.IngestSale(context.Background(), SaleRequest{
			SalesmanCode: "SLS-001",
			Amount:       floatPtr(-50000),
			Qty:          intPtr(-2),
		})
		require.NoError(t, err)
		assert.Zero(t, sale.Amount)
		assert.Zero(t, sale.Qty)
	})

	t.Run("missing invoice number gets a generated reference", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-001").Return(known, nil)
		m.saleRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		sale, err := ingester.IngestSale(context.Background(), SaleRequest{
			SalesmanCode: "SLS-001",
			Amount:       floatPtr(150000),
			Qty:          intPtr(1),
		})
		require.NoError(t, err)

		require.NotNil(t, sale.InvoiceNo)
		assert.NotEmpty(t, *sale.InvoiceNo)
		assert.Equal(t, 150000.0, sale.Amount)
	})

	t.Run("provided invoice number is kept", func(t *testing.T) {
		ingester, m := newIngester(ctrl)

		m.salesmanRepo.EXPECT().GetByCode(gomock.Any(), "SLS-001").Return(known, nil)
		m.saleRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		sale, err := ingester.IngestSale(context.Background(), SaleRequest{
			SalesmanCode: "SLS-001",
			Amount:       floatPtr(150000),
			InvoiceNo:    strPtr("INV-2025-0001"),
		})
		require.NoError(t, err)

		require.NotNil(t, sale.InvoiceNo)
		assert.Equal(t, "INV-2025-0001", *sale.InvoiceNo)
	})
}
