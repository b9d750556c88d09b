package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/sales-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

const salesTable = "sales sl"

// SalesmanSalesAgg is one salesman's sales rollup for a window.
// OutletWithSalesCount counts distinct outlets with at least one sale of
// amount > 0.
type SalesmanSalesAgg struct {
	SalesmanID           string
	TotalAmount          float64
	TotalQty             int
	OutletWithSalesCount int
}

// DailySalesAgg is one business-local day's sales rollup for a single
// salesman.
type DailySalesAgg struct {
	Date                 string
	TotalAmount          float64
	TotalQty             int
	OutletWithSalesCount int
}

// GroupSalesAgg is a leader's or region's sales rollup for a window.
type GroupSalesAgg struct {
	ID                   string
	Code                 string
	Name                 string
	LeaderID             *string
	TotalAmount          float64
	TotalQty             int
	OutletWithSalesCount int
}

// OutletSalesAgg is one outlet's sales rollup for a window. SalesCount
// is the number of sale rows, not distinct outlets.
type OutletSalesAgg struct {
	ID          string
	Code        string
	Name        string
	SalesCount  int
	TotalAmount float64
	TotalQty    int
}

type SaleRepository interface {
	Insert(ctx context.Context, sale *domain.Sale) error
	ListBySalesmanAndWindow(ctx context.Context, salesmanID string, window timewindow.Window) ([]*domain.SaleDetail, error)
	AggBySalesman(ctx context.Context, window timewindow.Window) ([]SalesmanSalesAgg, error)
	DailyAggBySalesman(ctx context.Context, salesmanID string, window timewindow.Window, offsetMinutes int) ([]DailySalesAgg, error)
	AggByLeader(ctx context.Context, window timewindow.Window) ([]GroupSalesAgg, error)
	AggByRegion(ctx context.Context, window timewindow.Window) ([]GroupSalesAgg, error)
	AggByOutlet(ctx context.Context, window timewindow.Window) ([]OutletSalesAgg, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Insert(ctx context.Context, sale *domain.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "salesman_id", "leader_id", "region_id", "outlet_id", "ts", "amount", "qty", "invoice_no").
		Values(
			sale.ID,
			sale.SalesmanID,
			sale.LeaderID,
			sale.RegionID,
			sale.OutletID,
			sale.TS,
			sale.Amount,
			sale.Qty,
			sale.InvoiceNo,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *saleRepository) ListBySalesmanAndWindow(ctx context.Context, salesmanID string, window timewindow.Window) ([]*domain.SaleDetail, error) {
	query, args, err := squirrel.
		Select("sl.id, sl.ts, sl.amount, sl.qty, sl.invoice_no, o.id, o.code, o.name").
		From(salesTable).
		LeftJoin("outlets o ON o.id = sl.outlet_id").
		Where(squirrel.Eq{"sl.salesman_id": salesmanID}).
		Where(squirrel.GtOrEq{"sl.ts": window.Start}).
		Where(squirrel.LtOrEq{"sl.ts": window.End}).
		OrderBy("sl.ts ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SaleDetail, 0)
	for rows.Next() {
		detail := &domain.SaleDetail{}
		var outletID, outletCode, outletName sql.NullString

		err := rows.Scan(
			&detail.ID,
			&detail.TS,
			&detail.Amount,
			&detail.Qty,
			&detail.InvoiceNo,
			&outletID,
			&outletCode,
			&outletName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}

		if outletID.Valid {
			detail.Outlet = &domain.OutletRef{
				ID:   outletID.String,
				Code: outletCode.String,
				Name: outletName.String,
			}
		}

		sales = append(sales, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) AggBySalesman(ctx context.Context, window timewindow.Window) ([]SalesmanSalesAgg, error) {
	query, args, err := squirrel.
		Select(
			"sl.salesman_id",
			"COALESCE(SUM(sl.amount), 0) AS total_amount",
			"COALESCE(SUM(sl.qty), 0) AS total_qty",
			"COUNT(DISTINCT sl.outlet_id) FILTER (WHERE sl.amount > 0) AS outlet_with_sales_count",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"sl.ts": window.Start}).
		Where(squirrel.LtOrEq{"sl.ts": window.End}).
		GroupBy("sl.salesman_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	aggs := make([]SalesmanSalesAgg, 0)
	for rows.Next() {
		var agg SalesmanSalesAgg
		if err := rows.Scan(&agg.SalesmanID, &agg.TotalAmount, &agg.TotalQty, &agg.OutletWithSalesCount); err != nil {
			return nil, fmt.Errorf("error scanning sales aggregate: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}

// DailyAggBySalesman groups a salesman's sales by business-local day.
func (r *saleRepository) DailyAggBySalesman(ctx context.Context, salesmanID string, window timewindow.Window, offsetMinutes int) ([]DailySalesAgg, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr(
			"to_char(sl.ts + make_interval(mins => ?), 'YYYY-MM-DD') AS day",
			offsetMinutes,
		)).
		Column("COALESCE(SUM(sl.amount), 0) AS total_amount").
		Column("COALESCE(SUM(sl.qty), 0) AS total_qty").
		Column("COUNT(DISTINCT sl.outlet_id) FILTER (WHERE sl.amount > 0) AS outlet_with_sales_count").
		From(salesTable).
		Where(squirrel.Eq{"sl.salesman_id": salesmanID}).
		Where(squirrel.GtOrEq{"sl.ts": window.Start}).
		Where(squirrel.LtOrEq{"sl.ts": window.End}).
		GroupBy("day").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	aggs := make([]DailySalesAgg, 0)
	for rows.Next() {
		var agg DailySalesAgg
		if err := rows.Scan(&agg.Date, &agg.TotalAmount, &agg.TotalQty, &agg.OutletWithSalesCount); err != nil {
			return nil, fmt.Errorf("error scanning daily sales: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}

func (r *saleRepository) AggByLeader(ctx context.Context, window timewindow.Window) ([]GroupSalesAgg, error) {
	query, args, err := squirrel.
		Select(
			"l.id, l.code, l.name",
			"COALESCE(SUM(sl.amount), 0) AS total_amount",
			"COALESCE(SUM(sl.qty), 0) AS total_qty",
			"COUNT(DISTINCT sl.outlet_id) FILTER (WHERE sl.amount > 0) AS outlet_with_sales_count",
		).
		From(salesTable).
		Join("leaders l ON l.id = sl.leader_id").
		Where(squirrel.GtOrEq{"sl.ts": window.Start}).
		Where(squirrel.LtOrEq{"sl.ts": window.End}).
		GroupBy("l.id", "l.code", "l.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryGroupAggs(ctx, query, args, false)
}

func (r *saleRepository) AggByRegion(ctx context.Context, window timewindow.Window) ([]GroupSalesAgg, error) {
	query, args, err := squirrel.
		Select(
			"rg.id, rg.code, rg.name, rg.leader_id",
			"COALESCE(SUM(sl.amount), 0) AS total_amount",
			"COALESCE(SUM(sl.qty), 0) AS total_qty",
			"COUNT(DISTINCT sl.outlet_id) FILTER (WHERE sl.amount > 0) AS outlet_with_sales_count",
		).
		From(salesTable).
		Join("regions rg ON rg.id = sl.region_id").
		Where(squirrel.GtOrEq{"sl.ts": window.Start}).
		Where(squirrel.LtOrEq{"sl.ts": window.End}).
		GroupBy("rg.id", "rg.code", "rg.name", "rg.leader_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryGroupAggs(ctx, query, args, true)
}

func (r *saleRepository) queryGroupAggs(ctx context.Context, query string, args []interface{}, withLeaderID bool) ([]GroupSalesAgg, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	aggs := make([]GroupSalesAgg, 0)
	for rows.Next() {
		var agg GroupSalesAgg
		if withLeaderID {
			err = rows.Scan(&agg.ID, &agg.Code, &agg.Name, &agg.LeaderID, &agg.TotalAmount, &agg.TotalQty, &agg.OutletWithSalesCount)
		} else {
			err = rows.Scan(&agg.ID, &agg.Code, &agg.Name, &agg.TotalAmount, &agg.TotalQty, &agg.OutletWithSalesCount)
		}
		if err != nil {
			return nil, fmt.Errorf("error scanning group aggregate: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}

func (r *saleRepository) AggByOutlet(ctx context.Context, window timewindow.Window) ([]OutletSalesAgg, error) {
	query, args, err := squirrel.
		Select(
			"o.id, o.code, o.name",
			"COUNT(sl.id) AS sales_count",
			"COALESCE(SUM(sl.amount), 0) AS total_amount",
			"COALESCE(SUM(sl.qty), 0) AS total_qty",
		).
		From(salesTable).
		Join("outlets o ON o.id = sl.outlet_id").
		Where(squirrel.GtOrEq{"sl.ts": window.Start}).
		Where(squirrel.LtOrEq{"sl.ts": window.End}).
		GroupBy("o.id", "o.code", "o.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	aggs := make([]OutletSalesAgg, 0)
	for rows.Next() {
		var agg OutletSalesAgg
		if err := rows.Scan(&agg.ID, &agg.Code, &agg.Name, &agg.SalesCount, &agg.TotalAmount, &agg.TotalQty); err != nil {
			return nil, fmt.Errorf("error scanning outlet sales: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}
