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

const checkinsTable = "checkins c"

// SalesmanActivityAgg is one salesman's check-in rollup for a window.
type SalesmanActivityAgg struct {
	SalesmanID        string
	VisitCount        int
	UniqueOutletCount int
}

// DailyActivityAgg is one business-local day's check-in rollup for a
// single salesman.
type DailyActivityAgg struct {
	Date              string
	VisitCount        int
	UniqueOutletCount int
}

// GroupActivityAgg is a leader's or region's check-in rollup for a window.
type GroupActivityAgg struct {
	ID                string
	Code              string
	Name              string
	LeaderID          *string
	VisitCount        int
	UniqueOutletCount int
}

// OutletActivityAgg is one outlet's visit rollup for a window.
type OutletActivityAgg struct {
	ID         string
	Code       string
	Name       string
	VisitCount int
}

// DaypartAgg is a salesman's visit volume per business-local daypart. A
// visit counts as a success when the same salesman sold at the same
// outlet on the same business-local day.
type DaypartAgg struct {
	SalesmanName string
	Daypart      string
	VisitCount   int
	SuccessCount int
}

type CheckinRepository interface {
	Insert(ctx context.Context, checkin *domain.Checkin) error
	ListBySalesmanAndWindow(ctx context.Context, salesmanID string, window timewindow.Window) ([]*domain.CheckinDetail, error)
	AggBySalesman(ctx context.Context, window timewindow.Window) ([]SalesmanActivityAgg, error)
	DailyVisitCounts(ctx context.Context, salesmanID string, window timewindow.Window, offsetMinutes int) ([]DailyActivityAgg, error)
	AggByLeader(ctx context.Context, window timewindow.Window) ([]GroupActivityAgg, error)
	AggByRegion(ctx context.Context, window timewindow.Window) ([]GroupActivityAgg, error)
	AggByOutlet(ctx context.Context, window timewindow.Window) ([]OutletActivityAgg, error)
	DaypartSuccess(ctx context.Context, window timewindow.Window, offsetMinutes int) ([]DaypartAgg, error)
}

type checkinRepository struct {
	conn *postgres.Connection
}

func NewCheckinRepository(conn *postgres.Connection) CheckinRepository {
	return &checkinRepository{
		conn: conn,
	}
}

func (r *checkinRepository) Insert(ctx context.Context, checkin *domain.Checkin) error {
	if checkin.ID == "" {
		checkin.ID = uuid.NewString()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("checkins").
		Columns("id", "salesman_id", "leader_id", "region_id", "outlet_id", "ts", "lat", "lng", "notes").
		Values(
			checkin.ID,
			checkin.SalesmanID,
			checkin.LeaderID,
			checkin.RegionID,
			checkin.OutletID,
			checkin.TS,
			checkin.Lat,
			checkin.Lng,
			checkin.Notes,
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

func (r *checkinRepository) ListBySalesmanAndWindow(ctx context.Context, salesmanID string, window timewindow.Window) ([]*domain.CheckinDetail, error) {
	query, args, err := squirrel.
		Select("c.id, c.ts, c.lat, c.lng, c.notes, o.id, o.code, o.name").
		From(checkinsTable).
		LeftJoin("outlets o ON o.id = c.outlet_id").
		Where(squirrel.Eq{"c.salesman_id": salesmanID}).
		Where(squirrel.GtOrEq{"c.ts": window.Start}).
		Where(squirrel.LtOrEq{"c.ts": window.End}).
		OrderBy("c.ts ASC").
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

	checkins := make([]*domain.CheckinDetail, 0)
	for rows.Next() {
		detail := &domain.CheckinDetail{}
		var outletID, outletCode, outletName sql.NullString

		err := rows.Scan(
			&detail.ID,
			&detail.TS,
			&detail.Lat,
			&detail.Lng,
			&detail.Notes,
			&outletID,
			&outletCode,
			&outletName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning checkin: %w", err)
		}

		if outletID.Valid {
			detail.Outlet = &domain.OutletRef{
				ID:   outletID.String,
				Code: outletCode.String,
				Name: outletName.String,
			}
		}

		checkins = append(checkins, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return checkins, nil
}

func (r *checkinRepository) AggBySalesman(ctx context.Context, window timewindow.Window) ([]SalesmanActivityAgg, error) {
	query, args, err := squirrel.
		Select("c.salesman_id, COUNT(c.id) AS visit_count, COUNT(DISTINCT c.outlet_id) AS unique_outlet_count").
		From(checkinsTable).
		Where(squirrel.GtOrEq{"c.ts": window.Start}).
		Where(squirrel.LtOrEq{"c.ts": window.End}).
		GroupBy("c.salesman_id").
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

	aggs := make([]SalesmanActivityAgg, 0)
	for rows.Next() {
		var agg SalesmanActivityAgg
		if err := rows.Scan(&agg.SalesmanID, &agg.VisitCount, &agg.UniqueOutletCount); err != nil {
			return nil, fmt.Errorf("error scanning activity aggregate: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}

// DailyVisitCounts groups a salesman's check-ins by business-local day.
// The offset shifts the stored UTC timestamps before the day boundary is
// applied.
func (r *checkinRepository) DailyVisitCounts(ctx context.Context, salesmanID string, window timewindow.Window, offsetMinutes int) ([]DailyActivityAgg, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr(
			"to_char(c.ts + make_interval(mins => ?), 'YYYY-MM-DD') AS day",
			offsetMinutes,
		)).
		Column("COUNT(c.id) AS visit_count").
		Column("COUNT(DISTINCT c.outlet_id) AS unique_outlet_count").
		From(checkinsTable).
		Where(squirrel.Eq{"c.salesman_id": salesmanID}).
		Where(squirrel.GtOrEq{"c.ts": window.Start}).
		Where(squirrel.LtOrEq{"c.ts": window.End}).
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

	aggs := make([]DailyActivityAgg, 0)
	for rows.Next() {
		var agg DailyActivityAgg
		if err := rows.Scan(&agg.Date, &agg.VisitCount, &agg.UniqueOutletCount); err != nil {
			return nil, fmt.Errorf("error scanning daily activity: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}

func (r *checkinRepository) AggByLeader(ctx context.Context, window timewindow.Window) ([]GroupActivityAgg, error) {
	query, args, err := squirrel.
		Select("l.id, l.code, l.name, COUNT(c.id) AS visit_count, COUNT(DISTINCT c.outlet_id) AS unique_outlet_count").
		From(checkinsTable).
		Join("leaders l ON l.id = c.leader_id").
		Where(squirrel.GtOrEq{"c.ts": window.Start}).
		Where(squirrel.LtOrEq{"c.ts": window.End}).
		GroupBy("l.id", "l.code", "l.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryGroupAggs(ctx, query, args, false)
}

func (r *checkinRepository) AggByRegion(ctx context.Context, window timewindow.Window) ([]GroupActivityAgg, error) {
	query, args, err := squirrel.
		Select("rg.id, rg.code, rg.name, rg.leader_id, COUNT(c.id) AS visit_count, COUNT(DISTINCT c.outlet_id) AS unique_outlet_count").
		From(checkinsTable).
		Join("regions rg ON rg.id = c.region_id").
		Where(squirrel.GtOrEq{"c.ts": window.Start}).
		Where(squirrel.LtOrEq{"c.ts": window.End}).
		GroupBy("rg.id", "rg.code", "rg.name", "rg.leader_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryGroupAggs(ctx, query, args, true)
}

func (r *checkinRepository) queryGroupAggs(ctx context.Context, query string, args []interface{}, withLeaderID bool) ([]GroupActivityAgg, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	aggs := make([]GroupActivityAgg, 0)
	for rows.Next() {
		var agg GroupActivityAgg
		if withLeaderID {
			err = rows.Scan(&agg.ID, &agg.Code, &agg.Name, &agg.LeaderID, &agg.VisitCount, &agg.UniqueOutletCount)
		} else {
			err = rows.Scan(&agg.ID, &agg.Code, &agg.Name, &agg.VisitCount, &agg.UniqueOutletCount)
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

// DaypartSuccess buckets visits into Pagi/Siang/Malam/Larut by local
// hour and counts the ones backed by a same-day sale at the same outlet.
// The CASE boundaries follow the dashboard's daypart definition.
func (r *checkinRepository) DaypartSuccess(ctx context.Context, window timewindow.Window, offsetMinutes int) ([]DaypartAgg, error) {
	const daypartQuery = `
		WITH checkins_base AS (
			SELECT
				c.salesman_id,
				s.name AS salesman_name,
				c.outlet_id,
				EXTRACT(HOUR FROM (c.ts + make_interval(mins => $1))) AS local_hour,
				DATE(c.ts + make_interval(mins => $1)) AS local_date
			FROM checkins c
			JOIN salesmen s ON s.id = c.salesman_id
			WHERE c.ts >= $2 AND c.ts <= $3
		)
		SELECT
			cb.salesman_name,
			CASE
				WHEN cb.local_hour BETWEEN 6 AND 11 THEN 'Pagi'
				WHEN cb.local_hour BETWEEN 12 AND 17 THEN 'Siang'
				WHEN cb.local_hour BETWEEN 18 AND 21 THEN 'Malam'
				ELSE 'Larut'
			END AS daypart,
			COUNT(*) AS visit_count,
			SUM(
				CASE
					WHEN EXISTS (
						SELECT 1
						FROM sales sl
						WHERE sl.salesman_id = cb.salesman_id
							AND sl.outlet_id = cb.outlet_id
							AND DATE(sl.ts + make_interval(mins => $1)) = cb.local_date
							AND sl.ts >= $2 AND sl.ts <= $3
					) THEN 1 ELSE 0
				END
			) AS success_count
		FROM checkins_base cb
		GROUP BY cb.salesman_name, daypart
	`

	rows, err := r.conn.Query(ctx, daypartQuery, offsetMinutes, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	aggs := make([]DaypartAgg, 0)
	for rows.Next() {
		var agg DaypartAgg
		if err := rows.Scan(&agg.SalesmanName, &agg.Daypart, &agg.VisitCount, &agg.SuccessCount); err != nil {
			return nil, fmt.Errorf("error scanning daypart aggregate: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}

func (r *checkinRepository) AggByOutlet(ctx context.Context, window timewindow.Window) ([]OutletActivityAgg, error) {
	query, args, err := squirrel.
		Select("o.id, o.code, o.name, COUNT(c.id) AS visit_count").
		From(checkinsTable).
		Join("outlets o ON o.id = c.outlet_id").
		Where(squirrel.GtOrEq{"c.ts": window.Start}).
		Where(squirrel.LtOrEq{"c.ts": window.End}).
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

	aggs := make([]OutletActivityAgg, 0)
	for rows.Next() {
		var agg OutletActivityAgg
		if err := rows.Scan(&agg.ID, &agg.Code, &agg.Name, &agg.VisitCount); err != nil {
			return nil, fmt.Errorf("error scanning outlet activity: %w", err)
		}
		aggs = append(aggs, agg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return aggs, nil
}
