package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/sales-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

const outletsTable = "outlets o"

type OutletRepository interface {
	List(ctx context.Context) ([]*domain.Outlet, error)
	GetByCode(ctx context.Context, code string) (*domain.Outlet, error)
	Insert(ctx context.Context, outlet *domain.Outlet) (*domain.Outlet, error)
}

type outletRepository struct {
	conn *postgres.Connection
}

func NewOutletRepository(conn *postgres.Connection) OutletRepository {
	return &outletRepository{
		conn: conn,
	}
}

func (r *outletRepository) List(ctx context.Context) ([]*domain.Outlet, error) {
	query, args, err := squirrel.
		Select("o.id, o.code, o.name, o.lat, o.lng, o.created_at").
		From(outletsTable).
		OrderBy("o.name ASC").
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

	outlets := make([]*domain.Outlet, 0)
	for rows.Next() {
		outlet := &domain.Outlet{}
		err := rows.Scan(
			&outlet.ID,
			&outlet.Code,
			&outlet.Name,
			&outlet.Lat,
			&outlet.Lng,
			&outlet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning outlet: %w", err)
		}
		outlets = append(outlets, outlet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return outlets, nil
}

func (r *outletRepository) GetByCode(ctx context.Context, code string) (*domain.Outlet, error) {
	query, args, err := squirrel.
		Select("o.id, o.code, o.name, o.lat, o.lng, o.created_at").
		From(outletsTable).
		Where(squirrel.Eq{"o.code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	outlet := &domain.Outlet{}
	err = row.Scan(
		&outlet.ID,
		&outlet.Code,
		&outlet.Name,
		&outlet.Lat,
		&outlet.Lng,
		&outlet.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning outlet: %w", err)
	}

	return outlet, nil
}

// Insert upserts by code, refreshing the name and keeping coordinates
// when the new row has none.
func (r *outletRepository) Insert(ctx context.Context, outlet *domain.Outlet) (*domain.Outlet, error) {
	if outlet.ID == "" {
		outlet.ID = uuid.NewString()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("outlets").
		Columns("id", "code", "name", "lat", "lng").
		Values(
			outlet.ID,
			outlet.Code,
			outlet.Name,
			outlet.Lat,
			outlet.Lng,
		).
		Suffix(`
			ON CONFLICT (code) DO UPDATE SET
				name = EXCLUDED.name,
				lat = COALESCE(EXCLUDED.lat, outlets.lat),
				lng = COALESCE(EXCLUDED.lng, outlets.lng)
			RETURNING id, code, name, lat, lng, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	saved := &domain.Outlet{}
	err = row.Scan(
		&saved.ID,
		&saved.Code,
		&saved.Name,
		&saved.Lat,
		&saved.Lng,
		&saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning outlet: %w", err)
	}

	return saved, nil
}
