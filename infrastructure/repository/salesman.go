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

const salesmenTable = "salesmen s"

type SalesmanRepository interface {
	ListActive(ctx context.Context) ([]*domain.Salesman, error)
	GetByID(ctx context.Context, id string) (*domain.Salesman, error)
	GetByCode(ctx context.Context, code string) (*domain.Salesman, error)
	Insert(ctx context.Context, salesman *domain.Salesman) (*domain.Salesman, error)
}

type salesmanRepository struct {
	conn *postgres.Connection
}

func NewSalesmanRepository(conn *postgres.Connection) SalesmanRepository {
	return &salesmanRepository{
		conn: conn,
	}
}

func (r *salesmanRepository) ListActive(ctx context.Context) ([]*domain.Salesman, error) {
	query, args, err := squirrel.
		Select("s.id, s.code, s.name, s.leader_id, s.region_id, s.active, s.created_at").
		From(salesmenTable).
		Where(squirrel.Eq{"s.active": true}).
		OrderBy("s.name ASC").
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

	salesmen := make([]*domain.Salesman, 0)
	for rows.Next() {
		salesman, err := scanSalesman(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning salesman: %w", err)
		}
		salesmen = append(salesmen, salesman)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return salesmen, nil
}

func (r *salesmanRepository) GetByID(ctx context.Context, id string) (*domain.Salesman, error) {
	return r.getByField(ctx, "s.id", id)
}

func (r *salesmanRepository) GetByCode(ctx context.Context, code string) (*domain.Salesman, error) {
	return r.getByField(ctx, "s.code", code)
}

func (r *salesmanRepository) getByField(ctx context.Context, field, value string) (*domain.Salesman, error) {
	query, args, err := squirrel.
		Select("s.id, s.code, s.name, s.leader_id, s.region_id, s.active, s.created_at").
		From(salesmenTable).
		Where(squirrel.Eq{field: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	salesman := &domain.Salesman{}
	err = row.Scan(
		&salesman.ID,
		&salesman.Code,
		&salesman.Name,
		&salesman.LeaderID,
		&salesman.RegionID,
		&salesman.Active,
		&salesman.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning salesman: %w", err)
	}

	return salesman, nil
}

// Insert upserts by code so ingestion can register a salesman on first
// sight and refresh its name afterwards.
func (r *salesmanRepository) Insert(ctx context.Context, salesman *domain.Salesman) (*domain.Salesman, error) {
	if salesman.ID == "" {
		salesman.ID = uuid.NewString()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("salesmen").
		Columns("id", "code", "name", "leader_id", "region_id", "active").
		Values(
			salesman.ID,
			salesman.Code,
			salesman.Name,
			salesman.LeaderID,
			salesman.RegionID,
			true,
		).
		Suffix(`
			ON CONFLICT (code) DO UPDATE SET
				name = EXCLUDED.name
			RETURNING id, code, name, leader_id, region_id, active, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	saved := &domain.Salesman{}
	err = row.Scan(
		&saved.ID,
		&saved.Code,
		&saved.Name,
		&saved.LeaderID,
		&saved.RegionID,
		&saved.Active,
		&saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning salesman: %w", err)
	}

	return saved, nil
}

func scanSalesman(rows *sql.Rows) (*domain.Salesman, error) {
	salesman := &domain.Salesman{}
	err := rows.Scan(
		&salesman.ID,
		&salesman.Code,
		&salesman.Name,
		&salesman.LeaderID,
		&salesman.RegionID,
		&salesman.Active,
		&salesman.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return salesman, nil
}
