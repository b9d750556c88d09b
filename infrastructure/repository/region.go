package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

const regionsTable = "regions rg"

type RegionRepository interface {
	List(ctx context.Context) ([]*domain.Region, error)
}

type regionRepository struct {
	conn *postgres.Connection
}

func NewRegionRepository(conn *postgres.Connection) RegionRepository {
	return &regionRepository{
		conn: conn,
	}
}

func (r *regionRepository) List(ctx context.Context) ([]*domain.Region, error) {
	query, args, err := squirrel.
		Select("rg.id, rg.code, rg.name, rg.leader_id").
		From(regionsTable).
		OrderBy("rg.name ASC").
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

	regions := make([]*domain.Region, 0)
	for rows.Next() {
		region := &domain.Region{}
		if err := rows.Scan(&region.ID, &region.Code, &region.Name, &region.LeaderID); err != nil {
			return nil, fmt.Errorf("error scanning region: %w", err)
		}
		regions = append(regions, region)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return regions, nil
}
