package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-monitor-api/internal/domain"
)

const leadersTable = "leaders l"

type LeaderRepository interface {
	List(ctx context.Context) ([]*domain.Leader, error)
}

type leaderRepository struct {
	conn *postgres.Connection
}

func NewLeaderRepository(conn *postgres.Connection) LeaderRepository {
	return &leaderRepository{
		conn: conn,
	}
}

func (r *leaderRepository) List(ctx context.Context) ([]*domain.Leader, error) {
	query, args, err := squirrel.
		Select("l.id, l.code, l.name, l.active").
		From(leadersTable).
		OrderBy("l.name ASC").
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

	leaders := make([]*domain.Leader, 0)
	for rows.Next() {
		leader := &domain.Leader{}
		if err := rows.Scan(&leader.ID, &leader.Code, &leader.Name, &leader.Active); err != nil {
			return nil, fmt.Errorf("error scanning leader: %w", err)
		}
		leaders = append(leaders, leader)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return leaders, nil
}
