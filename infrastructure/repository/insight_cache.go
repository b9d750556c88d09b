package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-monitor-api/infrastructure/database/postgres"
)

const (
	dailyInsightsCacheTable  = "daily_insights_cache dic"
	weeklyInsightsCacheTable = "weekly_insights_cache wic"
)

// InsightCacheRepository stores generated insight payloads verbatim.
// Daily entries are keyed by date, weekly entries by the exact (from,
// to) pair; writes are last-write-wins upserts.
type InsightCacheRepository interface {
	GetDaily(ctx context.Context, date string) (json.RawMessage, error)
	SaveDaily(ctx context.Context, date string, payload json.RawMessage) error
	GetWeekly(ctx context.Context, from, to string) (json.RawMessage, error)
	SaveWeekly(ctx context.Context, from, to string, payload json.RawMessage) error
}

type insightCacheRepository struct {
	conn *postgres.Connection
}

func NewInsightCacheRepository(conn *postgres.Connection) InsightCacheRepository {
	return &insightCacheRepository{
		conn: conn,
	}
}

// GetDaily returns the cached payload for the date, or nil on a miss.
func (r *insightCacheRepository) GetDaily(ctx context.Context, date string) (json.RawMessage, error) {
	query, args, err := squirrel.
		Select("dic.payload_json").
		From(dailyInsightsCacheTable).
		Where(squirrel.Eq{"dic.date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.scanPayload(r.conn.QueryRow(ctx, query, args...))
}

func (r *insightCacheRepository) SaveDaily(ctx context.Context, date string, payload json.RawMessage) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("daily_insights_cache").
		Columns("id", "date", "payload_json").
		Values(uuid.NewString(), date, []byte(payload)).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				payload_json = EXCLUDED.payload_json,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	return r.exec(ctx, query, args)
}

func (r *insightCacheRepository) GetWeekly(ctx context.Context, from, to string) (json.RawMessage, error) {
	query, args, err := squirrel.
		Select("wic.payload_json").
		From(weeklyInsightsCacheTable).
		Where(squirrel.Eq{"wic.period_from": from, "wic.period_to": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.scanPayload(r.conn.QueryRow(ctx, query, args...))
}

func (r *insightCacheRepository) SaveWeekly(ctx context.Context, from, to string, payload json.RawMessage) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("weekly_insights_cache").
		Columns("id", "period_from", "period_to", "payload_json").
		Values(uuid.NewString(), from, to, []byte(payload)).
		Suffix(`
			ON CONFLICT (period_from, period_to) DO UPDATE SET
				payload_json = EXCLUDED.payload_json,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	return r.exec(ctx, query, args)
}

func (r *insightCacheRepository) scanPayload(row *sql.Row) (json.RawMessage, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning insight payload: %w", err)
	}
	return json.RawMessage(payload), nil
}

func (r *insightCacheRepository) exec(ctx context.Context, query string, args []interface{}) error {
	_, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}
