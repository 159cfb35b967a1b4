package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/model"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store"
)

var _ store.EventStore = (*EventStore)(nil)

type EventStore struct {
	pool *pgxpool.Pool
}

func NewEventStore(pool *pgxpool.Pool) *EventStore {
	return &EventStore{pool: pool}
}

const eventCols = `id, date, time, title, channel, platform, notes, created_by, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Date, &e.Time, &e.Title, &e.Channel, &e.Platform, &e.Notes, &e.CreatedBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventStore) Create(ctx context.Context, in model.EventInput) (*model.Event, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO events (date, time, title, channel, platform, notes, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+eventCols,
		in.Date, in.Time, in.Title, in.Channel, in.Platform, in.Notes, in.CreatedBy,
	)
	e, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

func (s *EventStore) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+eventCols+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *EventStore) ListRange(ctx context.Context, start, end string) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+eventCols+` FROM events
		 WHERE date >= $1 AND date <= $2
		 ORDER BY date ASC, time ASC, id ASC`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (s *EventStore) Update(ctx context.Context, id int64, in model.EventInput) (*model.Event, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE events
		 SET date = $1, time = $2, title = $3, channel = $4, platform = $5, notes = $6
		 WHERE id = $7
		 RETURNING `+eventCols,
		in.Date, in.Time, in.Title, in.Channel, in.Platform, in.Notes, id,
	)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (s *EventStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
