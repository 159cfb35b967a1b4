package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/model"
	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/store"
)

var _ store.EventStore = (*EventStore)(nil)

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

const eventCols = `id, date, time, title, channel, platform, notes, created_by, created_at`

func scanEvent(scanner interface{ Scan(...any) error }) (*model.Event, error) {
	var e model.Event
	var channel, platform, notes, createdBy sql.NullString
	err := scanner.Scan(&e.ID, &e.Date, &e.Time, &e.Title, &channel, &platform, &notes, &createdBy, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if channel.Valid {
		e.Channel = &channel.String
	}
	if platform.Valid {
		e.Platform = &platform.String
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	if createdBy.Valid {
		e.CreatedBy = &createdBy.String
	}
	return &e, nil
}

func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (s *EventStore) Create(ctx context.Context, in model.EventInput) (*model.Event, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO events (date, time, title, channel, platform, notes, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Date, in.Time, in.Title, nullStr(in.Channel), nullStr(in.Platform), nullStr(in.Notes), nullStr(in.CreatedBy),
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *EventStore) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventCols+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *EventStore) ListRange(ctx context.Context, start, end string) ([]model.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventCols+` FROM events
		 WHERE date >= ? AND date <= ?
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
	result, err := s.db.ExecContext(ctx,
		`UPDATE events
		 SET date = ?, time = ?, title = ?, channel = ?, platform = ?, notes = ?
		 WHERE id = ?`,
		in.Date, in.Time, in.Title, nullStr(in.Channel), nullStr(in.Platform), nullStr(in.Notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, store.ErrNotFound
	}

	return s.GetByID(ctx, id)
}

func (s *EventStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
