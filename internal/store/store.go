// Package store defines the persistence interfaces shared by the SQLite and
// PostgreSQL backends.
package store

import (
	"context"
	"errors"

	"github.com/juanignaciozaffalon-ops/calendariowfg/internal/model"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist.
var ErrNotFound = errors.New("not found")

type EventStore interface {
	// ListRange returns events with start <= date <= end, ordered by
	// (date, time, id) ascending. An empty range yields an empty slice.
	ListRange(ctx context.Context, start, end string) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, in model.EventInput) (*model.Event, error)
	Update(ctx context.Context, id int64, in model.EventInput) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, email, passwordHash, role string) (*model.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID int64) (*model.Session, error)
	// GetByToken returns ErrNotFound for unknown or expired tokens.
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
