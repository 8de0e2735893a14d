package message

import (
	"context"
	"time"
)

// Repository defines the persistence operations for Message aggregates.
//
// It is implemented by infrastructure layers (e.g. GORM, sqlc, etc.)
// while the domain and service layers depend only on this interface.
//
// Range parameters are UTC dates truncated to midnight; start is inclusive
// and end is inclusive of the whole calendar day. Every read returns the
// requested page together with the total number of matching rows, computed
// in the same transaction as the page fetch.
type Repository interface {
	// Save persists a new message and returns the stored entity with
	// its server-assigned ID and CreatedAt populated.
	Save(ctx context.Context, m *Message) (*Message, error)

	// FindByUser returns the user's messages with created_at in
	// [start, end], ordered by created_at ascending.
	FindByUser(ctx context.Context, userID string, start, end time.Time, limit, offset int) ([]*Message, int64, error)

	// FindByDay returns all messages created on the given day,
	// across users.
	FindByDay(ctx context.Context, day time.Time, limit, offset int) ([]*Message, int64, error)

	// FindByPeriod returns all messages with created_at in [start, end],
	// across users.
	FindByPeriod(ctx context.Context, start, end time.Time, limit, offset int) ([]*Message, int64, error)

	// DeleteByUser removes every message belonging to userID and
	// reports how many rows were deleted. Deleting a user with no
	// messages is not an error and reports zero.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
