package messagegorm

import (
	"context"
	"time"

	"github.com/oggyb/chat-archive/internal/apperr"
	"github.com/oggyb/chat-archive/internal/db"
	"github.com/oggyb/chat-archive/internal/domain/message"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of the message.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a message repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Save inserts a new message row and returns the stored entity with the
// server-assigned ID and CreatedAt.
func (r *Repository) Save(ctx context.Context, msg *message.Message) (*message.Message, error) {
	dbModel := fromDomain(msg)

	if err := r.db.WithContext(ctx).Create(dbModel).Error; err != nil {
		return nil, apperr.Storage("save message", err)
	}

	return toDomain(dbModel), nil
}

// FindByUser returns the user's messages with created_at inside the given
// date range, oldest first, plus the total number of matching rows.
func (r *Repository) FindByUser(ctx context.Context, userID string, start, end time.Time, limit, offset int) ([]*message.Message, int64, error) {
	startAt, endBefore := dayBounds(start, end)

	items, total, err := r.findPage(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID).
			Where("created_at >= ? AND created_at < ?", startAt, endBefore)
	}, limit, offset)
	if err != nil {
		return nil, 0, apperr.Storage("find messages by user", err)
	}

	return items, total, nil
}

// FindByDay returns all messages created on the given calendar day,
// across users.
func (r *Repository) FindByDay(ctx context.Context, day time.Time, limit, offset int) ([]*message.Message, int64, error) {
	startAt, endBefore := dayBounds(day, day)

	items, total, err := r.findPage(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("created_at >= ? AND created_at < ?", startAt, endBefore)
	}, limit, offset)
	if err != nil {
		return nil, 0, apperr.Storage("find messages by day", err)
	}

	return items, total, nil
}

// FindByPeriod returns all messages inside the given date range, across users.
func (r *Repository) FindByPeriod(ctx context.Context, start, end time.Time, limit, offset int) ([]*message.Message, int64, error) {
	startAt, endBefore := dayBounds(start, end)

	items, total, err := r.findPage(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("created_at >= ? AND created_at < ?", startAt, endBefore)
	}, limit, offset)
	if err != nil {
		return nil, 0, apperr.Storage("find messages by period", err)
	}

	return items, total, nil
}

// DeleteByUser removes every row for userID in a single statement and
// reports the number of rows deleted. Zero rows is a successful outcome.
func (r *Repository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&MessageModel{})

	if res.Error != nil {
		return 0, apperr.Storage("delete messages by user", res.Error)
	}

	return res.RowsAffected, nil
}

// findPage runs the total count and the page fetch inside one transaction
// so the reported total and the returned rows come from a consistent view.
func (r *Repository) findPage(ctx context.Context, filter func(*gorm.DB) *gorm.DB, limit, offset int) ([]*message.Message, int64, error) {
	var models []MessageModel
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := filter(tx.Model(&MessageModel{}))

		if err := base.Count(&total).Error; err != nil {
			return err
		}

		return base.
			Order("created_at ASC, id ASC").
			Limit(limit).
			Offset(offset).
			Find(&models).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

// dayBounds converts date-granular range endpoints into a half-open
// timestamp interval. The end date is treated as inclusive of the whole
// calendar day, so the exclusive upper bound is end plus 24 hours.
func dayBounds(start, end time.Time) (time.Time, time.Time) {
	startAt := truncateToDay(start)
	endBefore := truncateToDay(end).AddDate(0, 0, 1)
	return startAt, endBefore
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// compile-time interface check
var _ message.Repository = (*Repository)(nil)
