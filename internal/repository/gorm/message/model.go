package messagegorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageModel is the GORM persistence model for archived chat messages.
// It maps directly to the "chat_messages" table in Postgres.
//
// Rows are append-only: there is no updated-at column and no soft delete.
// The composite indexes serve the ranged queries (by user, by day, by
// period) that always order on created_at with id as tiebreaker.
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"size:255;not null;index:ix_chat_messages_user_created,priority:1"`
	Name      string    `gorm:"size:255;not null"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:ix_chat_messages_created;index:ix_chat_messages_user_created,priority:2"`
}

// TableName overrides the default table name used by GORM.
func (MessageModel) TableName() string {
	return "chat_messages"
}

// BeforeCreate assigns the server-side fields: a fresh UUID and the
// creation timestamp in UTC. The domain mapper never carries either over,
// so rows coming through the repository always get them here.
func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
