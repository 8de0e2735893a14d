package messagegorm

import (
	"github.com/oggyb/chat-archive/internal/domain/message"
)

// toDomain maps a GORM MessageModel to a domain-level Message.
func toDomain(m *MessageModel) *message.Message {
	return &message.Message{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Question:  m.Question,
		Answer:    m.Answer,
		CreatedAt: m.CreatedAt,
	}
}

// toDomainMany maps a slice of MessageModel to a slice of domain Messages.
func toDomainMany(models []MessageModel) []*message.Message {
	out := make([]*message.Message, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

// fromDomain maps a domain-level Message to a GORM MessageModel.
// ID and CreatedAt are left for BeforeCreate to assign.
func fromDomain(d *message.Message) *MessageModel {
	return &MessageModel{
		UserID:   d.UserID,
		Name:     d.Name,
		Question: d.Question,
		Answer:   d.Answer,
	}
}
