package response

import (
	"time"

	domain "github.com/oggyb/chat-archive/internal/domain/message"
	"github.com/oggyb/chat-archive/internal/pagination"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type SchedulerControlPayload struct {
	Message string `json:"message"`
}

type SchedulerControlResponse struct {
	Success   bool                    `json:"success"`
	Data      SchedulerControlPayload `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

// StoredMessagePayload is returned after archiving a message: only the
// server-assigned fields, the caller already knows the rest.
type StoredMessagePayload struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type StoredMessageResponse struct {
	Success   bool                 `json:"success"`
	Data      StoredMessagePayload `json:"data"`
	Timestamp string               `json:"timestamp"`
}

// MessageItemDTO is the public representation of an archived message in
// query responses. It deliberately omits user_id and name: query results
// expose only the exchange itself and its timestamp.
type MessageItemDTO struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessagesPagePayload is the page envelope of every read endpoint.
type MessagesPagePayload struct {
	Items    []MessageItemDTO `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

type MessagesPageResponse struct {
	Success   bool                `json:"success"`
	Data      MessagesPagePayload `json:"data"`
	Timestamp string              `json:"timestamp"`
}

// DeletedUserPayload reports how many messages a user deletion removed.
type DeletedUserPayload struct {
	UserID  string `json:"userId"`
	Deleted int64  `json:"deleted"`
}

type DeletedUserResponse struct {
	Success   bool               `json:"success"`
	Data      DeletedUserPayload `json:"data"`
	Timestamp string             `json:"timestamp"`
}

// NewMessagesPage builds the page payload from domain messages and the
// requested window.
func NewMessagesPage(msgs []*domain.Message, total int64, page pagination.Page) MessagesPagePayload {
	items := make([]MessageItemDTO, len(msgs))
	for i, m := range msgs {
		items[i] = MessageItemDTO{
			Question:  m.Question,
			Answer:    m.Answer,
			CreatedAt: m.CreatedAt,
		}
	}
	return MessagesPagePayload{
		Items:    items,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	}
}
