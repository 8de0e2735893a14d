// Package message holds the domain model and invariants for archived
// chat messages.
package message

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oggyb/chat-archive/internal/apperr"
)

const (
	// MaxIdentifierLength bounds user_id and name.
	MaxIdentifierLength = 255
	// MaxTextLength bounds question and answer payloads.
	MaxTextLength = 10000
)

// Message is one archived question/answer exchange. It is immutable once
// stored: the only mutation the system allows is per-user bulk deletion.
//
// ID and CreatedAt are assigned by the storage layer at insert time. A
// Message built by New carries zero values for both until it is saved.
type Message struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	Question  string
	Answer    string
	CreatedAt time.Time
}

// New constructs an unpersisted message draft and enforces the domain
// rules: every field non-empty after trimming and within length bounds.
// It performs no I/O.
func New(userID, name, question, answer string) (*Message, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if userID == "" {
		return nil, apperr.Validation("user_id", "must not be empty")
	}
	if len(userID) > MaxIdentifierLength {
		return nil, apperr.Validation("user_id", "exceeds maximum length")
	}
	if name == "" {
		return nil, apperr.Validation("name", "must not be empty")
	}
	if len(name) > MaxIdentifierLength {
		return nil, apperr.Validation("name", "exceeds maximum length")
	}
	if question == "" {
		return nil, apperr.Validation("question", "must not be empty")
	}
	if len(question) > MaxTextLength {
		return nil, apperr.Validation("question", "exceeds maximum length")
	}
	if answer == "" {
		return nil, apperr.Validation("answer", "must not be empty")
	}
	if len(answer) > MaxTextLength {
		return nil, apperr.Validation("answer", "exceeds maximum length")
	}

	return &Message{
		UserID:   userID,
		Name:     name,
		Question: question,
		Answer:   answer,
	}, nil
}
