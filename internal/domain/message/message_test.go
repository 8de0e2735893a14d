package message

import (
	"strings"
	"testing"

	"github.com/oggyb/chat-archive/internal/apperr"
)

func TestNew_ValidDraft(t *testing.T) {
	m, err := New("jdoe", "John Doe", "Hello?", "Hi!")
	if err != nil {
		t.Fatalf("expected valid draft, got error: %v", err)
	}

	if m.UserID != "jdoe" || m.Name != "John Doe" {
		t.Fatalf("unexpected identity fields: %+v", m)
	}
	if m.Question != "Hello?" || m.Answer != "Hi!" {
		t.Fatalf("unexpected payload fields: %+v", m)
	}

	// ID and CreatedAt belong to the storage layer, not the constructor.
	if !m.CreatedAt.IsZero() {
		t.Fatalf("expected zero CreatedAt before insert, got %v", m.CreatedAt)
	}
}

func TestNew_TrimsWhitespace(t *testing.T) {
	m, err := New("  jdoe ", " John Doe ", " Hello? ", " Hi! ")
	if err != nil {
		t.Fatalf("expected valid draft, got error: %v", err)
	}
	if m.UserID != "jdoe" || m.Name != "John Doe" || m.Question != "Hello?" || m.Answer != "Hi!" {
		t.Fatalf("expected trimmed fields, got %+v", m)
	}
}

func TestNew_RejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name   string
		userID string
		dname  string
		q, a   string
		field  string
	}{
		{"empty user_id", "", "John", "q", "a", "user_id"},
		{"blank user_id", "   ", "John", "q", "a", "user_id"},
		{"empty name", "jdoe", "", "q", "a", "name"},
		{"empty question", "jdoe", "John", "", "a", "question"},
		{"empty answer", "jdoe", "John", "q", "", "answer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.userID, tc.dname, tc.q, tc.a)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if !strings.HasPrefix(err.Error(), tc.field+":") {
				t.Fatalf("expected error on field %q, got %q", tc.field, err.Error())
			}
		})
	}
}

func TestNew_RejectsOverlongFields(t *testing.T) {
	long := strings.Repeat("x", MaxIdentifierLength+1)
	if _, err := New(long, "John", "q", "a"); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for overlong user_id, got %v", err)
	}

	longText := strings.Repeat("x", MaxTextLength+1)
	if _, err := New("jdoe", "John", longText, "a"); !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for overlong question, got %v", err)
	}
}
