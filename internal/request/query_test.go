package request

import (
	"testing"
	"time"

	"github.com/oggyb/chat-archive/internal/apperr"
	"github.com/oggyb/chat-archive/internal/pagination"
)

func TestResolveMessagesQuery_ByDay(t *testing.T) {
	q, err := ResolveMessagesQuery(QueryParams{Day: "2025-06-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Mode != ModeByDay {
		t.Fatalf("mode = %v, want ModeByDay", q.Mode)
	}
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !q.Day.Equal(want) {
		t.Fatalf("day = %v, want %v", q.Day, want)
	}
	if q.Page != pagination.Default() {
		t.Fatalf("expected default pagination, got %+v", q.Page)
	}
}

func TestResolveMessagesQuery_ByPeriod(t *testing.T) {
	q, err := ResolveMessagesQuery(QueryParams{
		Start:    "2025-06-01",
		End:      "2025-06-30",
		PageSize: "25",
		Page:     "2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Mode != ModeByPeriod {
		t.Fatalf("mode = %v, want ModeByPeriod", q.Mode)
	}
	if q.Page.Size != 25 || q.Page.Number != 2 {
		t.Fatalf("unexpected pagination: %+v", q.Page)
	}
}

func TestResolveMessagesQuery_ByUser(t *testing.T) {
	q, err := ResolveMessagesQuery(QueryParams{
		UserID: "jdoe",
		Start:  "2025-06-01",
		End:    "2025-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Mode != ModeByUser || q.UserID != "jdoe" {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestResolveMessagesQuery_RejectsAmbiguousOrIncompleteShapes(t *testing.T) {
	cases := []struct {
		name string
		p    QueryParams
	}{
		{"nothing supplied", QueryParams{}},
		{"day combined with period", QueryParams{Day: "2025-06-15", Start: "2025-06-01", End: "2025-06-30"}},
		{"day combined with start only", QueryParams{Day: "2025-06-15", Start: "2025-06-01"}},
		{"start without end", QueryParams{Start: "2025-06-01"}},
		{"end without start", QueryParams{End: "2025-06-30"}},
		{"user with day", QueryParams{UserID: "jdoe", Day: "2025-06-15"}},
		{"user without range", QueryParams{UserID: "jdoe"}},
		{"user with start only", QueryParams{UserID: "jdoe", Start: "2025-06-01"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ResolveMessagesQuery(tc.p); !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestResolveMessagesQuery_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		p    QueryParams
	}{
		{"malformed day", QueryParams{Day: "15/06/2025"}},
		{"malformed start", QueryParams{Start: "junk", End: "2025-06-30"}},
		{"page_size not a number", QueryParams{Day: "2025-06-15", PageSize: "lots"}},
		{"page_size zero", QueryParams{Day: "2025-06-15", PageSize: "0"}},
		{"page_size over max", QueryParams{Day: "2025-06-15", PageSize: "101"}},
		{"negative page", QueryParams{Day: "2025-06-15", Page: "-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ResolveMessagesQuery(tc.p); !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}
