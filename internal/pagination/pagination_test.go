package pagination

import (
	"testing"

	"github.com/oggyb/chat-archive/internal/apperr"
)

func TestNew_ValidWindows(t *testing.T) {
	cases := []struct {
		size, number int
		wantOffset   int
	}{
		{1, 0, 0},
		{50, 0, 0},
		{100, 0, 0},
		{10, 3, 30},
		{100, 7, 700},
	}

	for _, tc := range cases {
		p, err := New(tc.size, tc.number)
		if err != nil {
			t.Fatalf("New(%d, %d): unexpected error: %v", tc.size, tc.number, err)
		}
		if p.Offset() != tc.wantOffset {
			t.Fatalf("New(%d, %d): offset = %d, want %d", tc.size, tc.number, p.Offset(), tc.wantOffset)
		}
	}
}

func TestNew_RejectsOutOfBounds(t *testing.T) {
	cases := []struct {
		name         string
		size, number int
	}{
		{"size zero", 0, 0},
		{"size negative", -1, 0},
		{"size over max", 101, 0},
		{"page negative", 50, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.size, tc.number); !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.Size != DefaultPageSize || p.Number != 0 {
		t.Fatalf("unexpected default window: %+v", p)
	}
}
