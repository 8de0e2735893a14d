// Package pagination implements the page contract shared by every read
// endpoint: a bounded page size and a zero-indexed page number, translated
// into an offset/limit window.
package pagination

import (
	"github.com/oggyb/chat-archive/internal/apperr"
)

const (
	// DefaultPageSize is applied when the caller does not ask for one.
	DefaultPageSize = 50
	// MinPageSize and MaxPageSize bound page_size. Out-of-bounds values
	// are rejected, not clamped, to keep the contract strict.
	MinPageSize = 1
	MaxPageSize = 100
)

// Page is a validated pagination window.
type Page struct {
	Size   int
	Number int
}

// Default returns the window used when the caller supplies no
// pagination parameters: page 0, DefaultPageSize items.
func Default() Page {
	return Page{Size: DefaultPageSize, Number: 0}
}

// New validates the supplied page size and number.
func New(size, number int) (Page, error) {
	if size < MinPageSize || size > MaxPageSize {
		return Page{}, apperr.Validation("page_size", "must be between 1 and 100")
	}
	if number < 0 {
		return Page{}, apperr.Validation("page", "must not be negative")
	}
	return Page{Size: size, Number: number}, nil
}

// Offset is the number of rows to skip before this page starts.
func (p Page) Offset() int {
	return p.Number * p.Size
}
