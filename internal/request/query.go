package request

import (
	"strconv"
	"time"

	"github.com/oggyb/chat-archive/internal/apperr"
	"github.com/oggyb/chat-archive/internal/pagination"
)

// DateLayout is the wire format for all date parameters.
const DateLayout = "2006-01-02"

// QueryMode selects which read use case a resolved query targets.
type QueryMode int

const (
	ModeByDay QueryMode = iota
	ModeByPeriod
	ModeByUser
)

// QueryParams carries the raw inputs of the shared read entry point before
// dispatch. All fields are optional strings exactly as received on the
// wire; ResolveMessagesQuery decides which combination is legal.
type QueryParams struct {
	UserID   string
	Day      string
	Start    string
	End      string
	PageSize string
	Page     string
}

// MessagesQuery is a validated, dispatched read request. Exactly one mode
// is set; the date fields relevant to that mode are parsed and in UTC.
type MessagesQuery struct {
	Mode   QueryMode
	UserID string
	Day    time.Time
	Start  time.Time
	End    time.Time
	Page   pagination.Page
}

// ResolveMessagesQuery maps raw query parameters onto exactly one of the
// three read modes:
//
//   - day present, start/end/user_id absent      -> ModeByDay
//   - start and end present, day/user_id absent  -> ModeByPeriod
//   - user_id present with start and end, no day -> ModeByUser
//
// Any other combination is ambiguous or incomplete and is rejected before
// any use case runs.
func ResolveMessagesQuery(p QueryParams) (MessagesQuery, error) {
	page, err := resolvePage(p.PageSize, p.Page)
	if err != nil {
		return MessagesQuery{}, err
	}

	q := MessagesQuery{Page: page}

	if p.UserID != "" {
		if p.Day != "" {
			return MessagesQuery{}, apperr.Validation("day", "cannot combine 'day' with a user query")
		}
		if p.Start == "" || p.End == "" {
			return MessagesQuery{}, apperr.Validation("start", "both 'start' and 'end' are required for a user query")
		}
		if q.Start, err = parseDate("start", p.Start); err != nil {
			return MessagesQuery{}, err
		}
		if q.End, err = parseDate("end", p.End); err != nil {
			return MessagesQuery{}, err
		}
		q.Mode = ModeByUser
		q.UserID = p.UserID
		return q, nil
	}

	if p.Day != "" {
		if p.Start != "" || p.End != "" {
			return MessagesQuery{}, apperr.Validation("day", "cannot combine 'day' with 'start'/'end' parameters")
		}
		if q.Day, err = parseDate("day", p.Day); err != nil {
			return MessagesQuery{}, err
		}
		q.Mode = ModeByDay
		return q, nil
	}

	if p.Start != "" && p.End != "" {
		if q.Start, err = parseDate("start", p.Start); err != nil {
			return MessagesQuery{}, err
		}
		if q.End, err = parseDate("end", p.End); err != nil {
			return MessagesQuery{}, err
		}
		q.Mode = ModeByPeriod
		return q, nil
	}

	if p.Start != "" || p.End != "" {
		return MessagesQuery{}, apperr.Validation("start", "both 'start' and 'end' are required for period filtering")
	}

	return MessagesQuery{}, apperr.Validation("query", "provide either 'day' or both 'start' and 'end' parameters")
}

func resolvePage(sizeStr, pageStr string) (pagination.Page, error) {
	size := pagination.DefaultPageSize
	number := 0

	if sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil {
			return pagination.Page{}, apperr.Validation("page_size", "must be an integer")
		}
		size = v
	}

	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			return pagination.Page{}, apperr.Validation("page", "must be an integer")
		}
		number = v
	}

	return pagination.New(size, number)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperr.Validation(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
