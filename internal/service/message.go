package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/oggyb/chat-archive/internal/apperr"
	"github.com/oggyb/chat-archive/internal/cache"
	domain "github.com/oggyb/chat-archive/internal/domain/message"
	"github.com/oggyb/chat-archive/internal/pagination"
	"github.com/oggyb/chat-archive/internal/webhook"
)

// PageResult is the envelope every read use case returns: one bounded
// page of messages plus the pre-pagination total.
type PageResult struct {
	Items []*domain.Message
	Total int64
	Page  pagination.Page
}

// MessageService exposes the application-level operations over the
// message archive. All validation happens here, before any repository
// access; the repository is never reached with invalid input.
type MessageService interface {
	Store(ctx context.Context, userID, name, question, answer string) (*domain.Message, error)
	GetByUser(ctx context.Context, userID string, start, end time.Time, page pagination.Page) (*PageResult, error)
	GetByDay(ctx context.Context, day time.Time, page pagination.Page) (*PageResult, error)
	GetByPeriod(ctx context.Context, start, end time.Time, page pagination.Page) (*PageResult, error)
	DeleteUser(ctx context.Context, userID string) (int64, error)
	RefreshDailyStats(ctx context.Context) error
}

type messageService struct {
	repo     domain.Repository
	cache    cache.Cache
	notifier webhook.Notifier
}

// NewMessageService creates a message service with the given dependencies.
// The cache and notifier are optional; when present they are used on a
// best-effort basis and never fail the triggering operation.
func NewMessageService(repo domain.Repository, c cache.Cache, notifier webhook.Notifier) MessageService {
	return &messageService{
		repo:     repo,
		cache:    c,
		notifier: notifier,
	}
}

// Store validates the draft and persists it. The returned message carries
// the server-assigned ID and creation timestamp.
func (s *messageService) Store(ctx context.Context, userID, name, question, answer string) (*domain.Message, error) {
	draft, err := domain.New(userID, name, question, answer)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Save(ctx, draft)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		key := cache.UserMessages.Key(stored.UserID)
		if _, cErr := s.cache.Incr(ctx, key); cErr != nil {
			log.Printf("[Service] Failed to bump message counter for %s: %v", stored.UserID, cErr)
		}
	}

	return stored, nil
}

// GetByUser returns one page of a user's messages within the date range.
func (s *messageService) GetByUser(ctx context.Context, userID string, start, end time.Time, page pagination.Page) (*PageResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Validation("user_id", "must not be empty")
	}
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	items, total, err := s.repo.FindByUser(ctx, userID, start, end, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	return &PageResult{Items: items, Total: total, Page: page}, nil
}

// GetByDay returns one page of all messages archived on the given day.
func (s *messageService) GetByDay(ctx context.Context, day time.Time, page pagination.Page) (*PageResult, error) {
	items, total, err := s.repo.FindByDay(ctx, day, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	return &PageResult{Items: items, Total: total, Page: page}, nil
}

// GetByPeriod returns one page of all messages within the date range,
// across users.
func (s *messageService) GetByPeriod(ctx context.Context, start, end time.Time, page pagination.Page) (*PageResult, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	items, total, err := s.repo.FindByPeriod(ctx, start, end, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	return &PageResult{Items: items, Total: total, Page: page}, nil
}

// DeleteUser removes every message for the given user and reports how
// many rows were deleted. Deleting a user with no messages succeeds with
// zero; the operation is idempotent.
func (s *messageService) DeleteUser(ctx context.Context, userID string) (int64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, apperr.Validation("user_id", "must not be empty")
	}

	deleted, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		key := cache.UserMessages.Key(userID)
		if cErr := s.cache.Del(ctx, key); cErr != nil {
			log.Printf("[Service] Failed to drop message counter for %s: %v", userID, cErr)
		}
	}

	// Best-effort compliance notification; the deletion has already
	// committed and is never rolled back for a failed notice.
	if s.notifier != nil {
		if nErr := s.notifier.NotifyErasure(ctx, userID, deleted); nErr != nil {
			log.Printf("[Service] Failed to send erasure notice for %s: %v", userID, nErr)
		}
	}

	return deleted, nil
}

// RefreshDailyStats warms the cached total of messages archived today.
// The scheduler invokes it on a fixed interval.
func (s *messageService) RefreshDailyStats(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	today := time.Now().UTC()
	_, total, err := s.repo.FindByDay(ctx, today, 1, 0)
	if err != nil {
		return fmt.Errorf("failed to count today's messages: %w", err)
	}

	key := cache.DailyTotal.Key(today.Format("2006-01-02"))
	if err := s.cache.Set(ctx, key, strconv.FormatInt(total, 10), 10*time.Minute); err != nil {
		return fmt.Errorf("failed to cache daily total: %w", err)
	}

	return nil
}

// checkRange enforces the shared date-range rule for ranged reads.
func checkRange(start, end time.Time) error {
	if start.After(end) {
		return apperr.Validation("start", "must not be after 'end'")
	}
	return nil
}
