// Package webhook exposes a minimal interface for notifying an external
// compliance endpoint about user-data erasures and checking its health.
package webhook

import "context"

// Notifier is the contract for the erasure-notification endpoint.
//
// Notifications are best-effort: the service logs a failed notification
// but never rolls back or fails the deletion because of it.
type Notifier interface {
	// NotifyErasure reports that all messages for userID were deleted,
	// with the number of rows removed.
	NotifyErasure(ctx context.Context, userID string, deleted int64) error

	// Health checks whether the notification endpoint is reachable.
	Health(ctx context.Context) error
}
