package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Correlation header names. Values are opaque pass-through identifiers:
// the service never interprets them, it only carries them for log tracing.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderClientID  = "X-Client-ID"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	clientIDKey
)

// Correlation extracts the correlation headers from each request,
// generating short IDs when the caller did not supply them, and echoes
// them back on the response so clients can correlate.
func Correlation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = shortID()
			}
			clientID := r.Header.Get(HeaderClientID)
			if clientID == "" {
				clientID = shortID()
			}

			w.Header().Set(HeaderRequestID, requestID)
			w.Header().Set(HeaderClientID, clientID)

			ctx := context.WithValue(r.Context(), requestIDKey, requestID)
			ctx = context.WithValue(ctx, clientIDKey, clientID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestID returns the correlation request ID bound to ctx, if any.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// ClientID returns the correlation client ID bound to ctx, if any.
func ClientID(ctx context.Context) string {
	v, _ := ctx.Value(clientIDKey).(string)
	return v
}

func shortID() string {
	return uuid.NewString()[:8]
}
