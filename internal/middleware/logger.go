package middleware

import (
	"log"
	"net/http"
	"time"
)

// RequestLogger logs basic information about each HTTP request,
// including method, path, correlation IDs and how long it took to serve.
// It expects to run inside the Correlation middleware.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.Printf("%s %s %s request_id=%s client_id=%s [%s]",
				r.Method, r.URL.Path, r.RemoteAddr,
				RequestID(r.Context()), ClientID(r.Context()),
				time.Since(start))
		})
	}
}
