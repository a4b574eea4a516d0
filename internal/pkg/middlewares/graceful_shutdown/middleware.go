package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware rejects new requests with 503 once shutdown has begun.
// ongoingCtx is the BaseContext of the server; it is cancelled after the
// drain delay, so in-flight requests are unaffected.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
