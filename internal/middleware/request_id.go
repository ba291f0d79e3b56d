package middleware

import (
	"context"
	"net/http"

	"github.com/segmentio/ksuid"
)

// RequestID tags every request with a ksuid, echoed back in X-Request-Id and
// attached to log lines by the request logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), "requestID", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id set by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value("requestID").(string)
	return id
}
