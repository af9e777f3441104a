package requesttime

import (
	"net/http"
	"time"

	"cora/pkg/requestcontext"
)

// RequestTime pins a single clock reading to the request context so every
// record created by one request carries the same timestamp.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
