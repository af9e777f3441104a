package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"cora/pkg/requestcontext"
)

// Header carries the correlation ID between services and back to the caller.
const Header = "X-Request-ID"

// RequestID assigns every request a correlation ID, honoring one supplied by
// the caller, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
