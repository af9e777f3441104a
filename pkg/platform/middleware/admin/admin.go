package admin

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"cora/pkg/requestcontext"
)

// KeyHeader carries the administrative API key for destructive operations.
const KeyHeader = "X-Admin-Key"

// writeJSONError mirrors the auth middleware envelope.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireAdminKey guards administrative routes with a bcrypt-hashed shared
// key. Only the hash is configured; the plaintext key never touches disk.
func RequireAdminKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(KeyHeader)
			if key == "" {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin access denied - missing key",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing admin key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin access denied - invalid key",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
