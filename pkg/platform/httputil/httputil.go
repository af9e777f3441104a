// Package httputil centralizes JSON encoding and domain error translation so
// every handler returns the same envelopes.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "cora/pkg/domainerrors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON error envelope. error_description is omitted for
// internal errors so infrastructure details never leak to callers.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteError translates a domain error into the JSON error envelope. Errors
// that are not domain errors are treated as internal.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := ""

	var domainErr dErrors.Error
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message
	}
	if code == dErrors.CodeInternal {
		message = ""
	}

	WriteJSON(w, dErrors.ToHTTPStatus(code), errorBody{
		Error:            string(code),
		ErrorDescription: message,
	})
}

// DecodeAndPrepare decodes the request body into T, writing a bad_request
// envelope and logging on failure. The second return is false when the
// handler should stop.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "failed to decode request body",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return req, false
	}
	return req, true
}
