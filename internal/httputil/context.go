package httputil

import (
	"context"
	"net/http"
	"strings"
)

// SessionHeader carries the caller's deck session id
const SessionHeader = "X-Session-ID"

// Context key type to avoid collisions
type contextKey string

const (
	sessionIDKey contextKey = "sessionID"
)

// WithSessionID adds sessionID to the request context
func WithSessionID(r *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
	return r.WithContext(ctx)
}

// GetSessionID returns the session id set by WithSessionID, falling back to the
// X-Session-ID header and then the "session" query parameter. Empty means the
// default session.
func GetSessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionIDKey).(string); ok && id != "" {
		return id
	}
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(r.URL.Query().Get("session"))
}
