package middleware

import (
	"net/http"
	"strings"
)

// SessionCookieName is the cookie that carries the sealed session token for browser clients.
const SessionCookieName = "session_token"

// TokenFromRequest returns the session token from the Authorization Bearer header,
// falling back to the session cookie. It returns "" when neither is present.
func TokenFromRequest(r *http.Request) string {
	const prefix = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, prefix) {
		if token := strings.TrimSpace(auth[len(prefix):]); token != "" {
			return token
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}
