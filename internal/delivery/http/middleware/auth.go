package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "interviewpass/internal/delivery/http/helpers"
	"interviewpass/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// SetSession returns a context carrying the verified session. Used by auth middleware.
func SetSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the verified session from the context, if present.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

// RequireSession returns a wrapper that verifies the session token and stores the session
// in the request context. A missing or invalid token gets a 401 and next is not called.
func RequireSession(verifier domain.SessionVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing session token")
				return
			}
			session, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired session")
				return
			}
			if session.AccessToken == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "session has no calendar access token")
				return
			}
			next(w, r.WithContext(SetSession(r.Context(), session)))
		}
	}
}
