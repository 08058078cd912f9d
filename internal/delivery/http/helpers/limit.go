package helpers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"interviewpass/internal/domain"
)

// ParseLimit reads the limit query parameter. Missing, non-numeric and non-positive
// values fall back to domain.DefaultInterviewLimit.
func ParseLimit(r *http.Request) int {
	if s := strings.TrimSpace(r.URL.Query().Get("limit")); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return domain.NormalizeLimit(v)
		}
	}
	return domain.DefaultInterviewLimit
}

// SafeCallbackPath returns raw when it is a same-origin absolute path, and fallback otherwise.
// Absolute URLs and protocol-relative paths ("//host") are rejected to avoid open redirects.
func SafeCallbackPath(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return raw
}
