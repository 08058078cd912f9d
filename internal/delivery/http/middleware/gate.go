package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// DefaultProtectedPrefixes are the path prefixes that require a session token.
var DefaultProtectedPrefixes = []string{"/dashboard", "/interview", "/api/interviews"}

// Gate redirects requests under a protected prefix to signInPath when they carry no
// session token. The original path is passed along as callbackUrl so sign-in can return to it.
// Token validity is not checked here; RequireSession does that on the handlers it wraps.
func Gate(protected []string, signInPath string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isProtected(protected, r.URL.Path) || TokenFromRequest(r) != "" {
			next.ServeHTTP(w, r)
			return
		}
		q := url.Values{"callbackUrl": {r.URL.Path}}
		http.Redirect(w, r, signInPath+"?"+q.Encode(), http.StatusTemporaryRedirect)
	})
}

func isProtected(prefixes []string, path string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
