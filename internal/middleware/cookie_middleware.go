package middleware

import (
	"net/http"

	"notepad-ai/pkg/cookie"
)

// CookieMiddleware binds a cookie jar for the request/response pair to the
// request context. Repositories read and write state through it.
func CookieMiddleware(opts cookie.Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jar := cookie.NewJar(w, r, opts)
			next.ServeHTTP(w, r.WithContext(cookie.WithJar(r.Context(), jar)))
		})
	}
}
