package middleware

import (
	"context"
	"net/http"
	"strings"

	"notepad-ai/internal/repository"
	"notepad-ai/pkg/cookie"
	"notepad-ai/pkg/jwt"
	"notepad-ai/pkg/response"
)

type contextKey string

const UserIDKey contextKey = "userID"

// AuthMiddleware accepts the authToken cookie or an Authorization bearer header.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				response.Unauthorized(w, "Not signed in")
				return
			}

			claims, err := jwt.ValidateToken(token, jwtSecret)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired session")
				return
			}

			recordUser(r.Context(), claims.UserID)
			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	if jar, ok := cookie.FromContext(r.Context()); ok {
		token, _ := jar.Get(repository.CookieAuthToken)
		return token
	}
	return ""
}

func GetUserID(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
