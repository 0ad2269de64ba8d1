package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// userRecorder lets handlers deeper in the chain report the authenticated user.
type userRecorder struct {
	userID string
}

func LoggerMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			rec := &userRecorder{}

			next.ServeHTTP(rw, r.WithContext(withUserRecorder(r.Context(), rec)))

			userID := rec.userID
			if userID == "" {
				userID = "anonymous"
			}

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logger.LogAttrs(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
				slog.String("user", userID),
			)
		})
	}
}

type recorderKey struct{}

func withUserRecorder(ctx context.Context, rec *userRecorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, rec)
}

func recordUser(ctx context.Context, userID string) {
	if rec, ok := ctx.Value(recorderKey{}).(*userRecorder); ok {
		rec.userID = userID
	}
}
