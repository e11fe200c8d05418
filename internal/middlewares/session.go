package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/quizo-backend/internal/logger"
	"github.com/sbilibin2017/quizo-backend/internal/sessions"
)

// SessionResolver resolves a session token to a user id.
type SessionResolver interface {
	Lookup(ctx context.Context, token string) (int64, error)
}

// SessionMiddleware resolves the session cookie to a user id and
// attaches it to the request context. Requests without a valid session
// pass through unauthenticated; the quiz endpoints do not require one.
func SessionMiddleware(store SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessions.CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := store.Lookup(r.Context(), cookie.Value)
			if err != nil {
				if err != sessions.ErrSessionNotFound {
					logger.Log.Errorw("session lookup failed", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := setUserIDToContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// setUserIDToContext stores the authenticated user id in the context.
func setUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the
// context. Returns false when the request carried no valid session.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
