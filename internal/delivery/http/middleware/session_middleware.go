package middleware

import (
	"context"
	"net/http"

	"medimatch/internal/delivery/dto"
	"medimatch/pkg/response"
)

// SessionCookieName is the cookie holding the opaque session id.
const SessionCookieName = "session"

type contextKey string

const (
	CurrentUserKey contextKey = "current_user"
	SessionIDKey   contextKey = "session_id"
)

// SessionResolver resolves a session id to its owner, nil when not active.
type SessionResolver interface {
	GetCurrentUser(ctx context.Context, token string) (*dto.CurrentUser, error)
}

type SessionMiddleware struct {
	resolver SessionResolver
}

func NewSessionMiddleware(resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{
		resolver: resolver,
	}
}

func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		user, err := m.resolver.GetCurrentUser(r.Context(), cookie.Value)
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if user == nil {
			response.Unauthorized(w, "Session is invalid or expired")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), user, cookie.Value)))
	})
}

// WithCurrentUser stores the authenticated user and its session id in ctx
func WithCurrentUser(ctx context.Context, user *dto.CurrentUser, sessionID string) context.Context {
	ctx = context.WithValue(ctx, CurrentUserKey, user)
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetCurrentUserFromContext extracts the authenticated user from context
func GetCurrentUserFromContext(ctx context.Context) (*dto.CurrentUser, bool) {
	user, ok := ctx.Value(CurrentUserKey).(*dto.CurrentUser)
	return user, ok && user != nil
}

// GetSessionIDFromContext extracts the session id from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
