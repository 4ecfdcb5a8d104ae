package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/BookingHub/internal/api/handlers"
	"github.com/m04kA/BookingHub/internal/service/auth"
	authModels "github.com/m04kA/BookingHub/internal/service/auth/models"
)

type identityKey struct{}

// WithIdentity кладёт пользователя в контекст
func WithIdentity(ctx context.Context, id *authModels.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentity достаёт пользователя из контекста
func GetIdentity(ctx context.Context) (*authModels.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*authModels.Identity)
	return id, ok && id != nil
}

// GetUserID достаёт ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := GetIdentity(ctx)
	if !ok || id.ID == "" {
		return "", false
	}
	return id.ID, true
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Auth пропускает только запросы с действующим Bearer токеном
func Auth(authenticator Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}

			identity, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenRevoked):
					logger.Warn("%s %s - rejected token: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, "invalid or expired token")
				default:
					logger.Error("%s %s - failed to authenticate: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin пропускает только администраторов, ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, "authentication required")
			return
		}
		if !identity.IsAdmin {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
