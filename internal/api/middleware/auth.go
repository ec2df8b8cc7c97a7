package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/soomtochukwu/XLMate/internal/api/apierr"
	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/services/keyauth"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Auth creates authentication middleware. It resolves the bearer
// credential to a verified caller identity and puts it in the request
// context. Whether that identity holds the admin or server role is
// decided inside the registry service, not here.
func Auth(authService *keyauth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := extractCredential(r)
			if credential == "" {
				apierr.WriteError(w, apierr.NewUnauthenticatedError())
				return
			}

			identity, err := authService.Authenticate(credential)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractCredential extracts the bearer credential from the request
func extractCredential(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetIdentity returns the authenticated identity from the request context
func GetIdentity(ctx context.Context) model.Identity {
	identity, _ := ctx.Value(identityContextKey).(model.Identity)
	return identity
}

// MustGetIdentity returns the authenticated identity or panics
func MustGetIdentity(ctx context.Context) model.Identity {
	identity := GetIdentity(ctx)
	if identity == "" {
		panic("no identity in context - auth middleware not applied?")
	}
	return identity
}
