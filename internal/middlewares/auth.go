package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/treeseverywhere/api/internal/jwt"
	"github.com/treeseverywhere/api/internal/logger"
	"github.com/treeseverywhere/api/internal/models"
)

// Tokener extracts and parses bearer tokens.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenChecker reports whether a token has been revoked.
type TokenChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// UserGetter loads the authenticated user's row.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// userContextKey is an unexported type for keys in context.
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// resolveUser validates the token against the denylist and loads the
// user row it identifies.
func resolveUser(ctx context.Context, tokener Tokener, checker TokenChecker, users UserGetter, tokenString string) (*models.UserDB, error) {
	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := checker.IsRevoked(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, jwt.ErrTokenRevoked
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, jwt.ErrUnknownUser
	}
	return user, nil
}

// AuthMiddleware returns a middleware that requires a valid, unrevoked
// bearer token and stores the authenticated user in the context.
func AuthMiddleware(tokener Tokener, checker TokenChecker, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolveUser(ctx, tokener, checker, users, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// OptionalAuthMiddleware behaves like AuthMiddleware but lets requests
// without an Authorization header through anonymously. A presented but
// invalid token is still rejected.
func OptionalAuthMiddleware(tokener Tokener, checker TokenChecker, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolveUser(ctx, tokener, checker, users, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}
