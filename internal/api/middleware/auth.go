package middleware

import (
	"context"
	"net/http"

	"casthub/internal/common"
	"casthub/internal/common/security"
	"casthub/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey   contextKey = "userID"
	UserRoleCtxKey contextKey = "userRole"
)

// Identity resolves the caller for the current request and nothing more.
// An absent token, an unverifiable token, or a verified token whose user id no
// longer resolves in the credential store all degrade to an anonymous request;
// rejection happens only when a private route is entered. Resolution finishes
// before any handler runs, and the identity lives in the request context only.
func Identity(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context()) // Extracts token from Authorization header
			if err != nil || token == nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := security.UserIDFromClaims(claims)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			// A signature can verify while the encoded user is gone (stale or
			// forged token). Such callers stay anonymous.
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, user.ID)
			ctx = context.WithValue(ctx, UserRoleCtxKey, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser guards private routes. Without a resolved identity the whole
// request fails with a transport-level Forbidden fault before any resolver
// logic runs.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			common.RespondWithFault(w, http.StatusForbidden, "Forbidden resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get user role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	userRole, ok := ctx.Value(UserRoleCtxKey).(string)
	return userRole, ok
}
