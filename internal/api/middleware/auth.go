package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/venture-studio/engine/internal/api/types"
	"github.com/venture-studio/engine/internal/services"
)

type claimsKeyType string

const ClaimsKey claimsKeyType = "claims"

// Auth gates a route group on a valid bearer token. Verified claims are
// stored in the request context for downstream handlers.
func Auth(auth services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w, "missing bearer token")
				return
			}
			tokenStr := strings.TrimSpace(ah[len("Bearer "):])
			claims, err := auth.Verify(tokenStr)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims returns the verified claims from context, or nil.
func GetClaims(ctx context.Context) *services.Claims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*services.Claims); ok {
			return c
		}
	}
	return nil
}

// GetUserID returns the authenticated user id from context, or uuid.Nil.
func GetUserID(ctx context.Context) uuid.UUID {
	c := GetClaims(ctx)
	if c == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.Fail(msg))
}
