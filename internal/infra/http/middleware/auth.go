package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// TokenValidator resolves a raw bearer token to a principal ID.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type contextKeyPrincipalID struct{}

// GetPrincipalID returns the authenticated principal from the request
// context, or "" when the request never went through RequireAuth.
func GetPrincipalID(ctx context.Context) string {
	principalID, ok := ctx.Value(contextKeyPrincipalID{}).(string)
	if !ok {
		return ""
	}
	return principalID
}

// WithPrincipalID is exposed for handler tests.
func WithPrincipalID(ctx context.Context, principalID string) context.Context {
	return context.WithValue(ctx, contextKeyPrincipalID{}, principalID)
}

// RequireAuth is the identity gate: every guarded route resolves the caller
// exactly once here, before any handler or store access runs.
func RequireAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				unauthorized(w, "Missing or invalid Authorization header")
				return
			}

			principalID, err := validator.ValidateToken(token)
			if err != nil {
				log.Printf("unauthorized: %v", err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := WithPrincipalID(r.Context(), principalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
