// Package middleware provides HTTP middleware for session token authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionIDKey is the context key for storing the authenticated session ID.
const sessionIDKey ContextKey = "sessionID"

// TokenValidator validates a session token string.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (SessionIDGetter, error)
}

// SessionIDGetter extracts the interview session ID from token claims.
type SessionIDGetter interface {
	GetSessionID() uuid.UUID
}

// AuthMiddleware creates middleware that validates session tokens and adds
// the session ID to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Bearer prefix is case-insensitive
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, claims.GetSessionID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID extracts the authenticated session ID from the request context.
func GetSessionID(r *http.Request) (uuid.UUID, error) {
	sessionID, ok := r.Context().Value(sessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("session ID not found in request context")
	}
	return sessionID, nil
}

// SessionIDKey returns the context key for the session ID (for testing purposes).
func SessionIDKey() ContextKey {
	return sessionIDKey
}
