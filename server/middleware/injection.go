package middleware

import (
	"context"
	"net/http"

	"github.com/thatmoosee/Study-Buddy/server/repository"
)

type contextKey string

// Request context keys. ContextKeyUser holds the session user id once
// Authorization has accepted the cookie.
const (
	ContextKeyData = contextKey("db")
	ContextKeyUser = contextKey("user")
)

// InjectData puts data into every request's context under ContextKeyData.
// Handlers read it back with etc.GetDb.
func InjectData(data *repository.Database) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), ContextKeyData, data)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
