package auth

import (
	"context"

	apperrors "musclelog-backend/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "auth.username"

// WithUser returns a context carrying the authenticated username
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userContextKey, username)
}

// UserFromContext extracts the authenticated username set by the
// middleware. Handlers treat failure as an unauthenticated request.
func UserFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(userContextKey).(string)
	if !ok || username == "" {
		return "", apperrors.NewUnauthorizedError("no authenticated user in context")
	}
	return username, nil
}
