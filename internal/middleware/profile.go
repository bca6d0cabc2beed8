package middleware

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/studyflow/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UsernameKey is the context key for the logged-in profile's username.
const UsernameKey contextKey = "username"

// ProfileLoader is the part of storage.Store the profile interceptor needs.
type ProfileLoader interface {
	LoadProfile(ctx context.Context) (*models.Profile, error)
}

// GetUsername extracts the username from the context.
// Returns empty string if nobody is logged in.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameKey, username)
}

// ProfileInterceptor returns a Connect interceptor that loads the local
// profile and adds its username to the request context. Requests go through
// whether or not a profile exists; handlers decide whether they need one.
func ProfileInterceptor(profiles ProfileLoader) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			profile, err := profiles.LoadProfile(ctx)
			if err != nil {
				// Storage errors surface from the handler itself.
				slog.Debug("Profile lookup failed", "procedure", req.Spec().Procedure, "error", err)
			} else if profile != nil {
				ctx = WithUsername(ctx, profile.Username)
			}
			return next(ctx, req)
		}
	}
}
