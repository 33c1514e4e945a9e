package auth

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists the session-id to restaurant-id mapping.
type SessionStore interface {
	Save(ctx context.Context, sessionID, restaurantID string, ttl time.Duration) error
	Resolve(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
