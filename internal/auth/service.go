package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/EraEKV/restometrics/internal/restaurant"
)

// RestaurantDirectory is the slice of the restaurant service the login
// flow needs.
type RestaurantDirectory interface {
	FindByRegistrationID(ctx context.Context, registrationID string) (*restaurant.Restaurant, error)
	CreateFromRegistrationID(ctx context.Context, registrationID string) (*restaurant.Restaurant, error)
}

type Service struct {
	restaurants RestaurantDirectory
	sessions    SessionStore
	sessionTTL  time.Duration
}

func NewService(
	restaurants RestaurantDirectory,
	sessions SessionStore,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		restaurants: restaurants,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

// LoginResult carries the minted session and the restaurant it belongs to.
type LoginResult struct {
	SessionID  string
	Restaurant *restaurant.Restaurant
	Created    bool
}

// Login resolves the registration id to a restaurant, creating a bare
// record on first login, and mints a new session.
func (s *Service) Login(ctx context.Context, registrationID string) (*LoginResult, error) {
	found, err := s.restaurants.FindByRegistrationID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	created := false
	if found == nil {
		found, err = s.restaurants.CreateFromRegistrationID(ctx, registrationID)
		if err != nil {
			return nil, err
		}
		created = true
	}

	sessionID := uuid.New().String()
	if err := s.sessions.Save(ctx, sessionID, found.ID, s.sessionTTL); err != nil {
		return nil, err
	}

	return &LoginResult{
		SessionID:  sessionID,
		Restaurant: found,
		Created:    created,
	}, nil
}

// Resolve maps a session id back to its restaurant id.
func (s *Service) Resolve(ctx context.Context, sessionID string) (string, error) {
	return s.sessions.Resolve(ctx, sessionID)
}

// Logout invalidates the session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// SessionTTL is exposed so the handler can set the cookie max-age.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}
