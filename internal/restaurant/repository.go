package restaurant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("restaurant not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	FindByRegistrationID(ctx context.Context, registrationID string) (*Restaurant, error)
	Search(ctx context.Context, params SearchParams) ([]*Restaurant, int, error)
	Update(ctx context.Context, r *Restaurant) error
	UpdateStatus(ctx context.Context, id string, status Status) (*Restaurant, error)
	Delete(ctx context.Context, id string) error
}
