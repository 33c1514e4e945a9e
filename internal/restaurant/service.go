package restaurant

import (
	"context"
	"errors"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries the validated fields of a create request.
// Coordinates are [lng, lat].
type CreateParams struct {
	Name           string
	Address        string
	Coordinates    [2]float64
	HasMenu        bool
	RegistrationID string
	CustomName     string
	Owner          Owner
	MapID          string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Restaurant, error) {
	if params.Name == "" || params.Address == "" || params.RegistrationID == "" {
		return nil, errors.New("missing required fields")
	}

	represent := params.CustomName
	if represent == "" {
		represent = params.Name
	}

	restaurant := &Restaurant{
		Name:           params.Name,
		Address:        params.Address,
		Coordinates:    params.Coordinates,
		HasMenu:        params.HasMenu,
		RegistrationID: params.RegistrationID,
		CustomName:     params.CustomName,
		Owner:          params.Owner,
		Status:         StatusPending,
		MapID:          params.MapID,
		Represent:      represent,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, params SearchParams) ([]*Restaurant, int, error) {
	return s.repo.Search(ctx, params)
}

// FindByRegistrationID returns (nil, nil) when no restaurant matches; the
// login flow uses that to decide whether to bootstrap one.
func (s *Service) FindByRegistrationID(
	ctx context.Context,
	registrationID string,
) (*Restaurant, error) {
	restaurant, err := s.repo.FindByRegistrationID(ctx, registrationID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// CreateFromRegistrationID bootstraps a bare restaurant record during the
// first login with an unknown registration id.
func (s *Service) CreateFromRegistrationID(
	ctx context.Context,
	registrationID string,
) (*Restaurant, error) {
	if registrationID == "" {
		return nil, errors.New("registration_id is required")
	}

	name := fmt.Sprintf("Restaurant %s", registrationID)
	restaurant := &Restaurant{
		Name:           name,
		Address:        "Address not specified",
		Coordinates:    [2]float64{0, 0},
		HasMenu:        false,
		RegistrationID: registrationID,
		Owner: Owner{
			Name:  "Not specified",
			Phone: "Not specified",
			Email: "Not specified",
		},
		Status:    StatusPending,
		Represent: name,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// UpdateParams applies partial updates; nil fields stay untouched.
type UpdateParams struct {
	Name        *string
	Address     *string
	Coordinates *[2]float64
	HasMenu     *bool
	CustomName  *string
	Owner       *Owner
	MapID       *string
}

func (s *Service) Update(ctx context.Context, id string, params UpdateParams) (*Restaurant, error) {
	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		restaurant.Name = *params.Name
		if params.CustomName == nil && restaurant.CustomName == "" {
			restaurant.Represent = *params.Name
		}
	}
	if params.Address != nil {
		restaurant.Address = *params.Address
	}
	if params.Coordinates != nil {
		restaurant.Coordinates = *params.Coordinates
	}
	if params.HasMenu != nil {
		restaurant.HasMenu = *params.HasMenu
	}
	if params.CustomName != nil {
		restaurant.CustomName = *params.CustomName
		if *params.CustomName != "" {
			restaurant.Represent = *params.CustomName
		} else {
			restaurant.Represent = restaurant.Name
		}
	}
	if params.Owner != nil {
		restaurant.Owner = *params.Owner
	}
	if params.MapID != nil {
		restaurant.MapID = *params.MapID
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Restaurant, error) {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return nil, errors.New("invalid status")
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
