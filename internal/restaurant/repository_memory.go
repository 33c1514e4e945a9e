package restaurant

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development without Postgres.
type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[string]*Restaurant),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	now := time.Now()
	restaurant.CreateDate = now
	restaurant.UpdateDate = now

	clone := *restaurant
	r.restaurants[restaurant.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *restaurant
	return &clone, nil
}

func (r *InMemoryRepository) FindByRegistrationID(
	ctx context.Context,
	registrationID string,
) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, restaurant := range r.restaurants {
		if restaurant.RegistrationID == registrationID {
			clone := *restaurant
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Search(
	ctx context.Context,
	params SearchParams,
) ([]*Restaurant, int, error) {
	params.Normalize()

	r.mu.RLock()
	matched := []*Restaurant{}
	for _, restaurant := range r.restaurants {
		if matches(restaurant, params) {
			clone := *restaurant
			matched = append(matched, &clone)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if params.SortOrder == "asc" {
			return matched[i].CreateDate.Before(matched[j].CreateDate)
		}
		return matched[i].CreateDate.After(matched[j].CreateDate)
	})

	total := len(matched)
	start := (params.Page - 1) * params.Limit
	if start >= total {
		return []*Restaurant{}, total, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matches(r *Restaurant, params SearchParams) bool {
	contains := func(s, sub string) bool {
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}

	if params.Name != "" && !contains(r.Name, params.Name) {
		return false
	}
	if params.Address != "" && !contains(r.Address, params.Address) {
		return false
	}
	if params.Status != "" && r.Status != params.Status {
		return false
	}
	if params.HasMenu != nil && r.HasMenu != *params.HasMenu {
		return false
	}
	if params.RegistrationID != "" && !contains(r.RegistrationID, params.RegistrationID) {
		return false
	}
	if params.Search != "" {
		if !contains(r.Name, params.Search) &&
			!contains(r.Address, params.Search) &&
			!contains(r.CustomName, params.Search) &&
			!contains(r.Represent, params.Search) {
			return false
		}
	}
	return true
}

func (r *InMemoryRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return ErrNotFound
	}
	restaurant.UpdateDate = time.Now()
	clone := *restaurant
	r.restaurants[restaurant.ID] = &clone
	return nil
}

func (r *InMemoryRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status Status,
) (*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	restaurant.Status = status
	restaurant.UpdateDate = time.Now()
	clone := *restaurant
	return &clone, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[id]; !ok {
		return ErrNotFound
	}
	delete(r.restaurants, id)
	return nil
}
