package restaurant

import (
	"context"
	"testing"
)

func newTestService() *Service {
	return NewService(NewInMemoryRepository())
}

func validCreateParams() CreateParams {
	return CreateParams{
		Name:           "Dastarkhan",
		Address:        "Abay Ave 10, Almaty",
		Coordinates:    [2]float64{76.889709, 43.238949},
		HasMenu:        true,
		RegistrationID: "REG-001",
		Owner: Owner{
			Name:  "Aigerim",
			Phone: "+7 701 000 00 00",
			Email: "aigerim@example.kz",
		},
	}
}

func TestCreateRestaurant(t *testing.T) {
	service := newTestService()

	created, err := service.Create(context.Background(), validCreateParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if created.Status != StatusPending {
		t.Fatalf("new restaurants must start pending, got %s", created.Status)
	}
	if created.Represent != "Dastarkhan" {
		t.Fatalf("represent must default to the name, got %q", created.Represent)
	}
	if created.CreateDate.IsZero() || created.UpdateDate.IsZero() {
		t.Fatalf("timestamps must be set")
	}
}

func TestCreateRestaurantValidation(t *testing.T) {
	service := newTestService()

	params := validCreateParams()
	params.Name = ""
	if _, err := service.Create(context.Background(), params); err == nil {
		t.Fatalf("expected error for missing name")
	}

	params = validCreateParams()
	params.RegistrationID = ""
	if _, err := service.Create(context.Background(), params); err == nil {
		t.Fatalf("expected error for missing registration id")
	}
}

func TestCreateRestaurantCustomNameWins(t *testing.T) {
	service := newTestService()

	params := validCreateParams()
	params.CustomName = "Dastarkhan Deluxe"
	created, err := service.Create(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Represent != "Dastarkhan Deluxe" {
		t.Fatalf("represent must prefer the custom name, got %q", created.Represent)
	}
}

func TestCreateFromRegistrationID(t *testing.T) {
	service := newTestService()

	created, err := service.CreateFromRegistrationID(context.Background(), "REG-777")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != "Restaurant REG-777" {
		t.Fatalf("unexpected placeholder name %q", created.Name)
	}
	if created.Address != "Address not specified" {
		t.Fatalf("unexpected placeholder address %q", created.Address)
	}
	if created.Status != StatusPending {
		t.Fatalf("bootstrapped restaurants must be pending")
	}

	found, err := service.FindByRegistrationID(context.Background(), "REG-777")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("bootstrapped restaurant must be findable by registration id")
	}
}

func TestFindByRegistrationIDMissing(t *testing.T) {
	service := newTestService()

	found, err := service.FindByRegistrationID(context.Background(), "REG-NONE")
	if err != nil {
		t.Fatalf("a miss must not be an error, got %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil for unknown registration id")
	}
}

func TestUpdatePartial(t *testing.T) {
	service := newTestService()
	created, err := service.Create(context.Background(), validCreateParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newAddress := "Dostyk Ave 5, Almaty"
	updated, err := service.Update(context.Background(), created.ID, UpdateParams{
		Address: &newAddress,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Address != newAddress {
		t.Fatalf("address not updated")
	}
	if updated.Name != created.Name {
		t.Fatalf("untouched fields must survive a partial update")
	}
	if updated.Owner != created.Owner {
		t.Fatalf("owner must survive a partial update")
	}
}

func TestUpdateStatus(t *testing.T) {
	service := newTestService()
	created, err := service.Create(context.Background(), validCreateParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.UpdateStatus(context.Background(), created.ID, StatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}

	if _, err := service.UpdateStatus(context.Background(), created.ID, "archived"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestSearchPagination(t *testing.T) {
	service := newTestService()

	for i := 0; i < 15; i++ {
		params := validCreateParams()
		params.RegistrationID = params.RegistrationID + string(rune('A'+i))
		if _, err := service.Create(context.Background(), params); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	search := SearchParams{Page: 2, Limit: 10}
	search.Normalize()
	items, total, err := service.Search(context.Background(), search)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total != 15 {
		t.Fatalf("expected total 15, got %d", total)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(items))
	}
}

func TestDeleteRestaurant(t *testing.T) {
	service := newTestService()
	created, err := service.Create(context.Background(), validCreateParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Get(context.Background(), created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
