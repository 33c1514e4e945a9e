package popularity

import (
	"context"
	"errors"
	"testing"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func TestPredictUsesModelResponse(t *testing.T) {
	client := &stubClient{response: `{
		"foodPopularity": [
			{"category": "MEAT_DISHES", "dishes": ["Shashlik"], "trend": "rising", "confidence": 88}
		],
		"salesGrowth": {"percentage": 12, "factors": ["Dinner"], "description": "Up"}
	}`}
	service := NewService(client)

	forecast := service.Predict(context.Background(), Input{Hour: 19, SeasonMultiplier: 1.0})

	if client.prompt == "" {
		t.Fatalf("expected a prompt to be sent")
	}
	if len(forecast.FoodPopularity) != 1 || forecast.FoodPopularity[0].Category != CategoryMeatDishes {
		t.Fatalf("unexpected forecast: %+v", forecast)
	}
	if forecast.SalesGrowth.Percentage != 12 {
		t.Fatalf("expected percentage 12, got %v", forecast.SalesGrowth.Percentage)
	}
}

func TestPredictFallsBackOnClientError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	service := NewService(client)

	forecast := service.Predict(context.Background(), Input{Hour: 13, SeasonMultiplier: 1.0})

	// Fallback for lunch hours always has entries.
	if len(forecast.FoodPopularity) == 0 {
		t.Fatalf("fallback must supply entries")
	}
}

func TestPredictFallsBackOnGarbage(t *testing.T) {
	client := &stubClient{response: "the model rambled instead of emitting JSON"}
	service := NewService(client)

	forecast := service.Predict(context.Background(), Input{Hour: 13, SeasonMultiplier: 1.0})
	if len(forecast.FoodPopularity) == 0 {
		t.Fatalf("fallback must supply entries")
	}
}

func TestPredictWithoutClient(t *testing.T) {
	service := NewService(nil)

	forecast := service.Predict(context.Background(), Input{Hour: 8, SeasonMultiplier: 1.0})
	if len(forecast.FoodPopularity) != 2 {
		t.Fatalf("expected breakfast fallback entries, got %d", len(forecast.FoodPopularity))
	}
}
