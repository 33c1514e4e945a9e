package popularity

import (
	"context"
	"log"
)

// Predictor is what the prediction pipeline depends on. Implementations
// never fail: degraded answers come from the deterministic fallback.
type Predictor interface {
	Predict(ctx context.Context, in Input) *Forecast
}

// Service fronts the generative model with fallback behavior: any transport
// or parse failure silently switches to the rule-based generator.
type Service struct {
	client Client
}

// NewService accepts a nil client, in which case only the fallback runs.
func NewService(client Client) *Service {
	return &Service{client: client}
}

func (s *Service) Predict(ctx context.Context, in Input) *Forecast {
	if s.client == nil {
		return Fallback(in)
	}

	raw, err := s.client.GenerateContent(ctx, BuildPrompt(in))
	if err != nil {
		log.Printf("popularity: model call failed, using fallback: %v", err)
		return Fallback(in)
	}

	forecast, err := ParseResponse(raw)
	if err != nil {
		log.Printf("popularity: unparseable model response, using fallback: %v", err)
		return Fallback(in)
	}

	return forecast
}
