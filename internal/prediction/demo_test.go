package prediction

import (
	"sync"
	"testing"
)

func TestDemoGenerateDeterministicWithSeed(t *testing.T) {
	req := GenerateRequest{
		Name:        "Demo Cafe",
		Address:     "Dostyk Ave 1, Almaty",
		Coordinates: Coordinates{Lat: 43.2, Lng: 76.9},
		DateTime:    "2026-07-18T19:00:00Z",
	}

	a, err := NewDemoGenerator(42).Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewDemoGenerator(42).Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.PredictedValue != b.PredictedValue {
		t.Fatalf("same seed must produce the same value: %v vs %v", a.PredictedValue, b.PredictedValue)
	}
	if a.Factors.WeatherCondition != b.Factors.WeatherCondition {
		t.Fatalf("same seed must produce the same condition")
	}
}

func TestDemoGenerateBounds(t *testing.T) {
	gen := NewDemoGenerator(7)

	for _, dateTime := range []string{
		"2026-01-01T03:00:00Z", // holiday night
		"2026-07-18T19:00:00Z", // saturday dinner
		"2026-11-10T16:00:00Z", // dull tuesday afternoon
	} {
		result, err := gen.Generate(GenerateRequest{
			Name:        "Demo Cafe",
			Address:     "Dostyk Ave 1, Almaty",
			Coordinates: Coordinates{Lat: 43.2, Lng: 76.9},
			DateTime:    dateTime,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.ConfidenceScore < 40 || result.ConfidenceScore > 95 {
			t.Fatalf("confidence %d out of range for %s", result.ConfidenceScore, dateTime)
		}
		if result.PredictedValue <= 0 {
			t.Fatalf("predicted value must be positive, got %v", result.PredictedValue)
		}
		if len(result.FoodPopularity) != 3 {
			t.Fatalf("expected 3 demo popularity entries, got %d", len(result.FoodPopularity))
		}
		if result.SalesGrowth == nil || len(result.SalesGrowth.Factors) == 0 {
			t.Fatalf("demo sales growth must carry factors")
		}
	}
}

func TestDemoGenerateConcurrentRequests(t *testing.T) {
	gen := NewDemoGenerator(42)
	req := GenerateRequest{
		Name:        "Demo Cafe",
		Address:     "Dostyk Ave 1, Almaty",
		Coordinates: Coordinates{Lat: 43.2, Lng: 76.9},
		DateTime:    "2026-07-18T19:00:00Z",
	}

	// One generator is shared by the handler; run it from many goroutines
	// the way concurrent requests would.
	var wg sync.WaitGroup
	errs := make(chan error, 8*50)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				result, err := gen.Generate(req)
				if err != nil {
					errs <- err
					return
				}
				if result.PredictedValue <= 0 || len(result.FoodPopularity) != 3 {
					t.Errorf("malformed result under concurrency: %+v", result)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDemoGenerateRejectsBadDateTime(t *testing.T) {
	_, err := NewDemoGenerator(1).Generate(GenerateRequest{
		Name:     "Demo Cafe",
		Address:  "Dostyk Ave 1",
		DateTime: "yesterday",
	})
	if err != ErrInvalidDateTime {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
}
