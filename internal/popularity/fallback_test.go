package popularity

import (
	"testing"

	"github.com/EraEKV/restometrics/internal/weather"
)

func TestFallbackLunchEntries(t *testing.T) {
	forecast := Fallback(Input{Hour: 13, SeasonMultiplier: 1.0})

	if len(forecast.FoodPopularity) != 2 {
		t.Fatalf("expected 2 lunch entries, got %d", len(forecast.FoodPopularity))
	}
	if forecast.FoodPopularity[0].Category != CategoryHotDishes {
		t.Fatalf("expected HOT_DISHES first, got %s", forecast.FoodPopularity[0].Category)
	}
	if forecast.FoodPopularity[1].Category != CategorySoups {
		t.Fatalf("expected SOUPS second, got %s", forecast.FoodPopularity[1].Category)
	}
}

func TestFallbackEntryCap(t *testing.T) {
	cold := weather.Snapshot{Temperature: -10}
	forecast := Fallback(Input{
		Hour:             13,
		IsWeekend:        true,
		SeasonMultiplier: 1.0,
		Weather:          &cold,
	})

	if len(forecast.FoodPopularity) > maxFallbackEntries {
		t.Fatalf("entries must be capped at %d, got %d",
			maxFallbackEntries, len(forecast.FoodPopularity))
	}
}

func TestFallbackSalesGrowthAccumulation(t *testing.T) {
	cold := weather.Snapshot{Temperature: -5}
	forecast := Fallback(Input{
		Hour:             13,
		IsWeekend:        true,
		IsHoliday:        true,
		SeasonMultiplier: 1.1,
		Weather:          &cold,
	})

	// (20 lunch + 25 weekend + 30 holiday + 10 cold) * 1.1 = 93.5 -> 94
	if forecast.SalesGrowth.Percentage != 94 {
		t.Fatalf("expected percentage 94, got %v", forecast.SalesGrowth.Percentage)
	}
	if len(forecast.SalesGrowth.Factors) != 4 {
		t.Fatalf("expected 4 factors, got %v", forecast.SalesGrowth.Factors)
	}
	if forecast.SalesGrowth.Description != "Significant sales growth expected thanks to favorable factors" {
		t.Fatalf("unexpected description %q", forecast.SalesGrowth.Description)
	}
}

func TestFallbackSalesGrowthNeverEmptyFactors(t *testing.T) {
	forecast := Fallback(Input{Hour: 16, SeasonMultiplier: 1.0})

	if forecast.SalesGrowth.Percentage != 0 {
		t.Fatalf("expected 0 growth, got %v", forecast.SalesGrowth.Percentage)
	}
	if len(forecast.SalesGrowth.Factors) != 1 || forecast.SalesGrowth.Factors[0] != "Standard market factors" {
		t.Fatalf("expected default factors, got %v", forecast.SalesGrowth.Factors)
	}
	if forecast.SalesGrowth.Description != "Sales should stay at a stable level" {
		t.Fatalf("unexpected description %q", forecast.SalesGrowth.Description)
	}
}
