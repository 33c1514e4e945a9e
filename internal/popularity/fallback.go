package popularity

import "math"

const maxFallbackEntries = 6

// Fallback produces a deterministic rule-based forecast for when the model
// is unavailable or returned garbage.
func Fallback(in Input) *Forecast {
	return &Forecast{
		FoodPopularity: fallbackFoodPopularity(in),
		SalesGrowth:    fallbackSalesGrowth(in),
	}
}

func fallbackFoodPopularity(in Input) []Entry {
	entries := []Entry{}

	switch {
	case in.Hour >= 7 && in.Hour <= 11:
		// Breakfast
		entries = append(entries, Entry{
			Category:   CategoryBeverages,
			Dishes:     []string{"Tea", "Coffee", "Airan"},
			Trend:      TrendRising,
			Confidence: 85,
		})
		entries = append(entries, Entry{
			Category:   CategoryFastFood,
			Dishes:     []string{"Samsa", "Baursak", "Omelette"},
			Trend:      TrendRising,
			Confidence: 80,
		})
	case in.Hour >= 12 && in.Hour <= 15:
		// Lunch
		entries = append(entries, Entry{
			Category:   CategoryHotDishes,
			Dishes:     []string{"Plov", "Beshbarmak", "Manty"},
			Trend:      TrendRising,
			Confidence: 90,
		})
		entries = append(entries, Entry{
			Category:   CategorySoups,
			Dishes:     []string{"Shurpa", "Lagman", "Borscht"},
			Trend:      TrendRising,
			Confidence: 85,
		})
	case in.Hour >= 18 && in.Hour <= 22:
		// Dinner
		entries = append(entries, Entry{
			Category:   CategoryMeatDishes,
			Dishes:     []string{"Kazy", "Shashlik", "Kuyrdak"},
			Trend:      TrendRising,
			Confidence: 85,
		})
	}

	if in.Weather != nil && in.Weather.Temperature < 5 {
		entries = append(entries, Entry{
			Category:   CategoryHotDishes,
			Dishes:     []string{"Hot dishes", "Soups"},
			Trend:      TrendRising,
			Confidence: 80,
		})
	} else if in.Weather != nil && in.Weather.Temperature > 25 {
		entries = append(entries, Entry{
			Category:   CategoryColdDishes,
			Dishes:     []string{"Salads", "Cold appetizers"},
			Trend:      TrendRising,
			Confidence: 75,
		})
	}

	if in.IsWeekend {
		entries = append(entries, Entry{
			Category:   CategoryTraditionalKazakh,
			Dishes:     []string{"Beshbarmak", "Plov", "Kazy"},
			Trend:      TrendRising,
			Confidence: 80,
		})
	}

	if len(entries) > maxFallbackEntries {
		entries = entries[:maxFallbackEntries]
	}
	return entries
}

func fallbackSalesGrowth(in Input) SalesGrowth {
	growth := 0.0
	factors := []string{}

	if in.Hour >= 12 && in.Hour <= 14 {
		growth += 20
		factors = append(factors, "Lunch time is the peak of foot traffic")
	} else if in.Hour >= 19 && in.Hour <= 21 {
		growth += 15
		factors = append(factors, "Dinner time brings high activity")
	}

	if in.IsWeekend {
		growth += 25
		factors = append(factors, "Weekends increase restaurant visits")
	}

	if in.IsHoliday {
		growth += 30
		factors = append(factors, "Public holiday")
	}

	if in.Weather != nil {
		if in.Weather.Temperature < 0 {
			growth += 10
			factors = append(factors, "Cold weather drives demand for hot dishes")
		} else if in.Weather.Temperature > 30 {
			growth += 5
			factors = append(factors, "Hot weather increases demand for cold drinks")
		}
	}

	growth *= in.SeasonMultiplier

	if len(factors) == 0 {
		factors = []string{"Standard market factors"}
	}

	percentage := math.Round(growth)
	return SalesGrowth{
		Percentage:  percentage,
		Factors:     factors,
		Description: growthDescription(percentage),
	}
}

func growthDescription(percentage float64) string {
	switch {
	case percentage >= 30:
		return "Significant sales growth expected thanks to favorable factors"
	case percentage >= 15:
		return "Moderate sales growth expected"
	case percentage >= 5:
		return "Slight sales growth expected"
	case percentage <= -10:
		return "Sales may decline due to unfavorable conditions"
	default:
		return "Sales should stay at a stable level"
	}
}
