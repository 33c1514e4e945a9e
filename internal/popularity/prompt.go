package popularity

import "fmt"

// BuildPrompt assembles the food-popularity prompt. The model is instructed
// to answer with strict JSON only.
func BuildPrompt(in Input) string {
	timeOfDay := "evening"
	if in.Hour < 12 {
		timeOfDay = "morning"
	} else if in.Hour < 17 {
		timeOfDay = "afternoon"
	}

	dayType := "working day"
	if in.IsHoliday {
		dayType = "public holiday"
	} else if in.IsWeekend {
		dayType = "weekend"
	}

	weatherInfo := "weather unknown"
	if in.Weather != nil {
		weatherInfo = fmt.Sprintf(
			"temperature %.1f°C, %s",
			in.Weather.Temperature,
			in.Weather.Description,
		)
	}

	return fmt.Sprintf(`
You are a restaurant-industry analyst for Kazakhstan. Analyze the data and produce a forecast.

INPUT:
- Time: %d:00 (%s)
- Day: %s
- City: %s
- Weather: %s
- Seasonal multiplier: %.2f

TASK: Provide a JSON response with a food-popularity and sales-growth forecast for a Kazakh restaurant.

RESPONSE FORMAT (strict JSON):
{
  "foodPopularity": [
    {
      "category": "HOT_DISHES|SOUPS|COLD_DISHES|MEAT_DISHES|BEVERAGES|DESSERTS|TRADITIONAL_KAZAKH|FAST_FOOD|APPETIZERS|SALADS",
      "dishes": ["dish1", "dish2", "dish3"],
      "trend": "RISING|STABLE|DECLINING",
      "confidence": number_between_60_and_95
    }
  ],
  "salesGrowth": {
    "percentage": number_between_minus_20_and_plus_80,
    "factors": ["factor1", "factor2"],
    "description": "short_forecast_description"
  }
}

REQUIREMENTS:
1. Account for Kazakh preferences (plov, beshbarmak, manty, lagman, shurpa)
2. Account for the time of day (breakfast/lunch/dinner)
3. Account for the weather and the season
4. Return JSON only, no extra text
5. At most 4-5 food categories
`,
		in.Hour, timeOfDay, dayType, in.City, weatherInfo, in.SeasonMultiplier)
}
