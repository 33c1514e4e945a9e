package popularity

import (
	"encoding/json"
	"errors"
	"strings"
)

type rawForecast struct {
	FoodPopularity []struct {
		Category   string          `json:"category"`
		Dishes     json.RawMessage `json:"dishes"`
		Trend      string          `json:"trend"`
		Confidence *float64        `json:"confidence"`
	} `json:"foodPopularity"`
	SalesGrowth struct {
		Percentage  *float64 `json:"percentage"`
		Factors     []string `json:"factors"`
		Description string   `json:"description"`
	} `json:"salesGrowth"`
}

// ParseResponse parses the model's text into a Forecast, coercing malformed
// fields to safe defaults. Only a non-JSON body is an error.
func ParseResponse(text string) (*Forecast, error) {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return nil, errors.New("empty model response")
	}

	var parsed rawForecast
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(parsed.FoodPopularity))
	for _, item := range parsed.FoodPopularity {
		dishes := []string{}
		if len(item.Dishes) > 0 {
			// A non-array dishes field is coerced to an empty list.
			_ = json.Unmarshal(item.Dishes, &dishes)
			if dishes == nil {
				dishes = []string{}
			}
		}

		confidence := 75
		if item.Confidence != nil {
			confidence = int(*item.Confidence)
		}

		entries = append(entries, Entry{
			Category:   Category(item.Category),
			Dishes:     dishes,
			Trend:      Trend(item.Trend),
			Confidence: confidence,
		})
	}

	growth := SalesGrowth{
		Description: "Description unavailable",
		Factors:     []string{},
	}
	if parsed.SalesGrowth.Percentage != nil {
		growth.Percentage = *parsed.SalesGrowth.Percentage
	}
	if parsed.SalesGrowth.Factors != nil {
		growth.Factors = parsed.SalesGrowth.Factors
	}
	if parsed.SalesGrowth.Description != "" {
		growth.Description = parsed.SalesGrowth.Description
	}

	return &Forecast{
		FoodPopularity: entries,
		SalesGrowth:    growth,
	}, nil
}
