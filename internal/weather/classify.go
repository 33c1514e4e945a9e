package weather

import (
	"fmt"
	"math"
	"time"
)

// Classify builds a Snapshot out of raw forecast readings. Condition and
// impact are total over every (temperature, rainfall) pair.
func Classify(at time.Time, temperature, rainfall float64) Snapshot {
	condition := determineCondition(temperature, rainfall)
	impact := determineImpact(condition, temperature, rainfall)

	return Snapshot{
		DateTime:         at,
		Temperature:      temperature,
		Rainfall:         rainfall,
		Condition:        condition,
		Impact:           impact,
		ImpactMultiplier: impactMultiplier(impact, temperature, rainfall),
		Description:      describe(condition, temperature, rainfall, impact),
	}
}

func determineCondition(temperature, rainfall float64) Condition {
	if rainfall > 5 {
		return ConditionStormy
	}
	if rainfall > 0.5 {
		return ConditionRainy
	}
	if temperature < 0 && rainfall > 0 {
		return ConditionSnowy
	}
	if temperature > 15 && temperature < 30 {
		return ConditionClear
	}
	return ConditionCloudy
}

func determineImpact(condition Condition, temperature, rainfall float64) Impact {
	if rainfall > 2 || temperature < -20 || temperature > 40 {
		return ImpactNegative
	}
	if condition == ConditionClear && temperature >= 15 && temperature <= 28 {
		return ImpactPositive
	}
	return ImpactNeutral
}

// impactMultiplier maps impact to a demand scalar, with extra dampening for
// extreme rain, cold and heat. Always within [0.4, 1.4].
func impactMultiplier(impact Impact, temperature, rainfall float64) float64 {
	multiplier := 1.0

	switch impact {
	case ImpactPositive:
		multiplier = 1.15
	case ImpactNegative:
		multiplier = 0.75
	case ImpactNeutral:
		multiplier = 1.0
	}

	if rainfall > 10 {
		multiplier *= 0.6
	}
	if temperature < -30 {
		multiplier *= 0.5
	}
	if temperature > 45 {
		multiplier *= 0.7
	}

	return math.Max(0.4, math.Min(1.4, multiplier))
}

func describe(condition Condition, temperature, rainfall float64, impact Impact) string {
	var description string

	switch condition {
	case ConditionClear:
		description = "Clear weather"
	case ConditionCloudy:
		description = "Cloudy weather"
	case ConditionRainy:
		if rainfall > 2 {
			description = "Heavy rain"
		} else {
			description = "Light rain"
		}
	case ConditionSnowy:
		description = "Snowfall"
	case ConditionStormy:
		description = "Thunderstorm"
	}

	sign := ""
	if temperature > 0 {
		sign = "+"
	}
	description += fmt.Sprintf(", temperature %s%d°C.", sign, int(math.Round(temperature)))

	switch impact {
	case ImpactPositive:
		description += " Favorable conditions for visiting a restaurant."
	case ImpactNegative:
		description += " Bad weather may reduce foot traffic."
	case ImpactNeutral:
		description += " Weather should not noticeably affect foot traffic."
	}

	return description
}

// DefaultSnapshot is used whenever the forecast API is unavailable: a
// season-appropriate temperature, no rain, neutral impact.
func DefaultSnapshot(at time.Time) *Snapshot {
	month := int(at.Month())

	var temp float64
	switch {
	case month == 12 || month <= 2:
		temp = -5
	case month >= 3 && month <= 5:
		temp = 15
	case month >= 6 && month <= 8:
		temp = 28
	default:
		temp = 10
	}

	return &Snapshot{
		DateTime:         at,
		Temperature:      temp,
		Rainfall:         0,
		Condition:        ConditionCloudy,
		Impact:           ImpactNeutral,
		ImpactMultiplier: 1.0,
		Description:      fmt.Sprintf("Weather data unavailable. Assumed temperature %d°C.", int(temp)),
	}
}
