package prediction

import "math"

// Per-month seasonal multipliers, January first. Summer peaks with vacation
// traffic, late autumn is the slowest stretch.
var seasonalByMonth = [12]float64{1.1, 1.0, 1.1, 1.2, 1.3, 1.4, 1.4, 1.3, 1.1, 1.0, 0.9, 1.0}

// Per-day-of-week multipliers, Sunday first. Friday and especially Saturday
// carry the week.
var weekdayByDay = [7]float64{0.85, 1.0, 1.0, 1.0, 1.1, 1.4, 1.3}

// Holidays see significantly reduced footfall.
const holidayWeekdayMultiplier = 0.6

func seasonalMultiplier(month int) float64 {
	return seasonalByMonth[month-1]
}

func weekdayMultiplier(tf TimeFactors) float64 {
	if tf.IsHoliday {
		return holidayWeekdayMultiplier
	}
	return weekdayByDay[tf.DayOfWeek]
}

// hourMultiplier is a step function over dayparts: breakfast, lunch peak,
// dinner peak, the lull in between and a night floor.
func hourMultiplier(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 11:
		return 0.8 // breakfast
	case hour >= 12 && hour <= 15:
		return 1.4 // lunch
	case hour >= 16 && hour <= 17:
		return 0.6 // between meals
	case hour >= 18 && hour <= 22:
		return 1.6 // dinner
	default:
		return 0.3 // night
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
