package prediction

import (
	"fmt"

	"github.com/EraEKV/restometrics/internal/weather"
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func typeText(t Type) string {
	switch t {
	case TypeRevenue:
		return "revenue"
	case TypeOrdersCount:
		return "order volume"
	default:
		return "foot traffic"
	}
}

// describe fills the natural-language summary: day, daypart, weekend or
// holiday phrase and, when present, the weather sentence.
func describe(t Type, tf TimeFactors, snapshot *weather.Snapshot) string {
	description := fmt.Sprintf(
		"Forecast of %s for %s at %d:00.",
		typeText(t), dayNames[tf.DayOfWeek], tf.Hour,
	)

	if tf.IsHoliday {
		description += " Reduced activity is expected on public holidays."
	} else if tf.IsWeekend {
		description += " Higher activity is expected on weekends."
	}

	if tf.Hour >= 12 && tf.Hour <= 15 {
		description += " Lunch time is a peak period."
	} else if tf.Hour >= 18 && tf.Hour <= 21 {
		description += " Dinner is the busiest period."
	}

	if snapshot != nil {
		description += " " + snapshot.Description
	}

	return description
}
