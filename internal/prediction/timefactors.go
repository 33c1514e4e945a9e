package prediction

import "time"

// Public holidays in Kazakhstan, keyed "MM-DD". Year-blind on purpose:
// moving holidays are pinned to their usual dates.
var holidays = map[string]struct{}{
	"01-01": {}, // New Year
	"01-02": {}, // New Year
	"01-07": {}, // Orthodox Christmas
	"03-08": {}, // International Women's Day
	"03-21": {}, // Nauryz
	"03-22": {}, // Nauryz
	"03-23": {}, // Nauryz
	"05-01": {}, // Kazakhstan People's Unity Day
	"05-07": {}, // Defender of the Fatherland Day
	"05-09": {}, // Victory Day
	"07-06": {}, // Capital City Day
	"08-30": {}, // Constitution Day
	"12-01": {}, // First President Day
	"12-16": {}, // Independence Day
	"12-17": {}, // Independence Day
}

// TimeFactorsAt derives the calendar attributes for a prediction moment.
// Pure function of the timestamp.
func TimeFactorsAt(t time.Time) TimeFactors {
	dayOfWeek := int(t.Weekday())
	_, isHoliday := holidays[t.Format("01-02")]

	return TimeFactors{
		DayOfWeek: dayOfWeek,
		Hour:      t.Hour(),
		Month:     int(t.Month()),
		IsWeekend: dayOfWeek == 0 || dayOfWeek == 6,
		IsHoliday: isHoliday,
	}
}
