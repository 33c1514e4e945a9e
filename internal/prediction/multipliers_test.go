package prediction

import "testing"

func TestHourMultiplierDayparts(t *testing.T) {
	cases := []struct {
		hour int
		want float64
	}{
		{7, 0.8},
		{11, 0.8},
		{12, 1.4},
		{15, 1.4},
		{16, 0.6},
		{17, 0.6},
		{18, 1.6},
		{22, 1.6},
		{23, 0.3},
		{3, 0.3},
	}
	for _, tc := range cases {
		if got := hourMultiplier(tc.hour); got != tc.want {
			t.Fatalf("hour %d: expected %v, got %v", tc.hour, tc.want, got)
		}
	}
}

func TestWeekdayMultiplierHolidayOverridesDay(t *testing.T) {
	tf := TimeFactors{DayOfWeek: 6, IsHoliday: true}
	if got := weekdayMultiplier(tf); got != 0.6 {
		t.Fatalf("holiday must override the saturday multiplier, got %v", got)
	}

	tf = TimeFactors{DayOfWeek: 6}
	if got := weekdayMultiplier(tf); got != 1.4 {
		t.Fatalf("expected saturday multiplier 1.4, got %v", got)
	}

	tf = TimeFactors{DayOfWeek: 0}
	if got := weekdayMultiplier(tf); got != 0.85 {
		t.Fatalf("expected sunday multiplier 0.85, got %v", got)
	}
}

func TestSeasonalMultiplierTable(t *testing.T) {
	if got := seasonalMultiplier(7); got != 1.4 {
		t.Fatalf("expected july multiplier 1.4, got %v", got)
	}
	if got := seasonalMultiplier(11); got != 0.9 {
		t.Fatalf("expected november multiplier 0.9, got %v", got)
	}
}
