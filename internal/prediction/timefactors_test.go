package prediction

import (
	"testing"
	"time"
)

func TestTimeFactorsAtWeekday(t *testing.T) {
	// Wednesday, July 15 2026, 13:00
	at := time.Date(2026, 7, 15, 13, 0, 0, 0, time.UTC)
	tf := TimeFactorsAt(at)

	if tf.DayOfWeek != 3 {
		t.Fatalf("expected dayOfWeek 3, got %d", tf.DayOfWeek)
	}
	if tf.Hour != 13 {
		t.Fatalf("expected hour 13, got %d", tf.Hour)
	}
	if tf.Month != 7 {
		t.Fatalf("expected month 7, got %d", tf.Month)
	}
	if tf.IsWeekend {
		t.Fatalf("wednesday must not be a weekend")
	}
	if tf.IsHoliday {
		t.Fatalf("july 15 must not be a holiday")
	}
}

func TestTimeFactorsAtWeekend(t *testing.T) {
	saturday := time.Date(2026, 7, 18, 19, 0, 0, 0, time.UTC)
	if tf := TimeFactorsAt(saturday); !tf.IsWeekend {
		t.Fatalf("saturday must be a weekend")
	}

	sunday := time.Date(2026, 7, 19, 19, 0, 0, 0, time.UTC)
	if tf := TimeFactorsAt(sunday); !tf.IsWeekend {
		t.Fatalf("sunday must be a weekend")
	}
}

func TestTimeFactorsAtHolidaysAreYearBlind(t *testing.T) {
	for _, year := range []int{2024, 2025, 2026} {
		nauryz := time.Date(year, 3, 22, 12, 0, 0, 0, time.UTC)
		if tf := TimeFactorsAt(nauryz); !tf.IsHoliday {
			t.Fatalf("march 22 %d must be a holiday", year)
		}
	}

	independence := time.Date(2026, 12, 16, 9, 0, 0, 0, time.UTC)
	if tf := TimeFactorsAt(independence); !tf.IsHoliday {
		t.Fatalf("december 16 must be a holiday")
	}
}
