package prediction

import "github.com/EraEKV/restometrics/internal/weather"

const (
	minConfidence = 30
	maxConfidence = 95
)

// confidenceScore rates how predictable the requested slot is. Meal peaks
// are well understood, night hours and holidays are not.
func confidenceScore(tf TimeFactors, snapshot *weather.Snapshot, hasPopularity bool) int {
	score := 70

	if tf.Hour >= 12 && tf.Hour <= 15 {
		score += 15
	}
	if tf.Hour >= 18 && tf.Hour <= 21 {
		score += 15
	}
	if tf.Hour >= 23 || tf.Hour <= 6 {
		score -= 20
	}

	if tf.IsWeekend {
		score += 5
	}
	if tf.IsHoliday {
		score -= 10
	}

	if snapshot != nil {
		switch snapshot.Impact {
		case weather.ImpactPositive:
			score += 5
		case weather.ImpactNegative:
			score -= 10
		}
	}

	if hasPopularity {
		score += 5
	}

	if score < minConfidence {
		score = minConfidence
	}
	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}

func confidenceLevel(score int) ConfidenceLevel {
	switch {
	case score >= 80:
		return ConfidenceHigh
	case score >= 60:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
