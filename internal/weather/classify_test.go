package weather

import (
	"testing"
	"time"
)

var testTime = time.Date(2026, 7, 18, 13, 0, 0, 0, time.UTC)

func TestClassifyConditions(t *testing.T) {
	cases := []struct {
		temperature float64
		rainfall    float64
		want        Condition
	}{
		{22, 8, ConditionStormy},
		{22, 1, ConditionRainy},
		{22, 0, ConditionClear},
		{35, 0, ConditionCloudy},
		{-10, 0, ConditionCloudy},
		{10, 0, ConditionCloudy},
	}
	for _, tc := range cases {
		got := Classify(testTime, tc.temperature, tc.rainfall)
		if got.Condition != tc.want {
			t.Fatalf("temp=%v rain=%v: expected %s, got %s",
				tc.temperature, tc.rainfall, tc.want, got.Condition)
		}
	}
}

func TestClassifyStormTrumpsPleasantTemperature(t *testing.T) {
	snapshot := Classify(testTime, 22, 8)

	if snapshot.Condition != ConditionStormy {
		t.Fatalf("expected stormy, got %s", snapshot.Condition)
	}
	if snapshot.Impact != ImpactNegative {
		t.Fatalf("expected negative impact, got %s", snapshot.Impact)
	}
	if snapshot.ImpactMultiplier != 0.75 {
		t.Fatalf("expected multiplier 0.75, got %v", snapshot.ImpactMultiplier)
	}
}

func TestClassifyImpact(t *testing.T) {
	if got := Classify(testTime, 20, 0); got.Impact != ImpactPositive {
		t.Fatalf("clear 20°C must be positive, got %s", got.Impact)
	}
	if got := Classify(testTime, -25, 0); got.Impact != ImpactNegative {
		t.Fatalf("-25°C must be negative, got %s", got.Impact)
	}
	if got := Classify(testTime, 10, 0); got.Impact != ImpactNeutral {
		t.Fatalf("cloudy 10°C must be neutral, got %s", got.Impact)
	}
}

func TestImpactMultiplierClamp(t *testing.T) {
	// Negative impact with extreme rain and cold stacks below the floor.
	snapshot := Classify(testTime, -35, 12)
	if snapshot.ImpactMultiplier != 0.4 {
		t.Fatalf("expected floor 0.4, got %v", snapshot.ImpactMultiplier)
	}

	snapshot = Classify(testTime, 20, 0)
	if snapshot.ImpactMultiplier != 1.15 {
		t.Fatalf("expected 1.15 for pleasant weather, got %v", snapshot.ImpactMultiplier)
	}
}

func TestDefaultSnapshotSeasons(t *testing.T) {
	cases := []struct {
		month time.Month
		temp  float64
	}{
		{time.January, -5},
		{time.April, 15},
		{time.July, 28},
		{time.October, 10},
		{time.December, -5},
	}
	for _, tc := range cases {
		at := time.Date(2026, tc.month, 10, 12, 0, 0, 0, time.UTC)
		snapshot := DefaultSnapshot(at)
		if snapshot.Temperature != tc.temp {
			t.Fatalf("%s: expected %v, got %v", tc.month, tc.temp, snapshot.Temperature)
		}
		if snapshot.Impact != ImpactNeutral || snapshot.ImpactMultiplier != 1.0 {
			t.Fatalf("%s: default snapshot must be neutral", tc.month)
		}
	}
}
