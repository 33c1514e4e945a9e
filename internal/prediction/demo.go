package prediction

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EraEKV/restometrics/internal/popularity"
)

// DemoGenerator produces dashboard-ready predictions without touching any
// external service. Weather variability is simulated from a seedable random
// source, so it is excluded from deterministic test suites unless seeded.
//
// It intentionally keeps the older coarse tables (season groups, the
// 40..95 confidence clamp) so demo output differs visibly from the live
// pipeline.
type DemoGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDemoGenerator(seed int64) *DemoGenerator {
	return &DemoGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *DemoGenerator) Generate(req GenerateRequest) (*Result, error) {
	at, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	predictionType := req.PredictionType
	if predictionType == "" {
		predictionType = TypeRevenue
	}
	if !predictionType.Valid() {
		return nil, ErrInvalidType
	}

	period := req.Period
	if period == "" {
		period = PeriodHourly
	}
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}

	tf := TimeFactorsAt(at)
	base := demoBaseValue(predictionType)

	// One generator is shared across requests; rand.Rand is not safe for
	// concurrent use.
	g.mu.Lock()
	multipliers := g.demoMultipliers(tf)
	foodPopularity := g.demoFoodPopularity()
	weatherCondition := g.randomCondition()
	g.mu.Unlock()

	predictedValue := math.Round(base*multipliers.Total*100) / 100

	score := demoConfidence(tf, multipliers)
	growth := g.demoSalesGrowth(tf, multipliers.Weather)

	factors := Factors{
		TimeFactors:        tf,
		HistoricalAverage:  base,
		SeasonalMultiplier: multipliers.Seasonal,
		WeekdayMultiplier:  multipliers.Weekday,
		HourMultiplier:     multipliers.Hour,
		WeatherMultiplier:  multipliers.Weather,
		WeatherCondition:   weatherCondition,
	}

	now := time.Now()
	return &Result{
		ID: uuid.New().String(),
		Restaurant: RestaurantInfo{
			Name:        req.Name,
			Address:     req.Address,
			Coordinates: req.Coordinates,
			DateTime:    at,
		},
		PredictionDateTime: at,
		PredictionType:     predictionType,
		Period:             period,
		PredictedValue:     predictedValue,
		Unit:               unit(predictionType),
		ConfidenceLevel:    confidenceLevel(score),
		ConfidenceScore:    score,
		Factors:            factors,
		BaseValue:          base,
		Description:        demoDescribe(predictionType, tf),
		FoodPopularity:     foodPopularity,
		SalesGrowth:        &growth,
		CreateDate:         now,
		UpdateDate:         now,
	}, nil
}

func demoBaseValue(t Type) float64 {
	switch t {
	case TypeOrdersCount:
		return 45
	case TypeTraffic:
		return 120
	default:
		return 12000
	}
}

func (g *DemoGenerator) demoMultipliers(tf TimeFactors) Multipliers {
	seasonal := demoSeasonal(tf.Month)

	weekday := 1.0
	switch {
	case tf.IsWeekend:
		weekday = 1.3
	case tf.IsHoliday:
		weekday = 1.5
	case tf.DayOfWeek == 5:
		weekday = 1.2
	}

	hour := demoHour(tf.Hour)

	// Simulated weather variability, uniform in [0.85, 1.15).
	weatherMult := 0.85 + g.rng.Float64()*0.3

	total := seasonal * weekday * hour * weatherMult
	return Multipliers{
		Seasonal: round2(seasonal),
		Weekday:  round2(weekday),
		Hour:     round2(hour),
		Weather:  round2(weatherMult),
		Total:    round2(total),
	}
}

func demoSeasonal(month int) float64 {
	switch {
	case month == 12 || month <= 2:
		return 1.1
	case month >= 3 && month <= 5:
		return 1.05
	case month >= 6 && month <= 8:
		return 0.95
	default:
		return 1.0
	}
}

func demoHour(hour int) float64 {
	switch {
	case hour >= 12 && hour <= 14:
		return 1.4
	case hour >= 18 && hour <= 20:
		return 1.5
	case hour >= 8 && hour <= 10:
		return 1.2
	case hour >= 21 && hour <= 23:
		return 1.1
	default:
		return 0.7
	}
}

func demoConfidence(tf TimeFactors, multipliers Multipliers) int {
	confidence := 70

	if tf.Hour >= 12 && tf.Hour <= 14 {
		confidence += 10
	}
	if tf.Hour >= 18 && tf.Hour <= 20 {
		confidence += 10
	}
	if tf.Hour < 6 {
		confidence -= 20
	}
	if multipliers.Total > 1.5 || multipliers.Total < 0.7 {
		confidence -= 15
	}

	if confidence < 40 {
		confidence = 40
	}
	if confidence > 95 {
		confidence = 95
	}
	return confidence
}

func demoDescribe(t Type, tf TimeFactors) string {
	timeOfDay := "late hours"
	switch {
	case tf.Hour < 12:
		timeOfDay = "morning"
	case tf.Hour < 17:
		timeOfDay = "daytime"
	case tf.Hour < 21:
		timeOfDay = "evening"
	}

	dayKind := "working day"
	if tf.IsWeekend {
		dayKind = "weekend"
	}

	return "Forecast of " + typeText(t) + " for " + dayNames[tf.DayOfWeek] +
		". A " + dayKind + " " + timeOfDay + " slot."
}

var demoCatalog = []popularity.Entry{
	{
		Category:   popularity.CategoryHotDishes,
		Dishes:     []string{"Plov", "Beshbarmak", "Manty", "Lagman"},
		Trend:      popularity.TrendRising,
		Confidence: 85,
	},
	{
		Category:   popularity.CategorySoups,
		Dishes:     []string{"Shurpa", "Nauryz kozhe", "Mastava"},
		Trend:      popularity.TrendStable,
		Confidence: 90,
	},
	{
		Category:   popularity.CategoryMeatDishes,
		Dishes:     []string{"Kazy", "Shashlik", "Kuyrdak"},
		Trend:      popularity.TrendRising,
		Confidence: 80,
	},
	{
		Category:   popularity.CategoryBeverages,
		Dishes:     []string{"Tea", "Coffee", "Kumys", "Shubat"},
		Trend:      popularity.TrendStable,
		Confidence: 88,
	},
}

func (g *DemoGenerator) demoFoodPopularity() []popularity.Entry {
	picked := make([]popularity.Entry, len(demoCatalog))
	copy(picked, demoCatalog)
	g.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:3]
}

func (g *DemoGenerator) demoSalesGrowth(tf TimeFactors, weatherMult float64) popularity.SalesGrowth {
	growth := 5.0
	factors := []string{}

	if tf.IsWeekend {
		growth += 10
		factors = append(factors, "Weekends increase restaurant visits")
	}
	if tf.Hour >= 18 && tf.Hour <= 20 {
		growth += 8
		factors = append(factors, "Evening hours are the demand peak")
	}
	if weatherMult < 1.0 {
		growth += 5
		factors = append(factors, "Bad weather pushes guests indoors")
	}
	if tf.IsHoliday {
		growth += 15
		factors = append(factors, "A public holiday lifts demand significantly")
	}

	description := "Stable sales dynamics expected"
	if growth > 15 {
		description = "Significant sales growth expected"
	} else if growth > 8 {
		description = "Moderate sales growth expected"
	}

	if len(factors) == 0 {
		factors = []string{"Standard market conditions"}
	}

	return popularity.SalesGrowth{
		Percentage:  math.Round(growth),
		Factors:     factors,
		Description: description,
	}
}

func (g *DemoGenerator) randomCondition() string {
	conditions := []string{
		"Clear", "Cloudy", "Light rain", "Snow", "Fog", "Windy", "Sunny",
	}
	return conditions[g.rng.Intn(len(conditions))]
}
