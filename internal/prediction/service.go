package prediction

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EraEKV/restometrics/internal/popularity"
	"github.com/EraEKV/restometrics/internal/weather"
)

var (
	ErrInvalidDateTime = errors.New("invalid dateTime, expected ISO-8601")
	ErrInvalidType     = errors.New("invalid predictionType")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// Service runs the prediction pipeline: time factors, multipliers, weather
// and popularity enrichment, confidence scoring and final assembly.
type Service struct {
	weather     weather.Provider
	popularity  popularity.Predictor
	defaultCity string
}

func NewService(
	weatherProvider weather.Provider,
	predictor popularity.Predictor,
	defaultCity string,
) *Service {
	return &Service{
		weather:     weatherProvider,
		popularity:  predictor,
		defaultCity: defaultCity,
	}
}

type calculation struct {
	predictedValue  float64
	confidenceScore int
	confidenceLevel ConfidenceLevel
	factors         Factors
	baseValue       float64
	description     string
	weather         *weather.Snapshot
	foodPopularity  []popularity.Entry
	salesGrowth     *popularity.SalesGrowth
}

// Generate runs the full pipeline for one request.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
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

	city := s.cityFromAddress(req.Address)
	calc := s.calculate(ctx, predictionType, at, req.Coordinates.Lat, req.Coordinates.Lng, city)

	now := time.Now()
	result := &Result{
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
		PredictedValue:     calc.predictedValue,
		Unit:               unit(predictionType),
		ConfidenceLevel:    calc.confidenceLevel,
		ConfidenceScore:    calc.confidenceScore,
		Factors:            calc.factors,
		BaseValue:          calc.baseValue,
		Description:        calc.description,
		Weather:            calc.weather,
		FoodPopularity:     calc.foodPopularity,
		SalesGrowth:        calc.salesGrowth,
		CreateDate:         now,
		UpdateDate:         now,
	}

	return result, nil
}

// calculate is the pipeline itself. Weather runs first because the
// popularity forecast consumes the snapshot; neither stage can fail the
// request.
func (s *Service) calculate(
	ctx context.Context,
	predictionType Type,
	at time.Time,
	lat, lng float64,
	city string,
) calculation {
	tf := TimeFactorsAt(at)
	base := baseValue(predictionType)

	weekdayMult := weekdayMultiplier(tf)
	hourMult := hourMultiplier(tf.Hour)
	seasonalMult := seasonalMultiplier(tf.Month)

	var snapshot *weather.Snapshot
	weatherMult := 1.0
	if lat != 0 || lng != 0 {
		snapshot = s.weather.Forecast(ctx, lat, lng, at)
		weatherMult = snapshot.ImpactMultiplier
	}

	forecast := s.popularity.Predict(ctx, popularity.Input{
		Hour:             tf.Hour,
		DayOfWeek:        tf.DayOfWeek,
		IsWeekend:        tf.IsWeekend,
		IsHoliday:        tf.IsHoliday,
		SeasonMultiplier: seasonalMult,
		Weather:          snapshot,
		City:             city,
	})

	// The sales-growth estimate folds into the weather component so the
	// predicted value stays a product of exactly four multipliers.
	if forecast.SalesGrowth.Percentage != 0 {
		weatherMult *= 1 + forecast.SalesGrowth.Percentage/100
	}

	predicted := math.Round(base * weekdayMult * hourMult * seasonalMult * weatherMult)

	hasPopularity := len(forecast.FoodPopularity) > 0
	score := confidenceScore(tf, snapshot, hasPopularity)

	factors := Factors{
		TimeFactors:        tf,
		HistoricalAverage:  base,
		SeasonalMultiplier: seasonalMult,
		WeekdayMultiplier:  weekdayMult,
		HourMultiplier:     hourMult,
		WeatherMultiplier:  weatherMult,
	}
	if snapshot != nil {
		factors.WeatherCondition = snapshot.Description
	}

	growth := forecast.SalesGrowth
	return calculation{
		predictedValue:  predicted,
		confidenceScore: score,
		confidenceLevel: confidenceLevel(score),
		factors:         factors,
		baseValue:       base,
		description:     describe(predictionType, tf, snapshot),
		weather:         snapshot,
		foodPopularity:  forecast.FoodPopularity,
		salesGrowth:     &growth,
	}
}

func (s *Service) cityFromAddress(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) > 0 {
		if city := strings.TrimSpace(parts[len(parts)-1]); city != "" {
			return city
		}
	}
	return s.defaultCity
}

// Success wraps a result in the standard response envelope.
func Success(result *Result, message string) Response {
	return Response{Success: true, Message: message, Data: result}
}

// Failure builds the generic error envelope; internals never leak.
func Failure(message string) Response {
	return Response{Success: false, Message: message}
}
