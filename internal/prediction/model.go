package prediction

import (
	"time"

	"github.com/EraEKV/restometrics/internal/popularity"
	"github.com/EraEKV/restometrics/internal/weather"
)

type Type string

const (
	TypeRevenue     Type = "revenue"
	TypeOrdersCount Type = "orders_count"
	TypeTraffic     Type = "traffic"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRevenue, TypeOrdersCount, TypeTraffic:
		return true
	}
	return false
}

type Period string

const (
	PeriodHourly Period = "hourly"
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodHourly, PeriodDaily, PeriodWeekly:
		return true
	}
	return false
}

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// TimeFactors are the calendar attributes a prediction is derived from.
// Day of week follows time.Weekday numbering: 0 = Sunday.
type TimeFactors struct {
	DayOfWeek int  `json:"dayOfWeek"`
	Hour      int  `json:"hour"`
	Month     int  `json:"month"`
	IsWeekend bool `json:"isWeekend"`
	IsHoliday bool `json:"isHoliday"`
}

// Multipliers holds the four independent scalars and their product.
type Multipliers struct {
	Seasonal float64 `json:"seasonal"`
	Weekday  float64 `json:"weekday"`
	Hour     float64 `json:"hour"`
	Weather  float64 `json:"weather"`
	Total    float64 `json:"total"`
}

// Factors is the breakdown returned with every prediction.
type Factors struct {
	TimeFactors        TimeFactors `json:"timeFactors"`
	HistoricalAverage  float64     `json:"historicalAverage"`
	SeasonalMultiplier float64     `json:"seasonalMultiplier"`
	WeekdayMultiplier  float64     `json:"weekdayMultiplier"`
	HourMultiplier     float64     `json:"hourMultiplier"`
	WeatherMultiplier  float64     `json:"weatherMultiplier,omitempty"`
	WeatherCondition   string      `json:"weatherCondition,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

type RestaurantInfo struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	DateTime    time.Time   `json:"dateTime"`
}

// Result is the aggregate prediction record. Created once per request,
// never mutated afterwards.
type Result struct {
	ID                 string                  `json:"id"`
	Restaurant         RestaurantInfo          `json:"restaurant"`
	PredictionDateTime time.Time               `json:"predictionDateTime"`
	PredictionType     Type                    `json:"predictionType"`
	Period             Period                  `json:"period"`
	PredictedValue     float64                 `json:"predictedValue"`
	Unit               string                  `json:"unit"`
	ConfidenceLevel    ConfidenceLevel         `json:"confidenceLevel"`
	ConfidenceScore    int                     `json:"confidenceScore"`
	Factors            Factors                 `json:"factors"`
	BaseValue          float64                 `json:"baseValue"`
	Description        string                  `json:"description"`
	Weather            *weather.Snapshot       `json:"weather,omitempty"`
	FoodPopularity     []popularity.Entry      `json:"foodPopularity,omitempty"`
	SalesGrowth        *popularity.SalesGrowth `json:"salesGrowth,omitempty"`
	CreateDate         time.Time               `json:"createDate"`
	UpdateDate         time.Time               `json:"updateDate"`
}

// GenerateRequest is the body of POST /predictions/generate.
type GenerateRequest struct {
	Name           string      `json:"name" binding:"required"`
	Address        string      `json:"address" binding:"required"`
	Coordinates    Coordinates `json:"coordinates" binding:"required"`
	DateTime       string      `json:"dateTime" binding:"required"`
	PredictionType Type        `json:"predictionType"`
	Period         Period      `json:"period"`
}

type Response struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    *Result `json:"data,omitempty"`
}
