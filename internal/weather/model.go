package weather

import "time"

type Condition string

const (
	ConditionClear  Condition = "clear"
	ConditionCloudy Condition = "cloudy"
	ConditionRainy  Condition = "rainy"
	ConditionSnowy  Condition = "snowy"
	ConditionStormy Condition = "stormy"
)

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// Snapshot is the weather picture for one point in time, already classified
// for restaurant-demand purposes. Read-only once produced.
type Snapshot struct {
	DateTime         time.Time `json:"dateTime"`
	Temperature      float64   `json:"temperature"`
	Rainfall         float64   `json:"rainfall"`
	Humidity         *float64  `json:"humidity,omitempty"`
	Pressure         *float64  `json:"pressure,omitempty"`
	WindSpeed        *float64  `json:"windSpeed,omitempty"`
	Condition        Condition `json:"condition"`
	Impact           Impact    `json:"impact"`
	ImpactMultiplier float64   `json:"impactMultiplier"`
	Description      string    `json:"description"`
}

// openMeteoResponse mirrors the subset of the Open-Meteo forecast payload
// the client reads. Timestamps are unix seconds (timeformat=unixtime).
type openMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hourly    struct {
		Time          []int64   `json:"time"`
		Temperature2m []float64 `json:"temperature_2m"`
		Rain          []float64 `json:"rain"`
		Humidity2m    []float64 `json:"relative_humidity_2m"`
		PressureMsl   []float64 `json:"pressure_msl"`
		WindSpeed10m  []float64 `json:"wind_speed_10m"`
	} `json:"hourly"`
}
