package popularity

import "github.com/EraEKV/restometrics/internal/weather"

type Category string

const (
	CategoryHotDishes         Category = "HOT_DISHES"
	CategoryColdDishes        Category = "COLD_DISHES"
	CategorySoups             Category = "SOUPS"
	CategorySalads            Category = "SALADS"
	CategoryDesserts          Category = "DESSERTS"
	CategoryBeverages         Category = "BEVERAGES"
	CategoryFastFood          Category = "FAST_FOOD"
	CategoryTraditionalKazakh Category = "TRADITIONAL_KAZAKH"
	CategoryMeatDishes        Category = "MEAT_DISHES"
	CategoryVegetarian        Category = "VEGETARIAN"
)

type Trend string

const (
	TrendRising    Trend = "RISING"
	TrendStable    Trend = "STABLE"
	TrendDeclining Trend = "DECLINING"
)

// Entry ranks one food category for the requested time slot. Dish order is
// presentation order.
type Entry struct {
	Category   Category `json:"category"`
	Dishes     []string `json:"dishes"`
	Trend      Trend    `json:"trend"`
	Confidence int      `json:"confidence"`
}

type SalesGrowth struct {
	Percentage  float64  `json:"percentage"`
	Factors     []string `json:"factors"`
	Description string   `json:"description"`
}

type Forecast struct {
	FoodPopularity []Entry     `json:"foodPopularity"`
	SalesGrowth    SalesGrowth `json:"salesGrowth"`
}

// Input is the context handed to the predictor: time attributes, the
// seasonal multiplier already computed by the pipeline, and an optional
// weather snapshot.
type Input struct {
	Hour             int
	DayOfWeek        int
	IsWeekend        bool
	IsHoliday        bool
	SeasonMultiplier float64
	Weather          *weather.Snapshot
	City             string
}
