package prediction

// Baseline hourly values for the Kazakh market, before any multipliers.
func baseValue(t Type) float64 {
	switch t {
	case TypeRevenue:
		return 150000
	case TypeOrdersCount:
		return 45
	case TypeTraffic:
		return 85
	default:
		return 10000
	}
}

func unit(t Type) string {
	switch t {
	case TypeRevenue:
		return "KZT"
	case TypeOrdersCount:
		return "orders"
	case TypeTraffic:
		return "visitors"
	default:
		return "units"
	}
}
