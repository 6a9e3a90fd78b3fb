package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundTo2Decimals rounds half away from zero to cents.
func roundTo2Decimals(value float64) float64 {
	return roundTo(value, moneyPlaces)
}

func roundRate(value float64) float64 {
	return roundTo(value, ratePlaces)
}

func roundPercent(value float64) float64 {
	return roundTo(value, percentPlaces)
}

func roundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}
