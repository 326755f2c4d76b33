package utils

import "math"

// RoundWithOneDecimalPlace is used for percentages.
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
