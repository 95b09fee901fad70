package pkg

import "math"

// RoundHalfUp rounds x to the given number of decimal places, with halves
// rounded towards positive infinity (2.5 -> 3, -2.5 -> -2)
func RoundHalfUp(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Floor(x*p+0.5) / p
}

func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func Float64Ptr(v float64) *float64 {
	return &v
}
