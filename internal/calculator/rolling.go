package calculator

import (
	"errors"
	"math"
)

// RollingMean computes the simple moving average of values over the given
// window, aligned with the input. Positions without a full trailing window
// hold NaN, so a series shorter than the window yields no known points.
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	means := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			means[i] = sum / float64(window)
		} else {
			means[i] = math.NaN()
		}
	}
	return means, nil
}

// CalculateSMA computes the simple moving average of the trailing window of
// prices.
func CalculateSMA(prices []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(prices) < window {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - window; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(window), nil
}
