package service

// MovingAverage averages the last window values; with fewer values than the
// window it averages all of them, and no values give 0.
func MovingAverage(values []float64, window int) float64 {
	if len(values) == 0 || window <= 0 {
		return 0
	}
	if len(values) > window {
		values = values[len(values)-window:]
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
