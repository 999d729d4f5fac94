package indicator

import "GoldSentinel/internal/model"

// EMA computes the exponential moving average with smoothing factor
// alpha = 2/(period+1). The series is seeded with the first input value,
// so every index is defined (no warm-up prefix).
func EMA(values []float64, period int) (model.Series, error) {
	if period <= 0 {
		return model.Series{}, errf("ema", "period must be positive, got %d", period)
	}
	if len(values) == 0 {
		return model.Series{}, errf("ema", "empty input series")
	}

	alpha := 2.0 / float64(period+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for t := 1; t < len(values); t++ {
		out[t] = alpha*values[t] + (1-alpha)*out[t-1]
	}
	return model.Series{Values: out, FirstValid: 0}, nil
}
