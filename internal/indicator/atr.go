package indicator

import (
	"math"

	"GoldSentinel/internal/model"
)

// ATR computes the Average True Range as a rolling mean of per-bar true
// range over the given period. True range at t is the largest of
// high-low, |high-prevClose| and |low-prevClose|; the first bar has no
// previous close and degenerates to high-low. The first `period` elements
// are undefined.
func ATR(high, low, close []float64, period int) (model.Series, error) {
	if period <= 0 {
		return model.Series{}, errf("atr", "period must be positive, got %d", period)
	}
	n := len(close)
	if len(high) != n || len(low) != n {
		return model.Series{}, errf("atr", "column lengths differ: high=%d low=%d close=%d", len(high), len(low), n)
	}
	if n <= period {
		return model.Series{}, errf("atr", "need more than %d bars, got %d", period, n)
	}

	tr := make([]float64, n)
	tr[0] = high[0] - low[0]
	for t := 1; t < n; t++ {
		hl := high[t] - low[t]
		hc := math.Abs(high[t] - close[t-1])
		lc := math.Abs(low[t] - close[t-1])
		tr[t] = math.Max(hl, math.Max(hc, lc))
	}

	out := make([]float64, n)
	var sum float64
	for t := 1; t < n; t++ {
		sum += tr[t]
		if t > period {
			sum -= tr[t-period]
		}
		if t >= period {
			out[t] = sum / float64(period)
		}
	}
	return model.Series{Values: out, FirstValid: period}, nil
}
