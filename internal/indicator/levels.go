package indicator

import "GoldSentinel/internal/model"

// SupportResistance derives classical pivot-point levels from the trailing
// lookback window: pivot = (recentHigh + recentLow + currentClose) / 3,
// resistance = 2*pivot - recentLow, support = 2*pivot - recentHigh.
func SupportResistance(high, low, close []float64, lookback int) (model.Levels, error) {
	if lookback <= 0 {
		return model.Levels{}, errf("support_resistance", "lookback must be positive, got %d", lookback)
	}
	n := len(close)
	if len(high) != n || len(low) != n {
		return model.Levels{}, errf("support_resistance", "column lengths differ: high=%d low=%d close=%d", len(high), len(low), n)
	}
	if n == 0 {
		return model.Levels{}, errf("support_resistance", "empty input series")
	}

	start := n - lookback
	if start < 0 {
		start = 0
	}
	recentHigh := high[start]
	recentLow := low[start]
	for i := start + 1; i < n; i++ {
		if high[i] > recentHigh {
			recentHigh = high[i]
		}
		if low[i] < recentLow {
			recentLow = low[i]
		}
	}

	pivot := (recentHigh + recentLow + close[n-1]) / 3
	return model.Levels{
		Support:    2*pivot - recentHigh,
		Resistance: 2*pivot - recentLow,
		Pivot:      pivot,
		RecentHigh: recentHigh,
		RecentLow:  recentLow,
	}, nil
}
