package indicator

import "GoldSentinel/internal/model"

// RSI computes the Relative Strength Index using simple rolling means of
// per-step gains and losses over the given period. The first `period`
// elements are undefined (the rolling window of changes is not yet full).
//
// When the mean loss is zero over a window, RS is infinite and RSI
// saturates at 100 instead of dividing by zero. A fully flat window (mean
// gain and mean loss both zero) yields the neutral reading 50.
func RSI(values []float64, period int) (model.Series, error) {
	if period <= 0 {
		return model.Series{}, errf("rsi", "period must be positive, got %d", period)
	}
	if len(values) <= period {
		return model.Series{}, errf("rsi", "need more than %d values, got %d", period, len(values))
	}

	n := len(values)
	gains := make([]float64, n)
	losses := make([]float64, n)
	for t := 1; t < n; t++ {
		change := values[t] - values[t-1]
		if change > 0 {
			gains[t] = change
		} else {
			losses[t] = -change
		}
	}

	out := make([]float64, n)
	var gainSum, lossSum float64
	for t := 1; t < n; t++ {
		gainSum += gains[t]
		lossSum += losses[t]
		if t > period {
			gainSum -= gains[t-period]
			lossSum -= losses[t-period]
		}
		if t < period {
			continue
		}

		meanGain := gainSum / float64(period)
		meanLoss := lossSum / float64(period)
		switch {
		case meanLoss == 0 && meanGain == 0:
			out[t] = 50.0
		case meanLoss == 0:
			out[t] = 100.0
		default:
			rs := meanGain / meanLoss
			out[t] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return model.Series{Values: out, FirstValid: period}, nil
}

// RSICondition classifies the current RSI reading against the configured
// overbought/oversold levels and measures one-step momentum.
func RSICondition(rsi model.Series, overbought, oversold float64) (model.RSIState, error) {
	current, ok := rsi.Last()
	if !ok {
		return model.RSIState{}, errf("rsi", "no defined current value")
	}

	state := model.RSIState{Current: current}
	switch {
	case current >= overbought:
		state.Zone = model.RSIOverbought
		state.Overbought = true
	case current <= oversold:
		state.Zone = model.RSIOversold
		state.Oversold = true
	default:
		state.Zone = model.RSINeutral
	}

	if prev, ok := rsi.Prev(); ok {
		state.Momentum = current - prev
	}
	return state, nil
}
