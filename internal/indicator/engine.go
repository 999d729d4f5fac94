package indicator

import "GoldSentinel/internal/model"

// Params holds the numeric knobs for a full indicator pass. A Params value
// is immutable once constructed; the engine keeps no other state.
type Params struct {
	EMAShortPeriod int
	EMALongPeriod  int
	RSIPeriod      int
	RSIOverbought  float64
	RSIOversold    float64
	ATRPeriod      int
	LevelLookback  int
	VolumePeriod   int
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		EMAShortPeriod: 9,
		EMALongPeriod:  21,
		RSIPeriod:      14,
		RSIOverbought:  70,
		RSIOversold:    30,
		ATRPeriod:      14,
		LevelLookback:  20,
		VolumePeriod:   20,
	}
}

// Compute runs every indicator over the bar series and assembles a fresh
// snapshot. Any failure surfaces as an *Error; no partially defined
// snapshot is ever returned.
func Compute(series *model.BarSeries, p Params) (*model.IndicatorSnapshot, error) {
	if series == nil || series.Len() == 0 {
		return nil, errf("snapshot", "empty bar series")
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	volumes := series.Volumes()

	emaShort, err := EMA(closes, p.EMAShortPeriod)
	if err != nil {
		return nil, err
	}
	emaLong, err := EMA(closes, p.EMALongPeriod)
	if err != nil {
		return nil, err
	}
	rsi, err := RSI(closes, p.RSIPeriod)
	if err != nil {
		return nil, err
	}
	atr, err := ATR(highs, lows, closes, p.ATRPeriod)
	if err != nil {
		return nil, err
	}
	levels, err := SupportResistance(highs, lows, closes, p.LevelLookback)
	if err != nil {
		return nil, err
	}
	volume, err := VolumeProfile(volumes, p.VolumePeriod)
	if err != nil {
		return nil, err
	}
	trend, err := TrendStrength(emaShort, emaLong)
	if err != nil {
		return nil, err
	}
	rsiState, err := RSICondition(rsi, p.RSIOverbought, p.RSIOversold)
	if err != nil {
		return nil, err
	}

	last := series.Last()
	return &model.IndicatorSnapshot{
		EMAShort:     emaShort,
		EMALong:      emaLong,
		RSI:          rsi,
		ATR:          atr,
		Levels:       levels,
		Volume:       volume,
		Trend:        trend,
		Crossover:    Crossover(emaShort, emaLong),
		RSIState:     rsiState,
		CurrentPrice: last.Close,
		Time:         last.Time,
	}, nil
}
