package indicator

import (
	"math"

	"GoldSentinel/internal/model"
)

// maxTrendStrength caps trend and crossover strength values.
const maxTrendStrength = 5.0

// TrendStrength measures EMA separation at the last index:
// separation% = |short-long| / long * 100, strength = min(separation%/2, 5).
func TrendStrength(emaShort, emaLong model.Series) (model.Trend, error) {
	short, okS := emaShort.Last()
	long, okL := emaLong.Last()
	if !okS || !okL {
		return model.Trend{}, errf("trend_strength", "no defined current EMA values")
	}
	if long == 0 {
		return model.Trend{}, errf("trend_strength", "long EMA is zero, separation undefined")
	}

	separation := math.Abs(short-long) / long * 100
	trend := model.Trend{
		SeparationPct: separation,
		Short:         short,
		Long:          long,
	}
	switch {
	case short > long:
		trend.Direction = model.TrendBullish
		trend.Strength = math.Min(separation/2, maxTrendStrength)
	case short < long:
		trend.Direction = model.TrendBearish
		trend.Strength = math.Min(separation/2, maxTrendStrength)
	default:
		trend.Direction = model.TrendNeutral
	}
	return trend, nil
}

// Crossover detects an EMA crossover between the last two index positions.
// With fewer than two defined points it reports CrossNone with zero strength.
func Crossover(emaShort, emaLong model.Series) model.Crossover {
	curShort, ok1 := emaShort.Last()
	curLong, ok2 := emaLong.Last()
	prevShort, ok3 := emaShort.Prev()
	prevLong, ok4 := emaLong.Prev()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return model.Crossover{Type: model.CrossNone}
	}

	cross := model.Crossover{
		Type:               model.CrossNone,
		CurrentSeparation:  math.Abs(curShort - curLong),
		PreviousSeparation: math.Abs(prevShort - prevLong),
	}
	switch {
	case prevShort <= prevLong && curShort > curLong:
		cross.Type = model.CrossBullish
	case prevShort >= prevLong && curShort < curLong:
		cross.Type = model.CrossBearish
	default:
		return cross
	}
	if curLong != 0 {
		cross.Strength = math.Min(math.Abs(curShort-curLong)/curLong*100, maxTrendStrength)
	}
	return cross
}
