package strategy

import (
	"fmt"
	"math"

	"GoldSentinel/internal/model"
)

// analyzeTrend judges the trend/EMA factor. A crossover fired this step
// dominates; otherwise a sufficiently separated trend gives a
// reduced-confidence directional call.
func analyzeTrend(snap *model.IndicatorSnapshot, p Params) model.FactorJudgment {
	j := model.FactorJudgment{Name: "trend", Direction: model.SignalHold}
	cross := snap.Crossover
	trend := snap.Trend

	switch cross.Type {
	case model.CrossBullish:
		j.Direction = model.SignalBuy
		j.Strength = cross.Strength
		j.Reasons = append(j.Reasons, fmt.Sprintf("EMA-%d crossed above EMA-%d", p.EMAShortPeriod, p.EMALongPeriod))
	case model.CrossBearish:
		j.Direction = model.SignalSell
		j.Strength = cross.Strength
		j.Reasons = append(j.Reasons, fmt.Sprintf("EMA-%d crossed below EMA-%d", p.EMAShortPeriod, p.EMALongPeriod))
	default:
		switch {
		case trend.Direction == model.TrendBullish && trend.Strength > 2.0:
			j.Direction = model.SignalBuy
			j.Strength = trend.Strength * 0.5
			j.Reasons = append(j.Reasons, fmt.Sprintf("Strong bullish trend (separation: %.2f%%)", trend.SeparationPct))
		case trend.Direction == model.TrendBearish && trend.Strength > 2.0:
			j.Direction = model.SignalSell
			j.Strength = trend.Strength * 0.5
			j.Reasons = append(j.Reasons, fmt.Sprintf("Strong bearish trend (separation: %.2f%%)", trend.SeparationPct))
		default:
			j.Reasons = append(j.Reasons, "No significant EMA signal")
		}
	}
	return j
}

// analyzeRSI judges the RSI factor: contrarian at the extremes, momentum
// driven in between.
func analyzeRSI(snap *model.IndicatorSnapshot, p Params) model.FactorJudgment {
	j := model.FactorJudgment{Name: "rsi", Direction: model.SignalHold}
	rsi := snap.RSIState

	switch {
	case rsi.Oversold:
		j.Direction = model.SignalBuy
		j.Strength = (p.RSIOversold - rsi.Current) / 10
		j.Reasons = append(j.Reasons, fmt.Sprintf("RSI oversold at %.1f", rsi.Current))
	case rsi.Overbought:
		j.Direction = model.SignalSell
		j.Strength = (rsi.Current - p.RSIOverbought) / 10
		j.Reasons = append(j.Reasons, fmt.Sprintf("RSI overbought at %.1f", rsi.Current))
	case rsi.Momentum > 5 && rsi.Current < 60:
		j.Direction = model.SignalBuy
		j.Strength = math.Min(rsi.Momentum/10, 2.0)
		j.Reasons = append(j.Reasons, fmt.Sprintf("Strong RSI momentum (+%.1f)", rsi.Momentum))
	case rsi.Momentum < -5 && rsi.Current > 40:
		j.Direction = model.SignalSell
		j.Strength = math.Min(math.Abs(rsi.Momentum)/10, 2.0)
		j.Reasons = append(j.Reasons, fmt.Sprintf("Negative RSI momentum (%.1f)", rsi.Momentum))
	default:
		j.Reasons = append(j.Reasons, fmt.Sprintf("RSI neutral at %.1f", rsi.Current))
	}
	return j
}

// analyzeVolume judges the volume factor. Volume only confirms, so the
// direction is always NEUTRAL; thin volume carries a negative strength.
func analyzeVolume(snap *model.IndicatorSnapshot) model.FactorJudgment {
	j := model.FactorJudgment{Name: "volume", Direction: model.SignalNeutral}
	vol := snap.Volume

	switch {
	case vol.HighVolume:
		j.Strength = math.Min((vol.Ratio-1.0)*2, 3.0)
		j.Reasons = append(j.Reasons, fmt.Sprintf("High volume confirmation (%.1fx average)", vol.Ratio))
	case vol.Ratio < 0.5:
		j.Strength = -1.0
		j.Reasons = append(j.Reasons, fmt.Sprintf("Low volume warning (%.1fx average)", vol.Ratio))
	default:
		j.Reasons = append(j.Reasons, fmt.Sprintf("Normal volume (%.1fx average)", vol.Ratio))
	}
	return j
}

// analyzePriceStructure judges the price-structure factor by proximity to
// the pivot-derived support and resistance levels.
func analyzePriceStructure(snap *model.IndicatorSnapshot) model.FactorJudgment {
	j := model.FactorJudgment{Name: "price_structure", Direction: model.SignalHold}
	price := snap.CurrentPrice
	levels := snap.Levels

	switch {
	case price <= levels.Support*1.01:
		j.Direction = model.SignalBuy
		j.Strength = 2.0
		j.Reasons = append(j.Reasons, fmt.Sprintf("Price near support level (%.2f)", levels.Support))
	case price >= levels.Resistance*0.99:
		j.Direction = model.SignalSell
		j.Strength = 2.0
		j.Reasons = append(j.Reasons, fmt.Sprintf("Price near resistance level (%.2f)", levels.Resistance))
	default:
		j.Reasons = append(j.Reasons, fmt.Sprintf("Price between support (%.2f) and resistance (%.2f)", levels.Support, levels.Resistance))
	}

	if snap.Trend.Strength > 3.0 {
		j.Reasons = append(j.Reasons, fmt.Sprintf("Strong %s trend", lowerTrend(snap.Trend.Direction)))
	}
	return j
}

func lowerTrend(d model.TrendDirection) string {
	switch d {
	case model.TrendBullish:
		return "bullish"
	case model.TrendBearish:
		return "bearish"
	default:
		return "neutral"
	}
}
