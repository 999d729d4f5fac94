package strategy

import (
	"GoldSentinel/internal/indicator"
	"GoldSentinel/internal/model"

	"fmt"
	"math"
)

// Weights are the fixed per-factor weights of the composite vote.
type Weights struct {
	Trend          float64
	RSI            float64
	Volume         float64
	PriceStructure float64
}

// Params holds the composer configuration. Immutable once constructed.
type Params struct {
	Weights               Weights
	MinSignalScore        float64
	StopLossATRMultiplier float64
	TakeProfitRatio       float64
	EMAShortPeriod        int
	EMALongPeriod         int
	RSIOverbought         float64
	RSIOversold           float64
}

// DefaultParams returns the standard composer configuration.
func DefaultParams() Params {
	return Params{
		Weights:               Weights{Trend: 0.4, RSI: 0.3, Volume: 0.2, PriceStructure: 0.1},
		MinSignalScore:        1.0,
		StopLossATRMultiplier: 2.0,
		TakeProfitRatio:       2.0,
		EMAShortPeriod:        9,
		EMALongPeriod:         21,
		RSIOverbought:         70,
		RSIOversold:           30,
	}
}

// Analyze runs the full pipeline over a validated bar series: indicator
// snapshot, the four factor analyzers, and the weighted composer. Indicator
// failures never escape; they come back as an ERROR-direction signal.
func Analyze(series *model.BarSeries, ip indicator.Params, sp Params) *model.CompositeSignal {
	snap, err := indicator.Compute(series, ip)
	if err != nil {
		return ErrorSignal(series, err)
	}
	sig := Evaluate(snap, sp)
	sig.Symbol = series.Symbol
	sig.Timeframe = series.Timeframe
	return sig
}

// Evaluate combines the four factor judgments into a composite signal with
// risk levels and a textual recommendation.
func Evaluate(snap *model.IndicatorSnapshot, p Params) *model.CompositeSignal {
	trend := analyzeTrend(snap, p)
	rsi := analyzeRSI(snap, p)
	volume := analyzeVolume(snap)
	structure := analyzePriceStructure(snap)

	// Weighted vote into per-direction buckets. NEUTRAL judgments (volume)
	// carry no directional vote.
	scores := map[model.Direction]float64{
		model.SignalBuy:  0,
		model.SignalSell: 0,
		model.SignalHold: 0,
	}
	weighted := []struct {
		j model.FactorJudgment
		w float64
	}{
		{trend, p.Weights.Trend},
		{rsi, p.Weights.RSI},
		{volume, p.Weights.Volume},
		{structure, p.Weights.PriceStructure},
	}
	for _, c := range weighted {
		if _, ok := scores[c.j.Direction]; ok {
			scores[c.j.Direction] += c.j.Strength * c.w
		}
	}

	direction := winningDirection(scores)
	strength := scores[direction]

	// Activation threshold: weak directional scores fall back to HOLD but
	// keep their score as strength.
	if direction != model.SignalHold && strength < p.MinSignalScore {
		direction = model.SignalHold
	}

	consensus := directionConsensus(trend, rsi, structure)
	confidence := math.Min(strength*consensus, 10.0)

	sig := &model.CompositeSignal{
		Time:         snap.Time,
		Direction:    direction,
		Strength:     strength,
		Confidence:   confidence,
		Consensus:    consensus,
		BuyScore:     scores[model.SignalBuy],
		SellScore:    scores[model.SignalSell],
		HoldScore:    scores[model.SignalHold],
		CurrentPrice: snap.CurrentPrice,
		Factors:      []model.FactorJudgment{trend, rsi, volume, structure},
		Risk:         riskLevels(snap, direction, p),
		Context:      marketContext(snap),
	}
	sig.Recommendation = recommendation(direction, confidence)
	return sig
}

// winningDirection picks the highest-scoring bucket. Ties resolve in the
// fixed order BUY, SELL, HOLD so the outcome is deterministic.
func winningDirection(scores map[model.Direction]float64) model.Direction {
	best := model.SignalBuy
	for _, d := range []model.Direction{model.SignalSell, model.SignalHold} {
		if scores[d] > scores[best] {
			best = d
		}
	}
	return best
}

// directionConsensus returns the majority fraction among the directional
// factors. Volume is excluded: it has no directional vote.
func directionConsensus(factors ...model.FactorJudgment) float64 {
	counts := map[model.Direction]int{}
	max := 0
	for _, f := range factors {
		counts[f.Direction]++
		if counts[f.Direction] > max {
			max = counts[f.Direction]
		}
	}
	return float64(max) / float64(len(factors))
}

func marketContext(snap *model.IndicatorSnapshot) model.MarketContext {
	status := "NORMAL"
	if snap.Volume.HighVolume {
		status = "HIGH"
	}
	return model.MarketContext{
		TrendDirection: snap.Trend.Direction,
		TrendStrength:  snap.Trend.Strength,
		RSIZone:        snap.RSIState.Zone,
		VolumeStatus:   status,
		Support:        snap.Levels.Support,
		Resistance:     snap.Levels.Resistance,
	}
}

// recommendation renders the direction and confidence tier as advice text.
func recommendation(direction model.Direction, confidence float64) string {
	if direction != model.SignalBuy && direction != model.SignalSell {
		return fmt.Sprintf("HOLD - No clear trading opportunity (Score: %.1f/10)", confidence)
	}
	switch {
	case confidence >= 7.0:
		return fmt.Sprintf("STRONG %s - High confidence signal (Score: %.1f/10)", direction, confidence)
	case confidence >= 5.0:
		return fmt.Sprintf("%s - Moderate confidence signal (Score: %.1f/10)", direction, confidence)
	default:
		return fmt.Sprintf("WEAK %s - Low confidence signal (Score: %.1f/10)", direction, confidence)
	}
}

// ErrorSignal wraps an indicator failure as a terminal ERROR signal.
func ErrorSignal(series *model.BarSeries, err error) *model.CompositeSignal {
	sig := &model.CompositeSignal{
		Direction:      model.SignalError,
		ErrorMessage:   err.Error(),
		Recommendation: "Unable to generate signal due to data issues",
	}
	if series != nil {
		sig.Symbol = series.Symbol
		sig.Timeframe = series.Timeframe
		if series.Len() > 0 {
			sig.Time = series.Last().Time
			sig.CurrentPrice = series.Last().Close
		}
	}
	return sig
}
