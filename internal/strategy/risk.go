package strategy

import (
	"math"

	"GoldSentinel/internal/model"
)

// riskLevels derives stop-loss and take-profit levels from ATR and the
// pivot support/resistance. For BUY the stop never sits below just-under
// support; for SELL never above just-over resistance.
func riskLevels(snap *model.IndicatorSnapshot, direction model.Direction, p Params) model.RiskLevels {
	price := snap.CurrentPrice
	atr, _ := snap.ATR.Last() // defined: Compute rejects series too short for ATR
	stopDistance := atr * p.StopLossATRMultiplier

	var stopLoss, takeProfit float64
	switch direction {
	case model.SignalBuy:
		stopLoss = math.Max(price-stopDistance, snap.Levels.Support*0.99)
		takeProfit = price + stopDistance*p.TakeProfitRatio
	case model.SignalSell:
		stopLoss = math.Min(price+stopDistance, snap.Levels.Resistance*1.01)
		takeProfit = price - stopDistance*p.TakeProfitRatio
	default:
		stopLoss = price - stopDistance
		takeProfit = price + stopDistance
	}

	risk := math.Abs(price - stopLoss)
	reward := math.Abs(takeProfit - price)
	ratio := 0.0
	if risk > 0 {
		ratio = reward / risk
	}

	return model.RiskLevels{
		StopLoss:        round2(stopLoss),
		TakeProfit:      round2(takeProfit),
		RiskAmount:      round2(risk),
		RewardAmount:    round2(reward),
		RiskRewardRatio: round2(ratio),
		ATR:             round2(atr),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
