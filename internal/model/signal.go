package model

import "time"

// Direction is a trade signal direction.
type Direction string

const (
	SignalBuy     Direction = "BUY"
	SignalSell    Direction = "SELL"
	SignalHold    Direction = "HOLD"
	SignalNeutral Direction = "NEUTRAL"
	SignalError   Direction = "ERROR"
)

// FactorJudgment is a single analyzer's verdict. Strength is non-negative
// except for the volume factor, where a negative value penalizes thin volume.
type FactorJudgment struct {
	Name      string
	Direction Direction
	Strength  float64
	Reasons   []string
}

// RiskLevels holds ATR-derived stop-loss and take-profit levels.
type RiskLevels struct {
	StopLoss        float64
	TakeProfit      float64
	RiskAmount      float64
	RewardAmount    float64
	RiskRewardRatio float64
	ATR             float64
}

// MarketContext summarizes surrounding market conditions for display.
type MarketContext struct {
	TrendDirection TrendDirection
	TrendStrength  float64
	RSIZone        RSIZone
	VolumeStatus   string // "HIGH" or "NORMAL"
	Support        float64
	Resistance     float64
}

// CompositeSignal is the final output of the signal engine.
type CompositeSignal struct {
	Time           time.Time
	Symbol         string
	Timeframe      string
	Direction      Direction
	Strength       float64
	Confidence     float64
	Consensus      float64
	BuyScore       float64
	SellScore      float64
	HoldScore      float64
	CurrentPrice   float64
	Factors        []FactorJudgment
	Risk           RiskLevels
	Context        MarketContext
	Recommendation string
	ErrorMessage   string
}
