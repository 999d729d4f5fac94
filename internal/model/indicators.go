package model

import "time"

// Series is a derived indicator series sharing index positions with its
// source bars. Elements before FirstValid are undefined because the rolling
// window has not filled yet; callers must check the ok result instead of
// reading a placeholder value.
type Series struct {
	Values     []float64
	FirstValid int
}

// Len returns the total series length including the undefined prefix.
func (s Series) Len() int { return len(s.Values) }

// At returns the value at index i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if i < s.FirstValid || i >= len(s.Values) {
		return 0, false
	}
	return s.Values[i], true
}

// Last returns the most recent value and whether it is defined.
func (s Series) Last() (float64, bool) {
	return s.At(len(s.Values) - 1)
}

// Prev returns the second most recent value and whether it is defined.
func (s Series) Prev() (float64, bool) {
	return s.At(len(s.Values) - 2)
}

// TrendDirection classifies the EMA separation direction.
type TrendDirection string

const (
	TrendBullish TrendDirection = "BULLISH"
	TrendBearish TrendDirection = "BEARISH"
	TrendNeutral TrendDirection = "NEUTRAL"
)

// CrossoverType classifies an EMA crossover event.
type CrossoverType string

const (
	CrossBullish CrossoverType = "BULLISH"
	CrossBearish CrossoverType = "BEARISH"
	CrossNone    CrossoverType = "NONE"
)

// RSIZone classifies the current RSI reading.
type RSIZone string

const (
	RSIOverbought RSIZone = "OVERBOUGHT"
	RSIOversold   RSIZone = "OVERSOLD"
	RSINeutral    RSIZone = "NEUTRAL"
)

// Levels holds pivot-based support and resistance estimates.
type Levels struct {
	Support    float64
	Resistance float64
	Pivot      float64
	RecentHigh float64
	RecentLow  float64
}

// VolumeProfile compares current volume against its trailing average.
type VolumeProfile struct {
	Current    float64
	Average    float64
	Ratio      float64
	HighVolume bool
}

// Trend describes EMA separation direction and capped strength.
type Trend struct {
	Direction     TrendDirection
	Strength      float64
	SeparationPct float64
	Short         float64
	Long          float64
}

// Crossover describes an EMA crossover detected at the last index.
type Crossover struct {
	Type               CrossoverType
	Strength           float64
	CurrentSeparation  float64
	PreviousSeparation float64
}

// RSIState describes the current RSI reading, zone, and one-step momentum.
type RSIState struct {
	Current    float64
	Zone       RSIZone
	Momentum   float64
	Overbought bool
	Oversold   bool
}

// IndicatorSnapshot holds all derived indicators for one analysis pass.
// Recomputed fresh per invocation; the last index of every series is "now".
type IndicatorSnapshot struct {
	EMAShort  Series
	EMALong   Series
	RSI       Series
	ATR       Series
	Levels    Levels
	Volume    VolumeProfile
	Trend     Trend
	Crossover Crossover
	RSIState  RSIState

	CurrentPrice float64
	Time         time.Time
}
