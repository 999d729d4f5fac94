package strategy

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"GoldSentinel/internal/indicator"
	"GoldSentinel/internal/model"
)

func seriesOf(vals ...float64) model.Series {
	return model.Series{Values: vals, FirstValid: 0}
}

// neutralSnapshot is a quiet market: no crossover, flat trend, neutral
// RSI, normal volume, price mid-range.
func neutralSnapshot() *model.IndicatorSnapshot {
	return &model.IndicatorSnapshot{
		ATR:          seriesOf(1.5),
		Levels:       model.Levels{Support: 190, Resistance: 210, Pivot: 200},
		Volume:       model.VolumeProfile{Current: 100, Average: 100, Ratio: 1.0},
		Trend:        model.Trend{Direction: model.TrendNeutral},
		Crossover:    model.Crossover{Type: model.CrossNone},
		RSIState:     model.RSIState{Current: 50, Zone: model.RSINeutral},
		CurrentPrice: 200,
		Time:         time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC),
	}
}

func TestEvaluate_QuietMarketHolds(t *testing.T) {
	sig := Evaluate(neutralSnapshot(), DefaultParams())
	if sig.Direction != model.SignalHold {
		t.Errorf("quiet market should HOLD, got %s", sig.Direction)
	}
	if len(sig.Factors) != 4 {
		t.Fatalf("expected 4 factors, got %d", len(sig.Factors))
	}
	for _, f := range sig.Factors {
		if len(f.Reasons) == 0 {
			t.Errorf("factor %s has no reasons", f.Name)
		}
	}
	if !strings.HasPrefix(sig.Recommendation, "HOLD") {
		t.Errorf("unexpected recommendation: %s", sig.Recommendation)
	}
}

func TestEvaluate_ConfluenceProducesBuy(t *testing.T) {
	snap := neutralSnapshot()
	snap.Crossover = model.Crossover{Type: model.CrossBullish, Strength: 4.0}
	snap.RSIState = model.RSIState{Current: 20, Zone: model.RSIOversold, Oversold: true}
	snap.CurrentPrice = 190.5 // within 1% of support

	sig := Evaluate(snap, DefaultParams())
	if sig.Direction != model.SignalBuy {
		t.Fatalf("expected BUY, got %s (buy=%.2f sell=%.2f hold=%.2f)",
			sig.Direction, sig.BuyScore, sig.SellScore, sig.HoldScore)
	}
	// trend 4.0*0.4 + rsi 1.0*0.3 + structure 2.0*0.1
	want := 4.0*0.4 + 1.0*0.3 + 2.0*0.1
	if math.Abs(sig.Strength-want) > 1e-9 {
		t.Errorf("expected strength %.2f, got %.2f", want, sig.Strength)
	}
	if sig.Consensus != 1.0 {
		t.Errorf("all three directional factors agree, expected consensus 1.0, got %.2f", sig.Consensus)
	}
	if math.Abs(sig.Confidence-want) > 1e-9 {
		t.Errorf("expected confidence %.2f, got %.2f", want, sig.Confidence)
	}
}

func TestEvaluate_OverboughtProducesSell(t *testing.T) {
	snap := neutralSnapshot()
	snap.Crossover = model.Crossover{Type: model.CrossBearish, Strength: 4.0}
	snap.RSIState = model.RSIState{Current: 85, Zone: model.RSIOverbought, Overbought: true}
	snap.CurrentPrice = 209.5 // within 1% of resistance

	sig := Evaluate(snap, DefaultParams())
	if sig.Direction != model.SignalSell {
		t.Fatalf("expected SELL, got %s", sig.Direction)
	}
	if sig.Risk.StopLoss <= snap.CurrentPrice {
		t.Errorf("SELL stop %.2f must sit above entry %.2f", sig.Risk.StopLoss, snap.CurrentPrice)
	}
	if sig.Risk.TakeProfit >= snap.CurrentPrice {
		t.Errorf("SELL target %.2f must sit below entry %.2f", sig.Risk.TakeProfit, snap.CurrentPrice)
	}
}

func TestEvaluate_ThresholdForcesHold(t *testing.T) {
	snap := neutralSnapshot()
	// Barely oversold: rsi factor votes BUY with strength 0.1 only.
	snap.RSIState = model.RSIState{Current: 29, Zone: model.RSIOversold, Oversold: true}

	sig := Evaluate(snap, DefaultParams())
	if sig.Direction != model.SignalHold {
		t.Errorf("sub-threshold score should fall back to HOLD, got %s", sig.Direction)
	}
	if sig.Strength >= DefaultParams().MinSignalScore {
		t.Errorf("strength %.2f should be below the activation threshold", sig.Strength)
	}
}

func TestAnalyzeRSI_DecreasingSeriesSignalsBuy(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 200 - float64(i)
	}
	rsi, err := indicator.RSI(values, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur, _ := rsi.Last(); cur != 0 {
		t.Errorf("all-loss window should pin RSI at 0, got %.2f", cur)
	}
	state, err := indicator.RSICondition(rsi, 70, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Zone != model.RSIOversold {
		t.Fatalf("expected OVERSOLD zone, got %s", state.Zone)
	}

	snap := neutralSnapshot()
	snap.RSIState = state
	j := analyzeRSI(snap, DefaultParams())
	if j.Direction != model.SignalBuy {
		t.Errorf("oversold RSI must vote BUY, got %s", j.Direction)
	}
	// (30 - 0) / 10
	if j.Strength != 3.0 {
		t.Errorf("expected strength 3.0, got %.2f", j.Strength)
	}
}

func TestAnalyzeVolume_DoubleAverage(t *testing.T) {
	// 19 bars at 90 plus a 190 spike: average 95, ratio exactly 2.0.
	volume := make([]float64, 20)
	for i := range volume {
		volume[i] = 90
	}
	volume[19] = 190

	vp, err := indicator.VolumeProfile(volume, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vp.Ratio != 2.0 {
		t.Fatalf("expected ratio 2.0, got %.4f", vp.Ratio)
	}
	if !vp.HighVolume {
		t.Error("ratio 2.0 must flag high volume")
	}

	snap := neutralSnapshot()
	snap.Volume = vp
	j := analyzeVolume(snap)
	if j.Direction != model.SignalNeutral {
		t.Errorf("volume factor must stay NEUTRAL, got %s", j.Direction)
	}
	// min((2.0-1)*2, 3.0)
	if j.Strength != 2.0 {
		t.Errorf("expected strength 2.0, got %.2f", j.Strength)
	}
}

func TestEvaluate_ConfidenceAndConsensusBounds(t *testing.T) {
	snaps := []*model.IndicatorSnapshot{neutralSnapshot()}

	mixed := neutralSnapshot()
	mixed.Crossover = model.Crossover{Type: model.CrossBullish, Strength: 5.0}
	mixed.RSIState = model.RSIState{Current: 85, Zone: model.RSIOverbought, Overbought: true}
	snaps = append(snaps, mixed)

	extreme := neutralSnapshot()
	extreme.Crossover = model.Crossover{Type: model.CrossBullish, Strength: 5.0}
	extreme.RSIState = model.RSIState{Current: 1, Zone: model.RSIOversold, Oversold: true}
	extreme.CurrentPrice = 190
	snaps = append(snaps, extreme)

	for i, snap := range snaps {
		sig := Evaluate(snap, DefaultParams())
		if sig.Confidence < 0 || sig.Confidence > 10 {
			t.Errorf("case %d: confidence %.2f outside [0,10]", i, sig.Confidence)
		}
		if sig.Consensus < 1.0/3 || sig.Consensus > 1.0 {
			t.Errorf("case %d: consensus %.2f outside [1/3,1]", i, sig.Consensus)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	snap := neutralSnapshot()
	snap.Crossover = model.Crossover{Type: model.CrossBullish, Strength: 3.0}
	snap.RSIState = model.RSIState{Current: 25, Zone: model.RSIOversold, Oversold: true}

	a := Evaluate(snap, DefaultParams())
	b := Evaluate(snap, DefaultParams())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must produce identical signals")
	}
}

func TestRiskLevels_BuyOrdering(t *testing.T) {
	snap := neutralSnapshot()
	risk := riskLevels(snap, model.SignalBuy, DefaultParams())

	if !(risk.StopLoss < snap.CurrentPrice && snap.CurrentPrice < risk.TakeProfit) {
		t.Errorf("BUY levels out of order: SL=%.2f price=%.2f TP=%.2f",
			risk.StopLoss, snap.CurrentPrice, risk.TakeProfit)
	}
	// ATR 1.5, multiplier 2 → stop distance 3, ratio 2
	if risk.StopLoss != 197.00 {
		t.Errorf("expected stop 197.00, got %.2f", risk.StopLoss)
	}
	if risk.TakeProfit != 206.00 {
		t.Errorf("expected target 206.00, got %.2f", risk.TakeProfit)
	}
	if risk.RiskRewardRatio != 2.00 {
		t.Errorf("expected risk/reward 2.00, got %.2f", risk.RiskRewardRatio)
	}
}

func TestRiskLevels_SupportClampsBuyStop(t *testing.T) {
	snap := neutralSnapshot()
	snap.ATR = seriesOf(2.0)
	snap.Levels.Support = 199 // support*0.99 = 197.01 > price-4

	risk := riskLevels(snap, model.SignalBuy, DefaultParams())
	if risk.StopLoss != 197.01 {
		t.Errorf("expected support-clamped stop 197.01, got %.2f", risk.StopLoss)
	}
}

func TestRiskLevels_HoldSymmetric(t *testing.T) {
	snap := neutralSnapshot()
	risk := riskLevels(snap, model.SignalHold, DefaultParams())
	if risk.RiskAmount != risk.RewardAmount {
		t.Errorf("HOLD band should be symmetric, risk %.2f reward %.2f", risk.RiskAmount, risk.RewardAmount)
	}
	if risk.RiskRewardRatio != 1.00 {
		t.Errorf("expected ratio 1.00, got %.2f", risk.RiskRewardRatio)
	}
}

func TestWinningDirection_TieOrder(t *testing.T) {
	scores := map[model.Direction]float64{
		model.SignalBuy:  1.0,
		model.SignalSell: 1.0,
		model.SignalHold: 1.0,
	}
	if d := winningDirection(scores); d != model.SignalBuy {
		t.Errorf("ties must resolve BUY first, got %s", d)
	}
	scores[model.SignalBuy] = 0.5
	if d := winningDirection(scores); d != model.SignalSell {
		t.Errorf("remaining tie must resolve SELL before HOLD, got %s", d)
	}
}

func TestRecommendation_Tiers(t *testing.T) {
	tests := []struct {
		direction  model.Direction
		confidence float64
		prefix     string
	}{
		{model.SignalBuy, 8.0, "STRONG BUY"},
		{model.SignalBuy, 5.5, "BUY"},
		{model.SignalSell, 3.0, "WEAK SELL"},
		{model.SignalHold, 9.0, "HOLD"},
	}
	for _, tt := range tests {
		got := recommendation(tt.direction, tt.confidence)
		if !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("%s/%.1f: expected prefix %q, got %q", tt.direction, tt.confidence, tt.prefix, got)
		}
	}
}

func TestAnalyze_ShortSeriesYieldsErrorSignal(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 10)
	for i := range bars {
		bars[i] = model.Bar{Time: start.Add(time.Duration(i) * time.Minute), Open: 200, High: 201, Low: 199, Close: 200, Volume: 1000}
	}
	series := &model.BarSeries{Symbol: "GLD", Timeframe: "1d", Bars: bars}

	sig := Analyze(series, indicator.DefaultParams(), DefaultParams())
	if sig.Direction != model.SignalError {
		t.Fatalf("expected ERROR signal, got %s", sig.Direction)
	}
	if sig.Symbol != "GLD" || sig.Timeframe != "1d" {
		t.Errorf("error signal must keep series identity, got %s/%s", sig.Symbol, sig.Timeframe)
	}
	if sig.ErrorMessage == "" {
		t.Error("expected a populated error message")
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 60)
	for i := range bars {
		c := 200 + 0.3*float64(i)
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * 5 * time.Minute),
			Open:   c - 0.1,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	series := &model.BarSeries{Symbol: "GLD", Timeframe: "1d", Bars: bars}

	sig := Analyze(series, indicator.DefaultParams(), DefaultParams())
	if sig.Direction == model.SignalError {
		t.Fatalf("unexpected error signal: %s", sig.ErrorMessage)
	}
	if sig.CurrentPrice != series.Last().Close {
		t.Errorf("signal price %.2f != last close %.2f", sig.CurrentPrice, series.Last().Close)
	}
	if sig.Risk.ATR <= 0 {
		t.Errorf("expected positive ATR, got %.2f", sig.Risk.ATR)
	}
}

func TestErrorSignal_Fields(t *testing.T) {
	sig := ErrorSignal(nil, errors.New("boom"))
	if sig.Direction != model.SignalError {
		t.Errorf("expected ERROR, got %s", sig.Direction)
	}
	if sig.ErrorMessage != "boom" {
		t.Errorf("expected message %q, got %q", "boom", sig.ErrorMessage)
	}
	if sig.Recommendation == "" {
		t.Error("expected a recommendation even on error")
	}
}
