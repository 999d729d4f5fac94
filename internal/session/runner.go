package session

import (
	"fmt"
	"log"
	"time"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/indicator"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/notifier"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/strategy"
)

// Runner drives analysis rounds and tracks per-session statistics.
type Runner struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Console   *notifier.ConsoleRenderer
	Indicator indicator.Params
	Strategy  strategy.Params

	started      time.Time
	analyses     int
	distribution map[model.Direction]int
}

// NewRunner creates a Runner. Recorder and Console may be nil.
func NewRunner(c *collector.Collector, rec recorder.Recorder, con *notifier.ConsoleRenderer, ip indicator.Params, sp strategy.Params) *Runner {
	return &Runner{
		Collector:    c,
		Recorder:     rec,
		Console:      con,
		Indicator:    ip,
		Strategy:     sp,
		started:      time.Now(),
		distribution: make(map[model.Direction]int),
	}
}

// RunSingle performs one full analysis round on the given timeframe.
// The produced signal is recorded and, when display is set, rendered.
func (r *Runner) RunSingle(code string, display bool) (*model.CompositeSignal, error) {
	tf, err := collector.LookupTimeframe(code)
	if err != nil {
		return nil, err
	}

	series, err := r.Collector.GetMarketData(code)
	var sig *model.CompositeSignal
	if err != nil {
		sig = strategy.ErrorSignal(nil, err)
		sig.Timeframe = code
		sig.Symbol = r.Collector.Symbol
	} else {
		sig = strategy.Analyze(series, r.Indicator, r.Strategy)
	}

	r.track(sig)
	r.record(sig)
	if display && r.Console != nil {
		r.Console.RenderSignal(sig, tf.Description)
	}
	if sig.Direction == model.SignalError {
		return sig, fmt.Errorf("analysis failed: %s", sig.ErrorMessage)
	}
	return sig, nil
}

// RunMulti analyzes every supported timeframe and renders a consensus summary.
func (r *Runner) RunMulti() []*model.CompositeSignal {
	codes := collector.TimeframeCodes()
	results := make([]*model.CompositeSignal, 0, len(codes))
	for _, code := range codes {
		log.Printf("[INFO] analyzing timeframe %s", code)
		sig, err := r.RunSingle(code, false)
		if err != nil {
			log.Printf("[WARN] timeframe %s: %v", code, err)
		}
		results = append(results, sig)
	}
	if r.Console != nil {
		r.Console.RenderMultiSummary(results, Consensus(results))
	}
	return results
}

// BacktestResult holds the quick strategy check over recent data.
type BacktestResult struct {
	Signal       *model.CompositeSignal
	BarsAnalyzed int
	Source       string
}

// RunBacktest runs the strategy over the most recent window and reports
// the produced signal together with its risk metrics.
func (r *Runner) RunBacktest(code string) (*BacktestResult, error) {
	tf, err := collector.LookupTimeframe(code)
	if err != nil {
		return nil, err
	}

	series, err := r.Collector.GetMarketData(code)
	if err != nil {
		return nil, fmt.Errorf("backtest data: %w", err)
	}

	sig := strategy.Analyze(series, r.Indicator, r.Strategy)
	r.track(sig)
	r.record(sig)
	if r.Console != nil {
		r.Console.RenderSignal(sig, tf.Description)
	}
	if sig.Direction == model.SignalError {
		return nil, fmt.Errorf("backtest analysis failed: %s", sig.ErrorMessage)
	}

	return &BacktestResult{
		Signal:       sig,
		BarsAnalyzed: series.Len(),
		Source:       series.Source,
	}, nil
}

// Consensus returns the most common directional signal among valid results,
// or HOLD when nothing points one way.
func Consensus(results []*model.CompositeSignal) string {
	counts := make(map[model.Direction]int)
	for _, sig := range results {
		if sig == nil || sig.Direction == model.SignalError {
			continue
		}
		counts[sig.Direction]++
	}

	best := model.SignalHold
	bestCount := 0
	for _, d := range []model.Direction{model.SignalBuy, model.SignalSell, model.SignalHold} {
		if counts[d] > bestCount {
			best = d
			bestCount = counts[d]
		}
	}
	if bestCount == 0 {
		return string(model.SignalHold)
	}
	return string(best)
}

// PrintSummary renders the session statistics gathered so far.
func (r *Runner) PrintSummary() {
	if r.Console == nil {
		return
	}
	r.Console.RenderSessionSummary(time.Since(r.started).Minutes(), r.analyses, r.distribution)
}

func (r *Runner) track(sig *model.CompositeSignal) {
	r.analyses++
	r.distribution[sig.Direction]++
}

func (r *Runner) record(sig *model.CompositeSignal) {
	if r.Recorder == nil {
		return
	}
	if err := r.Recorder.RecordSignal(sig); err != nil {
		log.Printf("[WARN] record signal: %v", err)
	}
}
