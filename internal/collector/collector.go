package collector

import (
	"fmt"
	"log"
	"time"

	"GoldSentinel/internal/model"
)

// Collector orchestrates market data fetching with a fallback chain:
// primary (Alpha Vantage, when configured) → fallback (Yahoo) → demo.
// Every successful fetch is validated before it reaches analysis.
type Collector struct {
	Primary  Fetcher // optional; skipped when nil
	Fallback Fetcher
	Demo     Fetcher
	Symbol   string
}

// NewCollector creates a Collector. Primary may be nil.
func NewCollector(primary, fallback, demo Fetcher, symbol string) *Collector {
	return &Collector{Primary: primary, Fallback: fallback, Demo: demo, Symbol: symbol}
}

// GetMarketData fetches and validates a bar series for the timeframe,
// walking the fallback chain until one source produces usable data.
func (c *Collector) GetMarketData(code string) (*model.BarSeries, error) {
	tf, err := LookupTimeframe(code)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, f := range []Fetcher{c.Primary, c.Fallback, c.Demo} {
		if f == nil {
			continue
		}
		bars, err := f.FetchBars(c.Symbol, tf)
		if err != nil {
			log.Printf("[WARN] %s fetch failed: %v", f.Name(), err)
			lastErr = err
			continue
		}
		series := &model.BarSeries{
			Symbol:    c.Symbol,
			Timeframe: tf.Code,
			Bars:      bars,
			Source:    f.Name(),
			FetchedAt: time.Now(),
		}
		if err := series.Validate(); err != nil {
			log.Printf("[WARN] %s data rejected: %v", f.Name(), err)
			lastErr = err
			continue
		}
		log.Printf("[INFO] fetched %d bars from %s (%s)", series.Len(), f.Name(), tf.Description)
		return series, nil
	}
	return nil, fmt.Errorf("all data sources failed for %s/%s: %w", c.Symbol, code, lastErr)
}
