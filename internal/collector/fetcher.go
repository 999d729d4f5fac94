package collector

import "GoldSentinel/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(symbol string, tf Timeframe) ([]model.Bar, error)
	Name() string
}
