package collector

import "fmt"

// Timeframe describes a supported chart window and its per-source
// fetch parameters.
type Timeframe struct {
	Code          string
	YahooInterval string
	YahooRange    string
	AVInterval    string
	Description   string
}

var timeframes = map[string]Timeframe{
	"1d": {
		Code:          "1d",
		YahooInterval: "5m",
		YahooRange:    "1d",
		AVInterval:    "5min",
		Description:   "1-day chart with 5-minute candles",
	},
	"2d": {
		Code:          "2d",
		YahooInterval: "15m",
		YahooRange:    "2d",
		AVInterval:    "15min",
		Description:   "2-day chart with 15-minute candles",
	},
	"5d": {
		Code:          "5d",
		YahooInterval: "30m",
		YahooRange:    "5d",
		AVInterval:    "30min",
		Description:   "5-day (weekly) chart with 30-minute candles",
	},
}

// TimeframeCodes lists the supported timeframe codes in display order.
func TimeframeCodes() []string { return []string{"1d", "2d", "5d"} }

// LookupTimeframe resolves a timeframe code.
func LookupTimeframe(code string) (Timeframe, error) {
	tf, ok := timeframes[code]
	if !ok {
		return Timeframe{}, fmt.Errorf("unknown timeframe %q (supported: 1d, 2d, 5d)", code)
	}
	return tf, nil
}
