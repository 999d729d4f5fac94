package model

import (
	"fmt"
	"time"
)

// MinAnalysisBars is the minimum series length for reliable indicators.
const MinAnalysisBars = 50

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// BarSeries holds an ordered candlestick sequence for analysis.
type BarSeries struct {
	Symbol    string
	Timeframe string
	Bars      []Bar
	Source    string
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *BarSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar. The series must be non-empty.
func (s *BarSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Closes extracts the close price column.
func (s *BarSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high price column.
func (s *BarSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low price column.
func (s *BarSeries) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the volume column.
func (s *BarSeries) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}

// Validate checks that the series is suitable for analysis: enough bars,
// strictly increasing timestamps, valid OHLC ordering, non-negative volume.
func (s *BarSeries) Validate() error {
	if len(s.Bars) < MinAnalysisBars {
		return fmt.Errorf("insufficient data points: %d (minimum %d required)", len(s.Bars), MinAnalysisBars)
	}
	for i, b := range s.Bars {
		if b.High < b.Open || b.High < b.Close || b.High < b.Low {
			return fmt.Errorf("bar %d at %s: high %.4f below open/close/low", i, b.Time.Format(time.RFC3339), b.High)
		}
		if b.Low > b.Open || b.Low > b.Close {
			return fmt.Errorf("bar %d at %s: low %.4f above open/close", i, b.Time.Format(time.RFC3339), b.Low)
		}
		if b.Volume < 0 {
			return fmt.Errorf("bar %d at %s: negative volume %.0f", i, b.Time.Format(time.RFC3339), b.Volume)
		}
		if i > 0 && !s.Bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("bar %d at %s: timestamp not increasing", i, b.Time.Format(time.RFC3339))
		}
	}
	return nil
}
