package collector

import (
	"math"
	"math/rand"
	"time"

	"GoldSentinel/internal/model"
)

// demoSeed fixes the generator so demo runs are reproducible.
const demoSeed = 42

// DemoGenerator produces realistic synthetic OHLCV bars for offline runs
// and testing. All randomness comes from a fixed-seed source; the core
// analysis itself stays fully deterministic.
type DemoGenerator struct {
	BasePrice float64
}

// NewDemoGenerator creates a generator around the GLD base price.
func NewDemoGenerator() *DemoGenerator {
	return &DemoGenerator{BasePrice: 200.0}
}

// Generate builds count bars ending near now: a slight upward trend plus
// gaussian noise and a sinusoidal cycle, with volume scaled by price moves.
func (g *DemoGenerator) Generate(tf Timeframe, count int) []model.Bar {
	r := rand.New(rand.NewSource(demoSeed))
	interval := barInterval(tf)
	start := time.Now().Add(-time.Duration(count) * interval).Truncate(interval)

	closes := make([]float64, count)
	for i := 0; i < count; i++ {
		trend := 5.0 * float64(i) / float64(count-1)
		noise := r.NormFloat64() * 2
		cycle := 3 * math.Sin(4*math.Pi*float64(i)/float64(count-1))
		closes[i] = g.BasePrice + trend + noise + cycle
	}
	return g.assemble(r, start, interval, closes)
}

// GenerateTrending builds bars with a forced direction for exercising
// signal paths: "bullish", "bearish", or anything else for sideways.
func (g *DemoGenerator) GenerateTrending(direction string, count int) []model.Bar {
	r := rand.New(rand.NewSource(demoSeed))
	interval := 5 * time.Minute
	start := time.Now().Add(-time.Duration(count) * interval).Truncate(interval)

	closes := make([]float64, count)
	for i := 0; i < count; i++ {
		var trend, noise float64
		switch direction {
		case "bullish":
			trend = 15.0 * float64(i) / float64(count-1)
			noise = r.NormFloat64()
		case "bearish":
			trend = -15.0 * float64(i) / float64(count-1)
			noise = r.NormFloat64()
		default:
			trend = r.NormFloat64() * 0.5
			noise = r.NormFloat64() * 2
		}
		closes[i] = g.BasePrice + trend + noise
	}
	return g.assemble(r, start, interval, closes)
}

// assemble turns a close-price path into consistent OHLCV bars.
func (g *DemoGenerator) assemble(r *rand.Rand, start time.Time, interval time.Duration, closes []float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	for i, close := range closes {
		volatility := 0.5 + r.Float64()*1.5
		high := close + r.Float64()*volatility
		low := close - r.Float64()*volatility

		var open float64
		if i == 0 {
			open = close + (r.Float64()-0.5)
		} else {
			open = closes[i-1] + (r.Float64()*0.6 - 0.3)
		}
		high = math.Max(high, math.Max(open, close))
		low = math.Min(low, math.Min(open, close))

		prevClose := close
		if i > 0 {
			prevClose = closes[i-1]
		}
		baseVolume := 1_000_000 + r.Float64()*2_000_000
		volume := math.Floor(baseVolume * (1 + math.Abs(close-prevClose)/close*10))

		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * interval),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: volume,
		}
	}
	return bars
}

func barInterval(tf Timeframe) time.Duration {
	switch tf.Code {
	case "2d":
		return 15 * time.Minute
	case "5d":
		return 30 * time.Minute
	default:
		return 5 * time.Minute
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DemoFetcher implements Fetcher on top of the generator; it is the final
// fallback when every real source fails.
type DemoFetcher struct {
	Gen   *DemoGenerator
	Count int
}

// NewDemoFetcher creates a demo fetcher producing 100-bar series.
func NewDemoFetcher() *DemoFetcher {
	return &DemoFetcher{Gen: NewDemoGenerator(), Count: 100}
}

func (f *DemoFetcher) Name() string { return "demo" }

func (f *DemoFetcher) FetchBars(_ string, tf Timeframe) ([]model.Bar, error) {
	return f.Gen.Generate(tf, f.Count), nil
}
