package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"GoldSentinel/internal/model"
)

// avMinRequestInterval spaces Alpha Vantage requests for the 5/min free-tier limit.
const avMinRequestInterval = 12 * time.Second

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage intraday API.
type AlphaVantageFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	mu          sync.Mutex
	minInterval time.Duration
	nextRequest time.Time
}

// NewAlphaVantageFetcher creates a fetcher with optional proxy support.
func NewAlphaVantageFetcher(baseURL, apiKey, proxyURL string) *AlphaVantageFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageFetcher{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		minInterval: avMinRequestInterval,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avResponse is the subset of the Alpha Vantage payload we consume. The
// time series key depends on the interval, so it is decoded separately.
type avResponse struct {
	ErrorMessage string `json:"Error Message"`
	Note         string `json:"Note"`
}

func (f *AlphaVantageFetcher) FetchBars(symbol string, tf Timeframe) ([]model.Bar, error) {
	f.throttle()

	q := url.Values{}
	q.Set("function", "TIME_SERIES_INTRADAY")
	q.Set("symbol", symbol)
	q.Set("interval", tf.AVInterval)
	q.Set("apikey", f.APIKey)
	q.Set("outputsize", "full")

	resp, err := f.Client.Get(f.BaseURL + "?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alphavantage read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d", resp.StatusCode)
	}

	var meta avResponse
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if meta.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage api error: %s", meta.ErrorMessage)
	}
	if meta.Note != "" {
		return nil, fmt.Errorf("alphavantage rate limited: %s", meta.Note)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	seriesKey := fmt.Sprintf("Time Series (%s)", tf.AVInterval)
	seriesRaw, ok := raw[seriesKey]
	if !ok {
		return nil, fmt.Errorf("alphavantage: no time series %q in response", seriesKey)
	}

	var series map[string]struct {
		Open   string `json:"1. open"`
		High   string `json:"2. high"`
		Low    string `json:"3. low"`
		Close  string `json:"4. close"`
		Volume string `json:"5. volume"`
	}
	if err := json.Unmarshal(seriesRaw, &series); err != nil {
		return nil, fmt.Errorf("alphavantage decode series: %w", err)
	}

	bars := make([]model.Bar, 0, len(series))
	for ts, v := range series {
		t, err := time.Parse("2006-01-02 15:04:05", ts)
		if err != nil {
			log.Printf("[WARN] alphavantage: skipping bar with bad timestamp %q: %v", ts, err)
			continue
		}
		bar, err := parseAVBar(t, v.Open, v.High, v.Low, v.Close, v.Volume)
		if err != nil {
			log.Printf("[WARN] alphavantage: skipping malformed bar at %s: %v", ts, err)
			continue
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("alphavantage: no usable bars in response")
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func parseAVBar(t time.Time, open, high, low, close, volume string) (model.Bar, error) {
	fields := [5]float64{}
	for i, s := range []string{open, high, low, close, volume} {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("parse %q: %w", s, err)
		}
		fields[i] = v
	}
	return model.Bar{
		Time:   t,
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}

// throttle blocks until the minimum spacing since the previous request has
// elapsed. Each caller reserves its slot under the lock and waits outside
// it, so concurrent requests queue at the spacing instead of serializing
// behind a held mutex.
func (f *AlphaVantageFetcher) throttle() {
	f.mu.Lock()
	now := time.Now()
	wait := f.nextRequest.Sub(now)
	if wait < 0 {
		wait = 0
	}
	f.nextRequest = now.Add(wait + f.minInterval)
	f.mu.Unlock()

	if wait > 0 {
		log.Printf("[INFO] alphavantage rate limiting: waiting %.1fs", wait.Seconds())
		time.Sleep(wait)
	}
}
