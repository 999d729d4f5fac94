package config

import (
	"fmt"
	"os"
	"strconv"

	"GoldSentinel/internal/indicator"
	"GoldSentinel/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Market struct {
		Symbol           string `yaml:"symbol"`
		DefaultTimeframe string `yaml:"default_timeframe"`
	} `yaml:"market"`
	AlphaVantage struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"alpha_vantage"`
	Analysis struct {
		EMAShortPeriod int     `yaml:"ema_short_period"`
		EMALongPeriod  int     `yaml:"ema_long_period"`
		RSIPeriod      int     `yaml:"rsi_period"`
		RSIOverbought  float64 `yaml:"rsi_overbought"`
		RSIOversold    float64 `yaml:"rsi_oversold"`
		ATRPeriod      int     `yaml:"atr_period"`
		LevelLookback  int     `yaml:"level_lookback"`
		VolumePeriod   int     `yaml:"volume_period"`
	} `yaml:"analysis"`
	Weights struct {
		Trend          float64 `yaml:"trend"`
		RSI            float64 `yaml:"rsi"`
		Volume         float64 `yaml:"volume"`
		PriceStructure float64 `yaml:"price_structure"`
	} `yaml:"weights"`
	Risk struct {
		StopLossATRMultiplier float64 `yaml:"stop_loss_atr_multiplier"`
		TakeProfitRatio       float64 `yaml:"take_profit_ratio"`
		MinSignalScore        float64 `yaml:"min_signal_score"`
	} `yaml:"risk"`
	Telegram struct {
		BotToken           string  `yaml:"bot_token"`
		ChatID             string  `yaml:"chat_id"`
		AlertMinConfidence float64 `yaml:"alert_min_confidence"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		MonitorCron string `yaml:"monitor_cron"`
	} `yaml:"schedule"`
	Demo  bool   `yaml:"demo"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ALPHA_VANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("MARKET_SYMBOL"); v != "" {
		cfg.Market.Symbol = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("MONITOR_CRON"); v != "" {
		cfg.Schedule.MonitorCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DEMO_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Demo = b
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Market.Symbol == "" {
		c.Market.Symbol = "GLD"
	}
	if c.Market.DefaultTimeframe == "" {
		c.Market.DefaultTimeframe = "1d"
	}
	if c.AlphaVantage.BaseURL == "" {
		c.AlphaVantage.BaseURL = "https://www.alphavantage.co/query"
	}
	if c.Analysis.EMAShortPeriod == 0 {
		c.Analysis.EMAShortPeriod = 9
	}
	if c.Analysis.EMALongPeriod == 0 {
		c.Analysis.EMALongPeriod = 21
	}
	if c.Analysis.RSIPeriod == 0 {
		c.Analysis.RSIPeriod = 14
	}
	if c.Analysis.RSIOverbought == 0 {
		c.Analysis.RSIOverbought = 70
	}
	if c.Analysis.RSIOversold == 0 {
		c.Analysis.RSIOversold = 30
	}
	if c.Analysis.ATRPeriod == 0 {
		c.Analysis.ATRPeriod = 14
	}
	if c.Analysis.LevelLookback == 0 {
		c.Analysis.LevelLookback = 20
	}
	if c.Analysis.VolumePeriod == 0 {
		c.Analysis.VolumePeriod = 20
	}
	if c.Weights.Trend == 0 && c.Weights.RSI == 0 && c.Weights.Volume == 0 && c.Weights.PriceStructure == 0 {
		c.Weights.Trend = 0.4
		c.Weights.RSI = 0.3
		c.Weights.Volume = 0.2
		c.Weights.PriceStructure = 0.1
	}
	if c.Risk.StopLossATRMultiplier == 0 {
		c.Risk.StopLossATRMultiplier = 2.0
	}
	if c.Risk.TakeProfitRatio == 0 {
		c.Risk.TakeProfitRatio = 2.0
	}
	if c.Risk.MinSignalScore == 0 {
		c.Risk.MinSignalScore = 1.0
	}
	if c.Telegram.AlertMinConfidence == 0 {
		c.Telegram.AlertMinConfidence = 5.0
	}
	if c.Schedule.MonitorCron == "" {
		c.Schedule.MonitorCron = "0 */15 * * * *"
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Market.Symbol == "" {
		return fmt.Errorf("market.symbol is required")
	}
	if c.Analysis.EMAShortPeriod >= c.Analysis.EMALongPeriod {
		return fmt.Errorf("analysis.ema_short_period must be less than ema_long_period")
	}
	if c.Analysis.RSIOversold >= c.Analysis.RSIOverbought {
		return fmt.Errorf("analysis.rsi_oversold must be less than rsi_overbought")
	}
	if c.Analysis.RSIOverbought > 100 || c.Analysis.RSIOversold < 0 {
		return fmt.Errorf("analysis RSI levels must lie within [0,100]")
	}
	if c.Risk.StopLossATRMultiplier <= 0 || c.Risk.TakeProfitRatio <= 0 {
		return fmt.Errorf("risk multipliers must be positive")
	}
	return nil
}

// IndicatorParams assembles the indicator engine parameter set.
func (c *Config) IndicatorParams() indicator.Params {
	return indicator.Params{
		EMAShortPeriod: c.Analysis.EMAShortPeriod,
		EMALongPeriod:  c.Analysis.EMALongPeriod,
		RSIPeriod:      c.Analysis.RSIPeriod,
		RSIOverbought:  c.Analysis.RSIOverbought,
		RSIOversold:    c.Analysis.RSIOversold,
		ATRPeriod:      c.Analysis.ATRPeriod,
		LevelLookback:  c.Analysis.LevelLookback,
		VolumePeriod:   c.Analysis.VolumePeriod,
	}
}

// StrategyParams assembles the signal composer parameter set.
func (c *Config) StrategyParams() strategy.Params {
	return strategy.Params{
		Weights: strategy.Weights{
			Trend:          c.Weights.Trend,
			RSI:            c.Weights.RSI,
			Volume:         c.Weights.Volume,
			PriceStructure: c.Weights.PriceStructure,
		},
		MinSignalScore:        c.Risk.MinSignalScore,
		StopLossATRMultiplier: c.Risk.StopLossATRMultiplier,
		TakeProfitRatio:       c.Risk.TakeProfitRatio,
		EMAShortPeriod:        c.Analysis.EMAShortPeriod,
		EMALongPeriod:         c.Analysis.EMALongPeriod,
		RSIOverbought:         c.Analysis.RSIOverbought,
		RSIOversold:           c.Analysis.RSIOversold,
	}
}
