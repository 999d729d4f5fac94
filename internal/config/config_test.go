package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing config file must not be an error: %v", err)
	}
	if cfg.Market.Symbol != "GLD" {
		t.Errorf("expected default symbol GLD, got %s", cfg.Market.Symbol)
	}
	if cfg.Market.DefaultTimeframe != "1d" {
		t.Errorf("expected default timeframe 1d, got %s", cfg.Market.DefaultTimeframe)
	}
	if cfg.Analysis.EMAShortPeriod != 9 || cfg.Analysis.EMALongPeriod != 21 {
		t.Errorf("unexpected EMA defaults: %d/%d", cfg.Analysis.EMAShortPeriod, cfg.Analysis.EMALongPeriod)
	}
	if cfg.Weights.Trend != 0.4 || cfg.Weights.PriceStructure != 0.1 {
		t.Errorf("unexpected weight defaults: %+v", cfg.Weights)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
market:
  symbol: XAUUSD
analysis:
  rsi_period: 21
telegram:
  bot_token: from-file
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("DEMO_MODE", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Market.Symbol != "XAUUSD" {
		t.Errorf("expected symbol from file, got %s", cfg.Market.Symbol)
	}
	if cfg.Analysis.RSIPeriod != 21 {
		t.Errorf("expected RSI period from file, got %d", cfg.Analysis.RSIPeriod)
	}
	if cfg.Telegram.BotToken != "from-env" {
		t.Errorf("environment must win over file, got %s", cfg.Telegram.BotToken)
	}
	if !cfg.Demo {
		t.Error("DEMO_MODE=true should enable demo mode")
	}
	// Untouched fields still get defaults.
	if cfg.Analysis.EMALongPeriod != 21 {
		t.Errorf("expected default long EMA, got %d", cfg.Analysis.EMALongPeriod)
	}
}

func TestValidate_Rejects(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"ema order", func(c *Config) { c.Analysis.EMAShortPeriod = 30 }},
		{"rsi level order", func(c *Config) { c.Analysis.RSIOversold = 80 }},
		{"rsi level range", func(c *Config) { c.Analysis.RSIOverbought = 120 }},
		{"negative risk multiplier", func(c *Config) { c.Risk.StopLossATRMultiplier = -1 }},
	}
	for _, tt := range mutations {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestParamAssembly(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	ip := cfg.IndicatorParams()
	if ip.RSIPeriod != cfg.Analysis.RSIPeriod || ip.ATRPeriod != cfg.Analysis.ATRPeriod {
		t.Errorf("indicator params out of sync with config: %+v", ip)
	}

	sp := cfg.StrategyParams()
	if sp.Weights.Trend != cfg.Weights.Trend {
		t.Errorf("strategy weights out of sync: %+v", sp.Weights)
	}
	if sp.MinSignalScore != cfg.Risk.MinSignalScore {
		t.Errorf("min signal score out of sync: %.2f", sp.MinSignalScore)
	}
}
