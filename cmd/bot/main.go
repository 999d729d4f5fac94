package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/notifier"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/scheduler"
	"GoldSentinel/internal/session"

	"github.com/joho/godotenv"
)

const usage = `GoldSentinel - gold market analysis bot

Usage:
  bot quick [timeframe]     One-shot analysis (default timeframe from config)
  bot multi                 Analyze all supported timeframes
  bot backtest [timeframe]  Run the strategy over recent data
  bot monitor               Continuous scheduled monitoring
  bot info                  Show configuration and data sources

Timeframes: 1d (intraday), 2d (short-term), 5d (medium-term)`

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	col := buildCollector(cfg)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	runner := session.NewRunner(col, rec, notifier.NewConsoleRenderer(), cfg.IndicatorParams(), cfg.StrategyParams())

	command := "quick"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "quick":
		tf := cfg.Market.DefaultTimeframe
		if flag.NArg() > 1 {
			tf = flag.Arg(1)
		}
		if _, err := runner.RunSingle(tf, true); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		runner.PrintSummary()

	case "multi":
		runner.RunMulti()
		runner.PrintSummary()

	case "backtest":
		tf := cfg.Market.DefaultTimeframe
		if flag.NArg() > 1 {
			tf = flag.Arg(1)
		}
		res, err := runner.RunBacktest(tf)
		if err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		fmt.Printf("Backtest window: %d bars from %s\n", res.BarsAnalyzed, res.Source)
		runner.PrintSummary()

	case "monitor":
		runMonitor(cfg, runner)

	case "info":
		printInfo(cfg)

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func buildCollector(cfg *config.Config) *collector.Collector {
	demo := collector.NewDemoFetcher()
	if cfg.Demo {
		log.Println("[INFO] demo mode: using generated market data only")
		return collector.NewCollector(nil, nil, demo, cfg.Market.Symbol)
	}

	var primary collector.Fetcher
	if cfg.AlphaVantage.APIKey != "" {
		primary = collector.NewAlphaVantageFetcher(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.APIKey, cfg.Proxy)
	}
	fallback := collector.NewYahooFetcher(cfg.Proxy)
	return collector.NewCollector(primary, fallback, demo, cfg.Market.Symbol)
}

func runMonitor(cfg *config.Config, runner *session.Runner) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] Telegram alerts enabled")
	} else {
		log.Println("[INFO] Telegram not configured, console output only")
	}

	sched := scheduler.NewScheduler(ctx, runner, tn, cfg.Market.DefaultTimeframe, cfg.Telegram.AlertMinConfidence)
	if err := sched.Register(cfg.Schedule.MonitorCron); err != nil {
		log.Fatalf("[FATAL] register monitor task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// First round right away so the operator sees output immediately.
	go sched.RunNow()

	log.Println("[INFO] GoldSentinel monitoring. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	runner.PrintSummary()
}

func printInfo(cfg *config.Config) {
	fmt.Println("🥇 GoldSentinel")
	fmt.Printf("Symbol: %s (default timeframe %s)\n", cfg.Market.Symbol, cfg.Market.DefaultTimeframe)

	fmt.Println("\nData sources (in fallback order):")
	if cfg.Demo {
		fmt.Println("  1. demo (generated data, demo mode)")
	} else {
		n := 1
		if cfg.AlphaVantage.APIKey != "" {
			fmt.Printf("  %d. alpha_vantage (%s)\n", n, cfg.AlphaVantage.BaseURL)
			n++
		}
		fmt.Printf("  %d. yahoo\n", n)
		fmt.Printf("  %d. demo (generated data)\n", n+1)
	}

	fmt.Println("\nTimeframes:")
	for _, code := range collector.TimeframeCodes() {
		tf, _ := collector.LookupTimeframe(code)
		fmt.Printf("  %-4s %s\n", tf.Code, tf.Description)
	}

	fmt.Println("\nAnalysis:")
	fmt.Printf("  EMA %d/%d, RSI %d (%.0f/%.0f), ATR %d, levels lookback %d, volume %d\n",
		cfg.Analysis.EMAShortPeriod, cfg.Analysis.EMALongPeriod,
		cfg.Analysis.RSIPeriod, cfg.Analysis.RSIOverbought, cfg.Analysis.RSIOversold,
		cfg.Analysis.ATRPeriod, cfg.Analysis.LevelLookback, cfg.Analysis.VolumePeriod)
	fmt.Printf("  Weights: trend %.1f, rsi %.1f, volume %.1f, price_structure %.1f\n",
		cfg.Weights.Trend, cfg.Weights.RSI, cfg.Weights.Volume, cfg.Weights.PriceStructure)
	fmt.Printf("  Risk: stop %.1fx ATR, take-profit ratio %.1f, min score %.1f\n",
		cfg.Risk.StopLossATRMultiplier, cfg.Risk.TakeProfitRatio, cfg.Risk.MinSignalScore)

	if cfg.Database.SQLitePath != "" {
		fmt.Printf("\nSignal log: %s\n", cfg.Database.SQLitePath)
	}
	if cfg.Telegram.BotToken != "" {
		fmt.Printf("Telegram alerts: enabled (min confidence %.1f)\n", cfg.Telegram.AlertMinConfidence)
	}
}
