package notifier

import (
	"fmt"
	"io"
	"os"
	"strings"

	"GoldSentinel/internal/model"
)

// ANSI colors for terminal rendering.
const (
	colorBuy   = "\033[92m"
	colorSell  = "\033[91m"
	colorHold  = "\033[93m"
	colorInfo  = "\033[94m"
	colorReset = "\033[0m"
)

// ConsoleRenderer writes colored analysis reports for interactive use.
type ConsoleRenderer struct {
	Out io.Writer
}

// NewConsoleRenderer creates a renderer writing to stdout.
func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{Out: os.Stdout}
}

func directionColor(d model.Direction) (color, emoji string) {
	switch d {
	case model.SignalBuy:
		return colorBuy, "🟢"
	case model.SignalSell:
		return colorSell, "🔴"
	case model.SignalError:
		return colorSell, "❌"
	default:
		return colorHold, "🟡"
	}
}

// RenderSignal prints the full analysis breakdown for one signal.
func (r *ConsoleRenderer) RenderSignal(sig *model.CompositeSignal, tfDescription string) {
	var b strings.Builder

	if sig.Direction == model.SignalError {
		b.WriteString(fmt.Sprintf("%s❌ Analysis failed: %s%s\n", colorSell, sig.ErrorMessage, colorReset))
		fmt.Fprint(r.Out, b.String())
		return
	}

	b.WriteString(fmt.Sprintf("\n%s%s\n", colorInfo, strings.Repeat("=", 80)))
	b.WriteString(fmt.Sprintf("🔍 %s ANALYSIS - %s\n", sig.Symbol, sig.Time.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("%s%s\n", strings.Repeat("=", 80), colorReset))

	// Market status
	b.WriteString(fmt.Sprintf("\n%s📈 CURRENT MARKET STATUS:%s\n", colorInfo, colorReset))
	b.WriteString(fmt.Sprintf("   Price (%s): $%.2f\n", sig.Symbol, sig.CurrentPrice))
	b.WriteString(fmt.Sprintf("   Timeframe: %s\n", tfDescription))

	// Main signal
	color, emoji := directionColor(sig.Direction)
	b.WriteString(fmt.Sprintf("\n%s🎯 TRADING SIGNAL:%s\n", colorInfo, colorReset))
	b.WriteString(fmt.Sprintf("   %s %s%s%s (strength %.1f, confidence %.1f/10)\n",
		emoji, color, sig.Direction, colorReset, sig.Strength, sig.Confidence))
	b.WriteString(fmt.Sprintf("   %s\n", sig.Recommendation))

	// Factor breakdown
	b.WriteString(fmt.Sprintf("\n%s📊 TECHNICAL BREAKDOWN:%s\n", colorInfo, colorReset))
	for _, f := range sig.Factors {
		fc, _ := directionColor(f.Direction)
		b.WriteString(fmt.Sprintf("   %-16s %s%-8s%s %+5.2f  %s\n",
			f.Name, fc, f.Direction, colorReset, f.Strength, strings.Join(f.Reasons, "; ")))
	}

	// Risk management
	b.WriteString(fmt.Sprintf("\n%s🛡️  RISK MANAGEMENT:%s\n", colorInfo, colorReset))
	b.WriteString(fmt.Sprintf("   Stop Loss:   $%.2f\n", sig.Risk.StopLoss))
	b.WriteString(fmt.Sprintf("   Take Profit: $%.2f\n", sig.Risk.TakeProfit))
	b.WriteString(fmt.Sprintf("   Risk/Reward: %.2f (risk $%.2f, reward $%.2f)\n",
		sig.Risk.RiskRewardRatio, sig.Risk.RiskAmount, sig.Risk.RewardAmount))
	b.WriteString(fmt.Sprintf("   ATR: %.2f\n", sig.Risk.ATR))

	// Market context
	b.WriteString(fmt.Sprintf("\n%s🌐 MARKET CONTEXT:%s\n", colorInfo, colorReset))
	b.WriteString(fmt.Sprintf("   Trend: %s (strength %.1f) | RSI: %s | Volume: %s\n",
		sig.Context.TrendDirection, sig.Context.TrendStrength, sig.Context.RSIZone, sig.Context.VolumeStatus))
	b.WriteString(fmt.Sprintf("   Support: $%.2f | Resistance: $%.2f\n",
		sig.Context.Support, sig.Context.Resistance))

	b.WriteString(fmt.Sprintf("%s%s%s\n\n", colorInfo, strings.Repeat("=", 80), colorReset))
	fmt.Fprint(r.Out, b.String())
}

// RenderMultiSummary prints the consolidated multi-timeframe table.
func (r *ConsoleRenderer) RenderMultiSummary(results []*model.CompositeSignal, consensus string) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n%s📊 MULTI-TIMEFRAME ANALYSIS SUMMARY%s\n", colorInfo, colorReset))
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString(fmt.Sprintf("%-12s %-8s %-10s %-12s %-10s\n", "Timeframe", "Signal", "Strength", "Confidence", "Price"))
	b.WriteString(strings.Repeat("-", 60) + "\n")

	rendered := 0
	for _, sig := range results {
		if sig == nil || sig.Direction == model.SignalError {
			continue
		}
		color, _ := directionColor(sig.Direction)
		b.WriteString(fmt.Sprintf("%-12s %s%-8s%s %-10.1f %-12.1f $%-10.2f\n",
			sig.Timeframe, color, sig.Direction, colorReset, sig.Strength, sig.Confidence, sig.CurrentPrice))
		rendered++
	}
	if rendered == 0 {
		b.WriteString("❌ No valid results to display\n")
	} else {
		b.WriteString(fmt.Sprintf("\n🎯 Consensus Signal: %s\n", consensus))
	}
	fmt.Fprint(r.Out, b.String())
}

// RenderSessionSummary prints end-of-session statistics.
func (r *ConsoleRenderer) RenderSessionSummary(runtimeMinutes float64, analyses int, dist map[model.Direction]int) {
	if analyses == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n%s📊 SESSION SUMMARY%s\n", colorInfo, colorReset))
	b.WriteString(fmt.Sprintf("   Runtime: %.1f minutes\n", runtimeMinutes))
	b.WriteString(fmt.Sprintf("   Analyses performed: %d\n", analyses))
	b.WriteString(fmt.Sprintf("   Signal distribution: BUY(%d) SELL(%d) HOLD(%d)\n",
		dist[model.SignalBuy], dist[model.SignalSell], dist[model.SignalHold]))
	fmt.Fprint(r.Out, b.String())
}
