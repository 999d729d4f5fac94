package notifier

import (
	"fmt"
	"strings"

	"GoldSentinel/internal/model"
)

// FormatSignalAlert formats a composite signal into a Telegram message.
func FormatSignalAlert(sig *model.CompositeSignal, tfDescription string) string {
	var b strings.Builder

	_, emoji := directionColor(sig.Direction)
	b.WriteString(fmt.Sprintf("%s <b>%s SIGNAL</b> | %s\n\n", emoji, sig.Direction, sig.Symbol))
	b.WriteString(fmt.Sprintf("Time: %s\n", sig.Time.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Timeframe: %s\n", tfDescription))
	b.WriteString(fmt.Sprintf("Price: $%.2f\n\n", sig.CurrentPrice))

	b.WriteString("📈 <b>Factor breakdown:</b>\n")
	for _, f := range sig.Factors {
		b.WriteString(fmt.Sprintf("  %s: %s %+.1f\n", f.Name, f.Direction, f.Strength))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Strength: %.1f | Confidence: %.1f/10 | Consensus: %.0f%%\n\n",
		sig.Strength, sig.Confidence, sig.Consensus*100))

	b.WriteString("🛡 <b>Risk levels:</b>\n")
	b.WriteString(fmt.Sprintf("  Stop Loss: $%.2f\n", sig.Risk.StopLoss))
	b.WriteString(fmt.Sprintf("  Take Profit: $%.2f\n", sig.Risk.TakeProfit))
	b.WriteString(fmt.Sprintf("  Risk/Reward: %.2f\n\n", sig.Risk.RiskRewardRatio))

	b.WriteString(sig.Recommendation)
	return b.String()
}
