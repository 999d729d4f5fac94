package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"GoldSentinel/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.db")
	rec, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	if rec.SessionID() == "" {
		t.Error("expected a non-empty session id")
	}

	sig := &model.CompositeSignal{
		Time:         time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC),
		Symbol:       "GLD",
		Timeframe:    "1d",
		Direction:    model.SignalBuy,
		Strength:     2.1,
		Confidence:   6.3,
		Consensus:    1.0,
		CurrentPrice: 201.50,
		Risk:         model.RiskLevels{StopLoss: 198.50, TakeProfit: 207.50, RiskRewardRatio: 2.0, ATR: 1.5},
	}
	if err := rec.RecordSignal(sig); err != nil {
		t.Fatalf("record signal: %v", err)
	}

	var count int
	var direction string
	var price float64
	row := rec.db.QueryRow(`SELECT COUNT(*), direction, price FROM signals WHERE session_id = ?`, rec.SessionID())
	if err := row.Scan(&count, &direction, &price); err != nil {
		t.Fatalf("query back: %v", err)
	}
	if count != 1 || direction != "BUY" || price != 201.50 {
		t.Errorf("unexpected row: count=%d direction=%s price=%.2f", count, direction, price)
	}
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	if err := rec.RecordSignal(&model.CompositeSignal{}); err != nil {
		t.Errorf("noop record: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Errorf("noop close: %v", err)
	}
}
