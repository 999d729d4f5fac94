package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"GoldSentinel/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists every produced signal to a SQLite database,
// keyed by a per-process session id.
type SQLiteRecorder struct {
	db        *sql.DB
	sessionID string
	mu        sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the bot's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, sessionID: uuid.NewString()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s (session %s)", dbPath, r.sessionID)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signals (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id     TEXT NOT NULL,
			recorded_at    INTEGER NOT NULL,
			bar_time       INTEGER,
			symbol         TEXT,
			timeframe      TEXT,
			direction      TEXT,
			strength       REAL,
			confidence     REAL,
			consensus      REAL,
			price          REAL,
			stop_loss      REAL,
			take_profit    REAL,
			risk_reward    REAL,
			atr            REAL,
			recommendation TEXT,
			error          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_session ON signals(session_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// SessionID returns the identifier under which this process logs signals.
func (r *SQLiteRecorder) SessionID() string { return r.sessionID }

func (r *SQLiteRecorder) RecordSignal(sig *model.CompositeSignal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO signals
		(session_id, recorded_at, bar_time, symbol, timeframe, direction,
		 strength, confidence, consensus, price,
		 stop_loss, take_profit, risk_reward, atr,
		 recommendation, error)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		r.sessionID, time.Now().Unix(), sig.Time.Unix(), sig.Symbol, sig.Timeframe,
		string(sig.Direction), sig.Strength, sig.Confidence, sig.Consensus, sig.CurrentPrice,
		sig.Risk.StopLoss, sig.Risk.TakeProfit, sig.Risk.RiskRewardRatio, sig.Risk.ATR,
		sig.Recommendation, sig.ErrorMessage,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
