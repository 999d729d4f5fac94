package scheduler

import (
	"context"
	"fmt"
	"log"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/notifier"
	"GoldSentinel/internal/session"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic market analysis and pushes alerts on
// actionable signals.
type Scheduler struct {
	Cron          *cron.Cron
	Runner        *session.Runner
	Notifier      *notifier.TelegramNotifier // optional
	Timeframe     string
	MinConfidence float64
	Ctx           context.Context
}

// NewScheduler creates a Scheduler. Notifier may be nil when Telegram
// is not configured.
func NewScheduler(ctx context.Context, runner *session.Runner, tn *notifier.TelegramNotifier, timeframe string, minConfidence float64) *Scheduler {
	return &Scheduler{
		Cron:          cron.New(cron.WithSeconds()),
		Runner:        runner,
		Notifier:      tn,
		Timeframe:     timeframe,
		MinConfidence: minConfidence,
		Ctx:           ctx,
	}
}

// Register registers the monitor task on the given cron spec.
func (s *Scheduler) Register(monitorCron string) error {
	if _, err := s.Cron.AddFunc(monitorCron, s.monitorTask); err != nil {
		return fmt.Errorf("register monitor task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the monitor task immediately (for manual trigger).
func (s *Scheduler) RunNow() {
	s.monitorTask()
}

func (s *Scheduler) monitorTask() {
	log.Println("[INFO] running scheduled analysis")
	sig, err := s.Runner.RunSingle(s.Timeframe, true)
	if err != nil {
		log.Printf("[ERROR] scheduled analysis: %v", err)
		return
	}

	if !s.shouldAlert(sig) {
		return
	}
	tf, err := collector.LookupTimeframe(s.Timeframe)
	if err != nil {
		log.Printf("[ERROR] lookup timeframe: %v", err)
		return
	}
	s.trySend(notifier.FormatSignalAlert(sig, tf.Description))
}

// shouldAlert gates notifications: only directional signals at or above
// the configured confidence are pushed.
func (s *Scheduler) shouldAlert(sig *model.CompositeSignal) bool {
	if s.Notifier == nil {
		return false
	}
	if sig.Direction != model.SignalBuy && sig.Direction != model.SignalSell {
		return false
	}
	return sig.Confidence >= s.MinConfidence
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
