package notifier

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

type failingTransport struct {
	calls int
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

func TestSendWithRetry_NoBackoffAfterFinalAttempt(t *testing.T) {
	ft := &failingTransport{}
	n := &TelegramNotifier{BotToken: "token", ChatID: "1", Client: &http.Client{Transport: ft}}

	start := time.Now()
	err := n.SendWithRetry(context.Background(), "hi", 0)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected error when every attempt fails")
	}
	if ft.calls != 1 {
		t.Errorf("expected 1 attempt, got %d", ft.calls)
	}
	// The single allowed attempt failed; there is nothing left to wait for.
	if elapsed > 500*time.Millisecond {
		t.Errorf("final failure took %v, should return without a backoff wait", elapsed)
	}
}

func TestSendWithRetry_HonorsCancel(t *testing.T) {
	ft := &failingTransport{}
	n := &TelegramNotifier{BotToken: "token", ChatID: "1", Client: &http.Client{Transport: ft}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.SendWithRetry(ctx, "hi", 3); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if ft.calls != 1 {
		t.Errorf("cancelled context should stop after the in-flight attempt, got %d", ft.calls)
	}
}
