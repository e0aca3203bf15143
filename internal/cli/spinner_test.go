package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "composing")
	s.Start()
	s.Stop()
	s.Stop()

	if s.Cancelled() {
		t.Error("plain Stop must not report cancellation")
	}
}

func TestSpinnerSeesContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "composing")
	s.Start()

	cancel()
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled should report the context ending")
	}
}

func TestSpinnerSeesDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "rendering")
	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled should report the deadline passing")
	}
}
