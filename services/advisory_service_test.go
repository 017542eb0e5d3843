package services

import (
	"context"
	"testing"
	"time"
)

func TestAnalyzeReturnsCannedResult(t *testing.T) {
	advisory := NewAdvisoryService(0)

	known := make(map[string]bool)
	for _, r := range diseaseResults {
		known[r.Disease] = true
	}

	for i := 0; i < 20; i++ {
		result, err := advisory.Analyze(context.Background())
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if !known[result.Disease] {
			t.Fatalf("unknown diagnosis %q", result.Disease)
		}
		if result.Helpline == "" || len(result.Treatment) == 0 {
			t.Fatalf("incomplete diagnosis: %+v", result)
		}
	}
}

func TestAnalyzeHonoursCancellation(t *testing.T) {
	advisory := NewAdvisoryService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := advisory.Analyze(ctx); err != context.Canceled {
		t.Fatalf("Analyze on cancelled context = %v, want context.Canceled", err)
	}
}

func TestAnalyzeWaitsOutDelay(t *testing.T) {
	advisory := NewAdvisoryService(20 * time.Millisecond)

	start := time.Now()
	if _, err := advisory.Analyze(context.Background()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Analyze returned after %v, before the simulated delay", elapsed)
	}
}
