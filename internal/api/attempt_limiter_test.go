package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksWithinWindow(t *testing.T) {
	current := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := newAttemptLimiter(3, 15*time.Minute)
	limiter.now = func() time.Time { return current }

	for attempt := 0; attempt < 3; attempt++ {
		if limiter.blocked("10.0.0.1") {
			t.Fatalf("expected attempt %d to be allowed", attempt+1)
		}
		limiter.addFailure("10.0.0.1")
	}
	if !limiter.blocked("10.0.0.1") {
		t.Fatal("expected key to be blocked after the limit")
	}
	if limiter.blocked("10.0.0.2") {
		t.Fatal("expected other keys to be unaffected")
	}

	current = current.Add(16 * time.Minute)
	if limiter.blocked("10.0.0.1") {
		t.Fatal("expected failures to expire after the window")
	}
}

func TestAttemptLimiterReset(t *testing.T) {
	limiter := newAttemptLimiter(1, time.Minute)
	limiter.addFailure("key")
	if !limiter.blocked("key") {
		t.Fatal("expected key to be blocked")
	}

	limiter.reset("key")
	if limiter.blocked("key") {
		t.Fatal("expected reset to unblock the key")
	}
}
