package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "127.0.0.1"
	window := time.Hour
	now := time.Now().UTC()

	limiter.addFailure(key, now.Add(-2*time.Hour), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected old attempt to be pruned from active window")
	}

	limiter.addFailure(key, now.Add(-30*time.Minute), window)
	if !limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected one recent attempt to hit limit 1")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected no attempts after reset")
	}
}

func TestAttemptLimiterKeepsCallersApart(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	window := 15 * time.Minute
	now := time.Now().UTC()

	for attempt := 0; attempt < 5; attempt++ {
		limiter.addFailure("10.0.0.1", now, window)
	}

	if !limiter.tooManyRecent("10.0.0.1", now, 5, window) {
		t.Fatal("expected noisy caller to be limited")
	}
	if limiter.tooManyRecent("10.0.0.2", now, 5, window) {
		t.Fatal("expected other caller to stay unaffected")
	}
}
