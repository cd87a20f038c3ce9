// Package quota tracks daily request budgets for external news APIs.
package quota

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Limiter enforces a per-day request cap. Counters reset 24 hours after
// the first request of the window.
type Limiter struct {
	mu        sync.Mutex
	count     int
	max       int
	resetTime time.Time
}

// NewLimiter creates a limiter allowing max requests per day. A max of 0
// disables the cap.
func NewLimiter(max int) *Limiter {
	return &Limiter{
		max:       max,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// Allow checks whether another request fits the daily budget.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset()

	if l.max > 0 && l.count >= l.max {
		slog.Warn("Daily API quota reached", "used", l.count, "limit", l.max)
		return false
	}
	return true
}

// Use consumes one request from the budget.
func (l *Limiter) Use() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset()

	if l.max > 0 && l.count >= l.max {
		return fmt.Errorf("daily API quota exceeded (%d/%d)", l.count, l.max)
	}

	l.count++
	slog.Debug("API quota used", "used", l.count, "limit", l.max)
	return nil
}

// Remaining reports how many requests are left in the current window.
// Returns -1 when the cap is disabled.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset()

	if l.max <= 0 {
		return -1
	}
	return l.max - l.count
}

func (l *Limiter) Stats() map[string]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	return map[string]interface{}{
		"used":       l.count,
		"limit":      l.max,
		"reset_time": l.resetTime,
	}
}

func (l *Limiter) checkReset() {
	if time.Now().After(l.resetTime) {
		slog.Info("Resetting daily API quota", "used", l.count, "limit", l.max)
		l.count = 0
		l.resetTime = time.Now().Add(24 * time.Hour)
	}
}
