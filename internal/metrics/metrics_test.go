package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassificationCounters(t *testing.T) {
	m := &Metrics{}

	m.IncrementClassification("local")
	m.IncrementClassification("local")
	m.IncrementClassification("foreign")
	m.IncrementClassification("regional")
	m.IncrementClassification("neutral")
	m.IncrementClassification("bogus") // ignored

	assert.Equal(t, int64(2), m.LocalCount)
	assert.Equal(t, int64(1), m.ForeignCount)
	assert.Equal(t, int64(1), m.RegionalCount)
	assert.Equal(t, int64(1), m.NeutralCount)
}

func TestProcessingTimeAverage(t *testing.T) {
	m := &Metrics{}

	m.RecordProcessingTime(100 * time.Millisecond)
	m.RecordProcessingTime(300 * time.Millisecond)

	assert.Equal(t, 300*time.Millisecond, m.LastProcessingTime)
	assert.Equal(t, 200*time.Millisecond, m.AverageProcessingTime)
}

func TestHealthTransitions(t *testing.T) {
	m := &Metrics{IsHealthy: true}

	m.SetError("feed unreachable")
	stats := m.GetStats()
	assert.False(t, stats["is_healthy"].(bool))
	assert.Equal(t, "feed unreachable", stats["last_error"])

	m.SetLastRun()
	assert.True(t, m.GetStats()["is_healthy"].(bool))
}
