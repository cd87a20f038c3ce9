package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesProcessed  int64
	DuplicatesFiltered int64
	UnknownPublishers  int64
	LocalCount         int64
	ForeignCount       int64
	RegionalCount      int64
	NeutralCount       int64
	FetchErrors        int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddArticlesProcessed(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesProcessed += n
}

func (m *Metrics) AddDuplicatesFiltered(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered += n
}

func (m *Metrics) IncrementUnknownPublishers() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UnknownPublishers++
}

func (m *Metrics) IncrementFetchErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchErrors++
}

// IncrementClassification bumps the counter for one of the four labels.
func (m *Metrics) IncrementClassification(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch label {
	case "local":
		m.LocalCount++
	case "foreign":
		m.ForeignCount++
	case "regional":
		m.RegionalCount++
	case "neutral":
		m.NeutralCount++
	}
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_processed":         m.ArticlesProcessed,
		"duplicates_filtered":        m.DuplicatesFiltered,
		"unknown_publishers":         m.UnknownPublishers,
		"classified_local":           m.LocalCount,
		"classified_foreign":         m.ForeignCount,
		"classified_regional":        m.RegionalCount,
		"classified_neutral":         m.NeutralCount,
		"fetch_errors":               m.FetchErrors,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
