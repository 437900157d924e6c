package testutil

import (
	"fmt"
	"presence/internal/models"
	"presence/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu     sync.Mutex
	Logs   []LogEntry
	closed bool
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *MockLogger) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Has reports whether anything was logged at level.
func (m *MockLogger) Has(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    map[string]int
	CacheHits   map[string]int
	CacheMisses map[string]int
	Parses      int
	Skipped     map[string]int
	Users       int
	Refreshes   map[bool]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Requests:    make(map[string]int),
		CacheHits:   make(map[string]int),
		CacheMisses: make(map[string]int),
		Skipped:     make(map[string]int),
		Refreshes:   make(map[bool]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits(cache string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits[cache]++
}
func (m *MockMetrics) IncCacheMisses(cache string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses[cache]++
}
func (m *MockMetrics) ObserveParseDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Parses++
}
func (m *MockMetrics) AddSkippedRows(reason string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Skipped[reason] += count
}
func (m *MockMetrics) SetUsersTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users = count
}
func (m *MockMetrics) IncRefreshes(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Refreshes[ok]++
}

// PresenceDataset builds a dataset from space separated "id date start end" rows.
func PresenceDataset(rows ...string) models.Dataset {
	ds := models.Dataset{}
	for _, row := range rows {
		var id int
		var date, start, end string
		if _, err := fmt.Sscanf(row, "%d %s %s %s", &id, &date, &start, &end); err != nil {
			panic(fmt.Sprintf("bad fixture row %q: %s", row, err))
		}
		d, err := models.ParseDate(date)
		if err != nil {
			panic(err)
		}
		s, err := models.ParseTimeOfDay(start)
		if err != nil {
			panic(err)
		}
		e, err := models.ParseTimeOfDay(end)
		if err != nil {
			panic(err)
		}
		ds.Add(models.PresenceRecord{UserID: id, Date: d, Start: s, End: e})
	}
	return ds
}
