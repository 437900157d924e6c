package controllers

import (
	"context"
	"presence/internal/aggregation"
	"presence/internal/models"
	"presence/internal/providers"
	"presence/internal/services"
	"time"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockService struct {
	gen     uint64
	data    models.Dataset
	users   []services.UserSummary
	rows    map[int][]aggregation.Row
	err     error
	calls   int
	entries int
}

func (m *mockService) GetData() (models.Dataset, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}
func (m *mockService) Generation() (uint64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.gen, nil
}
func (m *mockService) Users() ([]services.UserSummary, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}
func (m *mockService) view(userID int) ([]aggregation.Row, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if rows, ok := m.rows[userID]; ok {
		return rows, nil
	}
	return []aggregation.Row{}, nil
}
func (m *mockService) MeanTimeWeekday(userID int) ([]aggregation.Row, error)  { return m.view(userID) }
func (m *mockService) PresenceWeekday(userID int) ([]aggregation.Row, error)  { return m.view(userID) }
func (m *mockService) PresenceStartEnd(userID int) ([]aggregation.Row, error) { return m.view(userID) }
func (m *mockService) Invalidate()                                            {}
func (m *mockService) CacheEntries() int                                      { return m.entries }

type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache                     { return &mockCache{data: make(map[string][]byte)} }
func (m *mockCache) Get(key string) ([]byte, bool) { v, ok := m.data[key]; return v, ok }
func (m *mockCache) Set(key string, value []byte)  { m.data[key] = value }
func (m *mockCache) Clear()                        { m.data = make(map[string][]byte) }

type mockScheduler struct {
	last    time.Time
	lastErr string
}

func (m *mockScheduler) Init()                              {}
func (m *mockScheduler) Stop()                              {}
func (m *mockScheduler) RefreshNow(_ context.Context) error { return nil }
func (m *mockScheduler) LastRefresh() time.Time             { return m.last }
func (m *mockScheduler) LastError() string                  { return m.lastErr }
