package storage

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"tabi/internal/core"
)

// MemoryStore keeps the snapshots in process memory. Used by the memory
// backend and by tests that need a persister without a database file.
type MemoryStore struct {
	mu       sync.Mutex
	items    []core.Expense
	hasItems bool
	rate     decimal.Decimal
	hasRate  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) SaveExpenses(_ context.Context, items []core.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]core.Expense(nil), items...)
	m.hasItems = true
	return nil
}

func (m *MemoryStore) SaveRate(_ context.Context, rate decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = rate
	m.hasRate = true
	return nil
}

func (m *MemoryStore) LoadExpenses(_ context.Context) ([]core.Expense, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasItems {
		return nil, false, nil
	}
	return append([]core.Expense(nil), m.items...), true, nil
}

func (m *MemoryStore) LoadRate(_ context.Context) (decimal.Decimal, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasRate {
		return decimal.Zero, false, nil
	}
	return m.rate, true, nil
}

// Seed primes the store with a persisted collection, as if a previous
// session had written it. Test helper.
func (m *MemoryStore) Seed(items []core.Expense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]core.Expense(nil), items...)
	m.hasItems = true
}
