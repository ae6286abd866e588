// Package storage persists the ledger as two independently keyed entries
// in a SQLite-backed key-value table: the full expense collection as a
// JSON array and the current exchange rate as a decimal string. Both are
// read once at startup and rewritten in full on every mutation.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"tabi/internal/core"
)

// Storage keys. The v2 suffix matches the collection schema that carries
// per-record exchange rates; v1 data loads through the rate migration.
const (
	ExpensesKey = "tokyo_trip_expenses_v2"
	RateKey     = "tokyo_trip_current_rate"
)

// storedExpense is the persisted record shape. ExchangeRate is a pointer
// so records written before rates were snapshotted load as absent rather
// than zero-valued.
type storedExpense struct {
	ID           core.ExpenseID   `json:"id"`
	Category     core.Category    `json:"category"`
	Title        string           `json:"title"`
	Amount       int64            `json:"amount"`
	Currency     core.Currency    `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	Paid         bool             `json:"paid"`
	Date         string           `json:"date"`
}

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database file and runs
// migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveExpenses rewrites the full collection snapshot.
func (s *SQLiteStore) SaveExpenses(ctx context.Context, items []core.Expense) error {
	stored := make([]storedExpense, len(items))
	for i, e := range items {
		rate := e.Rate
		stored[i] = storedExpense{
			ID:           e.ID,
			Category:     e.Category,
			Title:        e.Title,
			Amount:       e.Amount,
			Currency:     e.Currency,
			ExchangeRate: &rate,
			Paid:         e.Paid,
			Date:         e.Date,
		}
	}
	value, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	if err := s.put(ctx, ExpensesKey, string(value)); err != nil {
		return err
	}
	slog.DebugContext(ctx, "Expense snapshot persisted", "count", len(items))
	return nil
}

// SaveRate rewrites the current-rate entry.
func (s *SQLiteStore) SaveRate(ctx context.Context, rate decimal.Decimal) error {
	return s.put(ctx, RateKey, rate.String())
}

// LoadExpenses reads the persisted collection. Records lacking an
// exchange rate come back with a zero rate; the ledger substitutes its
// default on load instead of dropping them.
func (s *SQLiteStore) LoadExpenses(ctx context.Context) ([]core.Expense, bool, error) {
	value, found, err := s.get(ctx, ExpensesKey)
	if err != nil || !found {
		return nil, false, err
	}

	var stored []storedExpense
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, false, fmt.Errorf("unmarshal expenses: %w", err)
	}

	items := make([]core.Expense, len(stored))
	for i, se := range stored {
		e := core.Expense{
			ID:       se.ID,
			Category: se.Category,
			Title:    se.Title,
			Amount:   se.Amount,
			Currency: se.Currency,
			Paid:     se.Paid,
			Date:     se.Date,
		}
		if se.ExchangeRate != nil {
			e.Rate = *se.ExchangeRate
		}
		items[i] = e
	}
	return items, true, nil
}

// LoadRate reads the persisted current rate.
func (s *SQLiteStore) LoadRate(ctx context.Context) (decimal.Decimal, bool, error) {
	value, found, err := s.get(ctx, RateKey)
	if err != nil || !found {
		return decimal.Zero, false, err
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parse stored rate %q: %w", value, err)
	}
	return rate, true, nil
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}
