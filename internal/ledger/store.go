// Package ledger owns the mutable expense collection and the current
// exchange rate. The store is an explicit, injectable container: tests
// and callers construct isolated instances instead of sharing ambient
// state. Every mutation rewrites the persisted snapshot in full.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"tabi/internal/core"
)

// Persister is the durable storage port. Load methods report whether a
// value was present so the store can fall back to its seeded defaults.
type Persister interface {
	SaveExpenses(ctx context.Context, items []core.Expense) error
	SaveRate(ctx context.Context, rate decimal.Decimal) error
	LoadExpenses(ctx context.Context) ([]core.Expense, bool, error)
	LoadRate(ctx context.Context) (decimal.Decimal, bool, error)
}

// Notifier receives fire-and-forget mutation events. A nil notifier is
// valid and disables the feed.
type Notifier interface {
	LedgerChanged(ctx context.Context, op string, id core.ExpenseID)
}

const (
	OpAdd     = "add"
	OpDelete  = "delete"
	OpToggle  = "toggle_paid"
	OpSetRate = "set_rate"
)

// Options carries the construction-time defaults. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	DefaultRate decimal.Decimal
	Seed        []core.Expense
	Now         func() time.Time
	Notifier    Notifier
}

// DefaultOptions returns the seeded dataset and default rate the app
// ships with: the two flights already paid in TWD and the hotel pending
// in JPY.
func DefaultOptions() Options {
	rate := decimal.New(215, -3) // 0.215
	return Options{
		DefaultRate: rate,
		Now:         time.Now,
		Seed: []core.Expense{
			{
				ID:       core.NewStaticID("flight-kristine"),
				Category: core.Transport,
				Title:    "Kristine 機票",
				Amount:   6322,
				Currency: core.TWD,
				Rate:     decimal.NewFromInt(1),
				Paid:     true,
				Date:     "已付",
			},
			{
				ID:       core.NewStaticID("flight-lin"),
				Category: core.Transport,
				Title:    "Lin 機票",
				Amount:   6222,
				Currency: core.TWD,
				Rate:     decimal.NewFromInt(1),
				Paid:     true,
				Date:     "已付",
			},
			{
				ID:       core.NewStaticID("initial-hotel"),
				Category: core.Lodging,
				Title:    "品川王子大飯店 (5泊)",
				Amount:   98970,
				Currency: core.JPY,
				Rate:     rate,
				Paid:     false,
				Date:     "4/5-4/9",
			},
		},
	}
}

type Store struct {
	mu        sync.Mutex
	items     []core.Expense
	rate      decimal.Decimal
	persister Persister
	opts      Options
}

// New builds a store over the given persister. Call Load before use.
func New(p Persister, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultRate.Sign() <= 0 {
		opts.DefaultRate = DefaultOptions().DefaultRate
	}
	return &Store{persister: p, opts: opts, rate: opts.DefaultRate}
}

// Load initializes the store from persisted state, falling back to the
// seeded defaults when nothing is stored or the read fails. Records
// persisted by an older schema without an exchange rate are assigned the
// default rate; they are never dropped.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, found, err := s.persister.LoadExpenses(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Expense load failed, using seed data", "error", err)
		found = false
	}
	if !found {
		items = append([]core.Expense(nil), s.opts.Seed...)
	}
	migrated := 0
	for i := range items {
		if items[i].Rate.Sign() <= 0 {
			items[i].Rate = s.opts.DefaultRate
			migrated++
		}
	}
	if migrated > 0 {
		slog.InfoContext(ctx, "Assigned default rate to legacy records", "count", migrated)
	}
	s.items = items

	rate, found, err := s.persister.LoadRate(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Rate load failed, using default", "error", err)
		found = false
	}
	if !found || rate.Sign() <= 0 {
		rate = s.opts.DefaultRate
	}
	s.rate = rate

	return nil
}

// Add creates a foreign-currency record from raw user input. The current
// rate is snapshotted onto the record at this moment and never revised.
// Invalid input suppresses the operation: no partial record is created.
func (s *Store) Add(ctx context.Context, title, amount string, cat core.Category) (core.Expense, error) {
	amt, err := core.ParseAmount(amount)
	if err != nil {
		return core.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.Now()
	e := core.Expense{
		ID:       s.nextDynamicID(now),
		Category: cat,
		Title:    title,
		Amount:   amt,
		Currency: core.JPY,
		Rate:     s.rate,
		Paid:     true, // new tracked expenses default to settled
		Date:     fmt.Sprintf("%d/%d", int(now.Month()), now.Day()),
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	s.items = append([]core.Expense{e}, s.items...)
	if err := s.persister.SaveExpenses(ctx, s.items); err != nil {
		return e, fmt.Errorf("persist expenses: %w", err)
	}
	s.notify(ctx, OpAdd, e.ID)
	return e, nil
}

// nextDynamicID derives a timestamp id, bumping forward past any stamp
// already in use so id uniqueness holds for the store's lifetime.
func (s *Store) nextDynamicID(now time.Time) core.ExpenseID {
	stamp := now.UnixMilli()
	for s.findLocked(core.NewDynamicID(stamp)) >= 0 {
		stamp++
	}
	return core.NewDynamicID(stamp)
}

// Delete removes the matching record once the destructive action has
// been confirmed. An unconfirmed call or an unknown id is a no-op.
func (s *Store) Delete(ctx context.Context, id core.ExpenseID, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if err := s.persister.SaveExpenses(ctx, s.items); err != nil {
		return true, fmt.Errorf("persist expenses: %w", err)
	}
	s.notify(ctx, OpDelete, id)
	return true, nil
}

// TogglePaid flips the settlement flag on the matching record. Unknown
// ids are a no-op. Nothing else about the record changes.
func (s *Store) TogglePaid(ctx context.Context, id core.ExpenseID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return false, nil
	}
	s.items[i].Paid = !s.items[i].Paid
	if err := s.persister.SaveExpenses(ctx, s.items); err != nil {
		return true, fmt.Errorf("persist expenses: %w", err)
	}
	s.notify(ctx, OpToggle, id)
	return true, nil
}

// SetRate updates today's rate, the default snapshot for future Add
// calls. Existing records keep the rate they were created with.
func (s *Store) SetRate(ctx context.Context, raw string) error {
	rate, err := core.ParseRate(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rate = rate
	if err := s.persister.SaveRate(ctx, rate); err != nil {
		return fmt.Errorf("persist rate: %w", err)
	}
	s.notify(ctx, OpSetRate, core.ExpenseID{})
	return nil
}

// Rate returns today's rate.
func (s *Store) Rate() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// Items returns a copy of the collection in insertion order, newest
// first.
func (s *Store) Items() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...)
}

// Sorted returns the display ordering.
func (s *Store) Sorted() []core.Expense {
	return core.SortForDisplay(s.Items())
}

// Totals aggregates the collection in the home currency.
func (s *Store) Totals() core.Totals {
	return core.ComputeTotals(s.Items())
}

// Breakdown aggregates per category in the home currency.
func (s *Store) Breakdown() core.Breakdown {
	return core.ComputeBreakdown(s.Items())
}

func (s *Store) findLocked(id core.ExpenseID) int {
	for i, e := range s.items {
		if e.ID.Equal(id) {
			return i
		}
	}
	return -1
}

func (s *Store) notify(ctx context.Context, op string, id core.ExpenseID) {
	if s.opts.Notifier == nil {
		return
	}
	s.opts.Notifier.LedgerChanged(ctx, op, id)
}
