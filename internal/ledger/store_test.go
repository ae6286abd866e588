package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tabi/internal/core"
	"tabi/internal/storage"
)

func newTestStore(t *testing.T, opts Options) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Date(2024, 4, 6, 12, 0, 0, 0, time.UTC) }
	}
	if opts.DefaultRate.Sign() <= 0 {
		opts.DefaultRate = decimal.New(215, -3)
	}
	s := New(mem, opts)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, mem
}

func TestAddEndToEnd(t *testing.T) {
	s, _ := newTestStore(t, Options{DefaultRate: decimal.New(2, -1)}) // 0.2

	e, err := s.Add(context.Background(), "Ramen", "1000", core.Dining)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if e.Amount != 1000 || e.Currency != core.JPY || !e.Paid {
		t.Fatalf("unexpected record: %+v", e)
	}
	if !e.Rate.Equal(decimal.New(2, -1)) {
		t.Fatalf("rate = %s, want 0.2", e.Rate)
	}
	if e.ID.Kind != core.DynamicID {
		t.Fatalf("new records must carry dynamic ids, got %+v", e.ID)
	}
	if e.Date != "4/6" {
		t.Fatalf("date = %q, want short localized form 4/6", e.Date)
	}
	if total := s.Totals().Total; !total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("total = %s, want 200", total)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	s, _ := newTestStore(t, Options{})

	cases := []struct {
		name, title, amount string
	}{
		{"empty title", "", "1000"},
		{"blank title", "   ", "1000"},
		{"empty amount", "Ramen", ""},
		{"zero amount", "Ramen", "0"},
		{"negative amount", "Ramen", "-5"},
		{"non-numeric amount", "Ramen", "lots"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Add(context.Background(), tc.title, tc.amount, core.Dining); err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
	if n := len(s.Items()); n != 0 {
		t.Fatalf("rejected adds must not create records, got %d", n)
	}
}

func TestSnapshotRateInvariant(t *testing.T) {
	s, _ := newTestStore(t, Options{})
	ctx := context.Background()

	if err := s.SetRate(ctx, "0.2"); err != nil {
		t.Fatalf("set rate: %v", err)
	}
	first, err := s.Add(ctx, "Lunch", "1000", core.Dining)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.SetRate(ctx, "0.25"); err != nil {
		t.Fatalf("set rate: %v", err)
	}
	second, err := s.Add(ctx, "Dinner", "1000", core.Dining)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Each record keeps the rate in effect at its own creation time.
	items := s.Items()
	for _, e := range items {
		switch {
		case e.ID.Equal(first.ID) && !e.Rate.Equal(decimal.RequireFromString("0.2")):
			t.Fatalf("first record rate changed to %s", e.Rate)
		case e.ID.Equal(second.ID) && !e.Rate.Equal(decimal.RequireFromString("0.25")):
			t.Fatalf("second record rate = %s, want 0.25", e.Rate)
		}
	}

	// Editing today's rate never revises existing conversions.
	before := s.Totals().Total
	if err := s.SetRate(ctx, "0.9"); err != nil {
		t.Fatalf("set rate: %v", err)
	}
	if after := s.Totals().Total; !after.Equal(before) {
		t.Fatalf("total moved from %s to %s after rate edit", before, after)
	}
}

func TestDynamicIDUniqueness(t *testing.T) {
	fixed := time.Date(2024, 4, 7, 9, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, Options{Now: func() time.Time { return fixed }})
	ctx := context.Background()

	a, _ := s.Add(ctx, "one", "100", core.Other)
	b, _ := s.Add(ctx, "two", "100", core.Other)
	if a.ID.Equal(b.ID) {
		t.Fatalf("same-instant adds produced duplicate id %s", a.ID)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s, _ := newTestStore(t, Options{Seed: DefaultOptions().Seed})
	ctx := context.Background()
	before := s.Items()
	target := before[0].ID

	removed, err := s.Delete(ctx, target, false)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed {
		t.Fatal("unconfirmed delete must be a no-op")
	}
	if got := s.Items(); len(got) != len(before) {
		t.Fatalf("collection changed: %d -> %d", len(before), len(got))
	}

	removed, err = s.Delete(ctx, target, true)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Fatal("confirmed delete must remove the record")
	}
	after := s.Items()
	if len(after) != len(before)-1 {
		t.Fatalf("expected exactly one removal, %d -> %d", len(before), len(after))
	}
	// Remaining records keep their pre-sort order.
	for i, e := range after {
		if !e.ID.Equal(before[i+1].ID) {
			t.Fatalf("order disturbed at %d: %s != %s", i, e.ID, before[i+1].ID)
		}
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t, Options{Seed: DefaultOptions().Seed})
	removed, err := s.Delete(context.Background(), core.NewStaticID("nope"), true)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed {
		t.Fatal("unknown id must not remove anything")
	}
}

func TestTogglePaid(t *testing.T) {
	s, _ := newTestStore(t, Options{Seed: DefaultOptions().Seed})
	ctx := context.Background()

	id := core.NewStaticID("initial-hotel")
	ok, err := s.TogglePaid(ctx, id)
	if err != nil || !ok {
		t.Fatalf("toggle: ok=%v err=%v", ok, err)
	}
	for _, e := range s.Items() {
		if e.ID.Equal(id) && !e.Paid {
			t.Fatal("toggle did not flip the flag")
		}
	}

	ok, err = s.TogglePaid(ctx, core.NewDynamicID(42))
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if ok {
		t.Fatal("unknown id must be a no-op")
	}
}

func TestLoadMigratesMissingRate(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Seed([]core.Expense{
		{ID: core.NewStaticID("legacy"), Category: core.Other, Title: "old", Amount: 500, Currency: core.JPY, Paid: true, Date: "3/1"},
		{ID: core.NewDynamicID(7), Category: core.Dining, Title: "kept", Amount: 300, Currency: core.JPY, Rate: decimal.New(22, -2), Paid: true, Date: "3/2"},
	})

	s := New(mem, Options{DefaultRate: decimal.New(215, -3), Now: time.Now})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("legacy records must not be dropped, got %d", len(items))
	}
	for _, e := range items {
		switch e.Title {
		case "old":
			if !e.Rate.Equal(decimal.New(215, -3)) {
				t.Fatalf("legacy record rate = %s, want default 0.215", e.Rate)
			}
		case "kept":
			if !e.Rate.Equal(decimal.New(22, -2)) {
				t.Fatalf("existing rate must not be rewritten, got %s", e.Rate)
			}
		}
	}
}

func TestLoadFallsBackToSeed(t *testing.T) {
	s, _ := newTestStore(t, Options{Seed: DefaultOptions().Seed})
	if got := len(s.Items()); got != 3 {
		t.Fatalf("expected seeded dataset on empty storage, got %d records", got)
	}
	if !s.Rate().Equal(decimal.New(215, -3)) {
		t.Fatalf("rate = %s, want default", s.Rate())
	}
}

func TestMutationsPersistFullSnapshot(t *testing.T) {
	s, mem := newTestStore(t, Options{})
	ctx := context.Background()

	if _, err := s.Add(ctx, "Taiyaki", "400", core.Dining); err != nil {
		t.Fatalf("add: %v", err)
	}

	stored, found, err := mem.LoadExpenses(ctx)
	if err != nil || !found {
		t.Fatalf("load persisted: found=%v err=%v", found, err)
	}
	if len(stored) != 1 || stored[0].Title != "Taiyaki" {
		t.Fatalf("persisted snapshot mismatch: %+v", stored)
	}

	if err := s.SetRate(ctx, "0.23"); err != nil {
		t.Fatalf("set rate: %v", err)
	}
	rate, found, err := mem.LoadRate(ctx)
	if err != nil || !found {
		t.Fatalf("load rate: found=%v err=%v", found, err)
	}
	if !rate.Equal(decimal.RequireFromString("0.23")) {
		t.Fatalf("persisted rate = %s", rate)
	}
}
