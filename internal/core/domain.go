package core

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Lodging   Category = "住宿"
	Dining    Category = "餐飲"
	Shopping  Category = "購物"
	Transport Category = "交通"
	Tickets   Category = "票券"
	Other     Category = "其他"
)

const (
	JPY Currency = "JPY" // foreign currency, converted through the record's snapshot rate
	TWD Currency = "TWD" // home currency, reported as-is
)

type (
	Category string

	Currency string

	// IDKind distinguishes authoring-time identifiers from runtime ones.
	IDKind int

	// ExpenseID is either a fixed label assigned when the seed dataset was
	// authored (Static) or a creation timestamp in milliseconds (Dynamic).
	// The kind drives the paid-partition ordering.
	ExpenseID struct {
		Kind  IDKind
		Label string
		Stamp int64
	}

	// Expense is a single tracked cost item. Rate is the JPY→TWD multiplier
	// captured when the record was created and is never recomputed.
	Expense struct {
		ID       ExpenseID
		Category Category
		Title    string
		Amount   int64
		Currency Currency
		Rate     decimal.Decimal
		Paid     bool
		Date     string
	}
)

const (
	StaticID IDKind = iota
	DynamicID
)

var (
	ErrEmptyTitle      = errors.New("empty title")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRate     = errors.New("invalid exchange rate")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNotFound        = errors.New("expense not found")
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{Lodging, Dining, Shopping, Transport, Tickets, Other}
}

func (c Category) Valid() bool {
	switch c {
	case Lodging, Dining, Shopping, Transport, Tickets, Other:
		return true
	}
	return false
}

// NewStaticID builds an authoring-time identifier.
func NewStaticID(label string) ExpenseID {
	return ExpenseID{Kind: StaticID, Label: label}
}

// NewDynamicID builds a runtime identifier from a creation timestamp
// in milliseconds.
func NewDynamicID(stampMillis int64) ExpenseID {
	return ExpenseID{Kind: DynamicID, Stamp: stampMillis}
}

// ParseExpenseID recovers an id from its persisted string form. An
// all-digit string is a dynamic (timestamp) id, anything else is static.
func ParseExpenseID(s string) ExpenseID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && s != "" {
		return NewDynamicID(n)
	}
	return NewStaticID(s)
}

// String returns the persisted form: the label for static ids, the
// decimal timestamp for dynamic ones.
func (id ExpenseID) String() string {
	if id.Kind == DynamicID {
		return strconv.FormatInt(id.Stamp, 10)
	}
	return id.Label
}

func (id ExpenseID) Equal(other ExpenseID) bool {
	return id.Kind == other.Kind && id.Label == other.Label && id.Stamp == other.Stamp
}

func (id ExpenseID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ExpenseID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = ParseExpenseID(s)
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Title)) == 0 {
		return ErrEmptyTitle
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	if e.Rate.Sign() <= 0 {
		return ErrInvalidRate
	}
	return nil
}

// HomeValue converts the expense to the home currency using the record's
// own snapshot rate. Home-currency records come back at face value no
// matter what rate they carry.
func (e Expense) HomeValue() decimal.Decimal {
	amount := decimal.NewFromInt(e.Amount)
	if e.Currency == TWD {
		return amount
	}
	return amount.Mul(e.Rate)
}
