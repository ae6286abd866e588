package events

import (
	"encoding/json"
	"time"
)

// LedgerEvent is the wire message published after a ledger mutation.
// It names the operation and the record it touched; consumers read the
// current snapshot from storage if they need the full state.
type LedgerEvent struct {
	Op        string    `json:"op"`
	ExpenseID string    `json:"expense_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLedgerEvent(op, expenseID string) *LedgerEvent {
	return &LedgerEvent{
		Op:        op,
		ExpenseID: expenseID,
		Timestamp: time.Now(),
	}
}

func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
