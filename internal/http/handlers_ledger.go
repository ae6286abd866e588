package http

import (
	"errors"
	"net/http"

	"tabi/internal/core"
	"tabi/internal/log"
)

func (s *Server) handleLedgerView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderLedger(w); err != nil {
		s.logger.ErrorContext(r.Context(), "render ledger", log.FieldError, err)
	}
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	amount := r.FormValue("amount")
	category := core.Category(r.FormValue("category"))

	e, err := s.store.Add(r.Context(), title, amount, category)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrEmptyTitle) || errors.Is(err, core.ErrInvalidAmount) || errors.Is(err, core.ErrInvalidCategory) {
			status = http.StatusBadRequest
		}
		s.logger.WarnContext(r.Context(), "add expense rejected",
			log.FieldOperation, "add",
			log.FieldError, err,
		)
		http.Error(w, err.Error(), status)
		return
	}

	s.logger.InfoContext(r.Context(), "expense added",
		log.FieldExpenseID, e.ID.String(),
		log.FieldAmount, e.Amount,
	)
	s.respondLedger(w, r)
}

func (s *Server) handleTogglePaid(w http.ResponseWriter, r *http.Request) {
	id := core.ParseExpenseID(r.FormValue("id"))
	found, err := s.store.TogglePaid(r.Context(), id)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "toggle paid", log.FieldExpenseID, id.String(), log.FieldError, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "expense not found", http.StatusNotFound)
		return
	}
	s.respondLedger(w, r)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := core.ParseExpenseID(r.FormValue("id"))
	confirmed := r.FormValue("confirm") == "1"
	if !confirmed {
		// Destructive action requires explicit confirmation.
		http.Error(w, "confirmation required", http.StatusBadRequest)
		return
	}

	deleted, err := s.store.Delete(r.Context(), id, true)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "delete expense", log.FieldExpenseID, id.String(), log.FieldError, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "expense not found", http.StatusNotFound)
		return
	}

	s.logger.InfoContext(r.Context(), "expense deleted", log.FieldExpenseID, id.String())
	s.respondLedger(w, r)
}

func (s *Server) handleSetRate(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("rate")
	if err := s.store.SetRate(r.Context(), raw); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidRate) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	s.logger.InfoContext(r.Context(), "rate updated", log.FieldRate, s.store.Rate().String())
	s.respondLedger(w, r)
}

// respondLedger invalidates the cached fragment and answers the
// mutation with a fresh render, so the UI swaps it in place.
func (s *Server) respondLedger(w http.ResponseWriter, r *http.Request) {
	s.invalidateLedger()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderLedger(w); err != nil {
		s.logger.ErrorContext(r.Context(), "render ledger", log.FieldError, err)
	}
}
