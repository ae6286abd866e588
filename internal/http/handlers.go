package http

import (
	"encoding/json"
	"net/http"

	"tabi/internal/catalog"
	"tabi/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Days   []catalog.Day
		Ledger ledgerView
	}{
		Days:   catalog.Days(),
		Ledger: s.buildLedgerView(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "render index", log.FieldError, err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	// The ledger loads before the server starts, so readiness is a
	// sanity check that the store is answering.
	if s.store.Rate().Sign() <= 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleMarkers serves the map marker list. The itinerary is static,
// so the payload is encoded once at startup.
func (s *Server) handleMarkers(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.markersJSON)
}

func encodeMarkers() ([]byte, error) {
	return json.Marshal(catalog.Markers())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
