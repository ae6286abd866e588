package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"tabi/internal/log"
)

const maxChatBody = 8 << 10

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// handleChat relays a single message to the assistant. Calls are
// serialized: a second message while one is in flight gets a busy
// answer instead of queueing behind a slow model.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		http.Error(w, "empty message", http.StatusBadRequest)
		return
	}

	if !s.chatBusy.CompareAndSwap(false, true) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "busy"})
		return
	}
	defer s.chatBusy.Store(false)

	ctx, cancel := context.WithTimeout(r.Context(), s.chatLimit)
	defer cancel()

	reply := s.assistant.Send(ctx, req.Message)
	s.logger.InfoContext(r.Context(), "chat round-trip",
		log.FieldOperation, "chat",
		"chars_in", len(req.Message),
		"chars_out", len(reply),
	)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
