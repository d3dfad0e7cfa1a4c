package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"nimbus/internal/assistant"
	"nimbus/internal/domain"
	"nimbus/internal/repository"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encoding response", zap.Error(err))
	}
}

func (s *Server) respondErrorMessage(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// respondError maps pipeline and storage failures onto the response
// envelope. Validation failures name the offending field; anything
// else surfaces as the handler's fixed fallback message with the
// diagnostic detail logged, never echoed.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if assistant.IsValidation(err) {
		s.respondErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		s.respondErrorMessage(w, http.StatusBadRequest, fe.Error())
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		s.respondErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	s.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	s.respondErrorMessage(w, http.StatusInternalServerError, fallback)
}

// decodeBody decodes a JSON request body, responding 400 on malformed
// input. Returns false when the response has already been written.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
