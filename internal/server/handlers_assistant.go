package server

import (
	"encoding/json"
	"net/http"

	"nimbus/internal/assistant"
)

type scheduleRequest struct {
	Prompt      string                 `json:"prompt"`
	UserContext *assistant.UserContext `json:"userContext"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.assistant.SuggestSchedule(r.Context(), assistant.SchedulingRequest{
		Prompt:      req.Prompt,
		UserContext: req.UserContext,
	})
	if err != nil {
		s.respondError(w, r, err, "Failed to generate schedule")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"result": result.Text})
}

type prioritizeRequest struct {
	Tasks   []json.RawMessage `json:"tasks"`
	Context string            `json:"context"`
}

func (s *Server) handlePrioritizeTasks(w http.ResponseWriter, r *http.Request) {
	var req prioritizeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.assistant.PrioritizeTasks(r.Context(), req.Tasks, req.Context)
	if err != nil {
		s.respondError(w, r, err, "Failed to prioritize tasks")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"result": result.Text})
}

type conflictRequest struct {
	Conflict *struct {
		Event1 *assistant.ConflictEvent `json:"event1"`
		Event2 *assistant.ConflictEvent `json:"event2"`
	} `json:"conflict"`
	UserPreferences map[string]any `json:"userPreferences"`
}

func (s *Server) handleResolveConflict(w http.ResponseWriter, r *http.Request) {
	var req conflictRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.Conflict == nil || req.Conflict.Event1 == nil || req.Conflict.Event2 == nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "Valid conflict information is required")
		return
	}

	result, err := s.assistant.ResolveConflict(r.Context(), assistant.Conflict{
		Event1: *req.Conflict.Event1,
		Event2: *req.Conflict.Event2,
	}, req.UserPreferences)
	if err != nil {
		s.respondError(w, r, err, "Failed to resolve conflict")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"result": result.Text})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.assistant.Chat(r.Context(), req.Message)
	if err != nil {
		s.respondError(w, r, err, "Failed to process chat message")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"response": result.Text})
}
