package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nimbus/internal/auth"
	"nimbus/internal/domain"
)

// defaultUpcomingLimit caps the dashboard's upcoming-events strip.
const defaultUpcomingLimit = 5

type eventPayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

func eventToPayload(e *domain.CalendarEvent) eventPayload {
	return eventPayload{
		ID:        e.ID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
	}
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	events, err := s.events.ListByUser(r.Context(), session.UserEmail)
	if err != nil {
		s.respondError(w, r, err, "Failed to list events")
		return
	}

	payload := make([]eventPayload, 0, len(events))
	for _, e := range events {
		payload = append(payload, eventToPayload(e))
	}
	s.respondJSON(w, http.StatusOK, payload)
}

// handleUpcomingEvents returns events that have not yet ended, soonest
// first, for the dashboard view.
func (s *Server) handleUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	limit := defaultUpcomingLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := s.events.ListUpcoming(r.Context(), session.UserEmail, time.Now().UTC(), limit)
	if err != nil {
		s.respondError(w, r, err, "Failed to list upcoming events")
		return
	}

	payload := make([]eventPayload, 0, len(events))
	for _, e := range events {
		payload = append(payload, eventToPayload(e))
	}
	s.respondJSON(w, http.StatusOK, payload)
}

type createEventRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Type      string    `json:"type"`
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	var req createEventRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	now := time.Now().UTC()
	event := &domain.CalendarEvent{
		ID:        uuid.NewString(),
		UserEmail: session.UserEmail,
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := event.Validate(); err != nil {
		s.respondError(w, r, err, "Failed to create event")
		return
	}
	if err := s.events.Create(r.Context(), event); err != nil {
		s.respondError(w, r, err, "Failed to create event")
		return
	}

	s.respondJSON(w, http.StatusOK, eventToPayload(event))
}

type updateEventRequest struct {
	Title     *string    `json:"title"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Type      *string    `json:"type"`
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	id := chi.URLParam(r, "eventID")

	var req updateEventRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	event, err := s.events.GetByID(r.Context(), session.UserEmail, id)
	if err != nil {
		s.respondError(w, r, err, "Failed to update event")
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	event.UpdatedAt = time.Now().UTC()

	if err := event.Validate(); err != nil {
		s.respondError(w, r, err, "Failed to update event")
		return
	}
	if err := s.events.Update(r.Context(), event); err != nil {
		s.respondError(w, r, err, "Failed to update event")
		return
	}

	s.respondJSON(w, http.StatusOK, eventToPayload(event))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	id := chi.URLParam(r, "eventID")

	if err := s.events.Delete(r.Context(), session.UserEmail, id); err != nil {
		s.respondError(w, r, err, "Failed to delete event")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
