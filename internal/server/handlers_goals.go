package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nimbus/internal/auth"
	"nimbus/internal/domain"
)

type goalPayload struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Target    int        `json:"target"`
	Progress  int        `json:"progress"`
	Percent   int        `json:"percent"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func goalToPayload(g *domain.Goal) goalPayload {
	return goalPayload{
		ID:        g.ID,
		Title:     g.Title,
		Target:    g.Target,
		Progress:  g.Progress,
		Percent:   g.PercentComplete(),
		DueDate:   g.DueDate,
		CreatedAt: g.CreatedAt,
	}
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	goals, err := s.goals.ListByUser(r.Context(), session.UserEmail)
	if err != nil {
		s.respondError(w, r, err, "Failed to list goals")
		return
	}

	payload := make([]goalPayload, 0, len(goals))
	for _, g := range goals {
		payload = append(payload, goalToPayload(g))
	}
	s.respondJSON(w, http.StatusOK, payload)
}

type createGoalRequest struct {
	Title   string     `json:"title"`
	Target  int        `json:"target"`
	DueDate *time.Time `json:"dueDate"`
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	var req createGoalRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	now := time.Now().UTC()
	goal := &domain.Goal{
		ID:        uuid.NewString(),
		UserEmail: session.UserEmail,
		Title:     req.Title,
		Target:    req.Target,
		DueDate:   req.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := goal.Validate(); err != nil {
		s.respondError(w, r, err, "Failed to create goal")
		return
	}
	if err := s.goals.Create(r.Context(), goal); err != nil {
		s.respondError(w, r, err, "Failed to create goal")
		return
	}

	s.respondJSON(w, http.StatusOK, goalToPayload(goal))
}

type updateGoalRequest struct {
	Title    *string    `json:"title"`
	Target   *int       `json:"target"`
	Progress *int       `json:"progress"`
	DueDate  *time.Time `json:"dueDate"`
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	id := chi.URLParam(r, "goalID")

	var req updateGoalRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	goal, err := s.goals.GetByID(r.Context(), session.UserEmail, id)
	if err != nil {
		s.respondError(w, r, err, "Failed to update goal")
		return
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Target != nil {
		goal.Target = *req.Target
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
	}
	if req.DueDate != nil {
		goal.DueDate = req.DueDate
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := goal.Validate(); err != nil {
		s.respondError(w, r, err, "Failed to update goal")
		return
	}
	if err := s.goals.Update(r.Context(), goal); err != nil {
		s.respondError(w, r, err, "Failed to update goal")
		return
	}

	s.respondJSON(w, http.StatusOK, goalToPayload(goal))
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	id := chi.URLParam(r, "goalID")

	if err := s.goals.Delete(r.Context(), session.UserEmail, id); err != nil {
		s.respondError(w, r, err, "Failed to delete goal")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
