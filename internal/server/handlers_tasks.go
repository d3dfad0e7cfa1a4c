package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nimbus/internal/auth"
	"nimbus/internal/domain"
)

type taskPayload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

func taskToPayload(t *domain.Task) taskPayload {
	return taskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	tasks, err := s.tasks.ListByUser(r.Context(), session.UserEmail)
	if err != nil {
		s.respondError(w, r, err, "Failed to list tasks")
		return
	}

	payload := make([]taskPayload, 0, len(tasks))
	for _, t := range tasks {
		payload = append(payload, taskToPayload(t))
	}
	s.respondJSON(w, http.StatusOK, payload)
}

type createTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())

	var req createTaskRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		UserEmail:   session.UserEmail,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    domain.Priority(req.Priority),
		Category:    domain.Category(req.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := task.Validate(); err != nil {
		s.respondError(w, r, err, "Failed to create task")
		return
	}
	if err := s.tasks.Create(r.Context(), task); err != nil {
		s.respondError(w, r, err, "Failed to create task")
		return
	}

	s.respondJSON(w, http.StatusOK, taskToPayload(task))
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
	Completed   *bool      `json:"completed"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	id := chi.URLParam(r, "taskID")

	var req updateTaskRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	task, err := s.tasks.GetByID(r.Context(), session.UserEmail, id)
	if err != nil {
		s.respondError(w, r, err, "Failed to update task")
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		task.Priority = domain.Priority(*req.Priority)
	}
	if req.Category != nil {
		task.Category = domain.Category(*req.Category)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		s.respondError(w, r, err, "Failed to update task")
		return
	}
	if err := s.tasks.Update(r.Context(), task); err != nil {
		s.respondError(w, r, err, "Failed to update task")
		return
	}

	s.respondJSON(w, http.StatusOK, taskToPayload(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFrom(r.Context())
	id := chi.URLParam(r, "taskID")

	if err := s.tasks.Delete(r.Context(), session.UserEmail, id); err != nil {
		s.respondError(w, r, err, "Failed to delete task")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
