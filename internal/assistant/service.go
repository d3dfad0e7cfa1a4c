package assistant

import (
	"context"
	"encoding/json"

	"nimbus/internal/llm"
)

// Service is the AI-assisted scheduling pipeline: it turns a typed
// request into a prompt pair, dispatches it once, and returns the
// completion. It performs no recovery; callers translate failures at
// the boundary.
type Service interface {
	// SuggestSchedule answers a free-form scheduling request.
	SuggestSchedule(ctx context.Context, req SchedulingRequest) (*llm.CompletionResult, error)

	// PrioritizeTasks asks for a prioritized ordering of the supplied tasks.
	PrioritizeTasks(ctx context.Context, tasks []json.RawMessage, taskContext string) (*llm.CompletionResult, error)

	// ResolveConflict recommends a resolution for two competing events.
	ResolveConflict(ctx context.Context, conflict Conflict, preferences map[string]any) (*llm.CompletionResult, error)

	// Chat answers a general chat message.
	Chat(ctx context.Context, message string) (*llm.CompletionResult, error)
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by a completion client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) SuggestSchedule(ctx context.Context, req SchedulingRequest) (*llm.CompletionResult, error) {
	prompt, err := ComposeSchedule(req)
	if err != nil {
		return nil, err
	}
	return s.client.Complete(ctx, llm.CompletionRequest{
		Task:   llm.TaskSchedule,
		System: prompt.System,
		User:   prompt.User,
	})
}

func (s *service) PrioritizeTasks(ctx context.Context, tasks []json.RawMessage, taskContext string) (*llm.CompletionResult, error) {
	prompt, err := ComposePrioritize(tasks, taskContext)
	if err != nil {
		return nil, err
	}
	return s.client.Complete(ctx, llm.CompletionRequest{
		Task:   llm.TaskPrioritize,
		System: prompt.System,
		User:   prompt.User,
	})
}

func (s *service) ResolveConflict(ctx context.Context, conflict Conflict, preferences map[string]any) (*llm.CompletionResult, error) {
	prompt := ComposeConflict(conflict, preferences)
	return s.client.Complete(ctx, llm.CompletionRequest{
		Task:   llm.TaskConflict,
		System: prompt.System,
		User:   prompt.User,
	})
}

func (s *service) Chat(ctx context.Context, message string) (*llm.CompletionResult, error) {
	prompt, err := ComposeChat(message)
	if err != nil {
		return nil, err
	}
	return s.client.Complete(ctx, llm.CompletionRequest{
		Task:   llm.TaskChat,
		System: prompt.System,
		User:   prompt.User,
	})
}
