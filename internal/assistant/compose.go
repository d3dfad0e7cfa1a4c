package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt is the ordered pair of system and user messages sent as input
// to a completion request.
type Prompt struct {
	System string
	User   string
}

// UserContext carries optional structured context about the user that
// is folded into the scheduling system prompt.
type UserContext struct {
	Preferences map[string]any `json:"preferences,omitempty"`
	Calendar    []ContextEvent `json:"calendar,omitempty"`
	Tasks       []ContextTask  `json:"tasks,omitempty"`
}

// ContextEvent is a calendar entry as serialized into the prompt.
type ContextEvent struct {
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
}

// ContextTask is a task as serialized into the prompt.
type ContextTask struct {
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
}

// SchedulingRequest is a free-form scheduling request plus optional
// user context. Immutable once constructed; created per incoming call
// and discarded after the response.
type SchedulingRequest struct {
	Prompt      string       `json:"prompt"`
	UserContext *UserContext `json:"userContext,omitempty"`
}

// ConflictEvent is one of two competing calendar entries. Time is a
// display string, not a parsed timestamp. Importance is optional.
type ConflictEvent struct {
	Title      string `json:"title"`
	Time       string `json:"time"`
	Importance string `json:"importance,omitempty"`
}

// Conflict represents two competing calendar entries. It has no
// identity beyond the pair and is request-scoped.
type Conflict struct {
	Event1 ConflictEvent `json:"event1"`
	Event2 ConflictEvent `json:"event2"`
}

// ComposeSchedule builds the prompt pair for a free-form scheduling
// request. Context sections are appended to the system message in a
// fixed order: preferences, calendar, tasks. The user message is the
// caller-supplied prompt, unmodified.
func ComposeSchedule(req SchedulingRequest) (Prompt, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return Prompt{}, &ValidationError{Field: "prompt"}
	}

	system := scheduleSystemPrompt
	if uc := req.UserContext; uc != nil {
		var b strings.Builder
		b.WriteString(system)
		b.WriteString(" Here is some context about the user:")
		if uc.Preferences != nil {
			b.WriteString("\nPreferences: ")
			b.WriteString(jsonString(uc.Preferences))
		}
		if len(uc.Calendar) > 0 {
			b.WriteString("\nCalendar Events: ")
			b.WriteString(jsonString(uc.Calendar))
		}
		if len(uc.Tasks) > 0 {
			b.WriteString("\nTasks: ")
			b.WriteString(jsonString(uc.Tasks))
		}
		system = b.String()
	}

	return Prompt{System: system, User: req.Prompt}, nil
}

// ComposePrioritize builds the prompt pair for task prioritization.
// Tasks are kept in their caller-supplied serialized form so element
// order and field order survive untouched.
func ComposePrioritize(tasks []json.RawMessage, context string) (Prompt, error) {
	if len(tasks) == 0 {
		return Prompt{}, &ValidationError{Field: "tasks"}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return Prompt{}, &ValidationError{Field: "tasks"}
	}

	return Prompt{
		System: prioritizeSystemPrompt,
		User:   fmt.Sprintf("Please help me prioritize these tasks: %s. %s", data, context),
	}, nil
}

// ComposeConflict builds the prompt pair for conflict resolution. The
// importance suffix appears only when the event carries an importance
// annotation; preferences are appended as a separate paragraph only
// when supplied.
func ComposeConflict(conflict Conflict, preferences map[string]any) Prompt {
	user := fmt.Sprintf(`I have a scheduling conflict between two events:
1. %s at %s%s
2. %s at %s%s

What's the best way to resolve this conflict?`,
		conflict.Event1.Title, conflict.Event1.Time, importanceSuffix(conflict.Event1),
		conflict.Event2.Title, conflict.Event2.Time, importanceSuffix(conflict.Event2),
	)

	if preferences != nil {
		user += "\n\nMy preferences: " + jsonString(preferences)
	}

	return Prompt{System: conflictSystemPrompt, User: user}
}

// ComposeChat builds the prompt pair for a general chat message.
func ComposeChat(message string) (Prompt, error) {
	if strings.TrimSpace(message) == "" {
		return Prompt{}, &ValidationError{Field: "message"}
	}
	return Prompt{System: chatSystemPrompt, User: message}, nil
}

func importanceSuffix(e ConflictEvent) string {
	if e.Importance == "" {
		return ""
	}
	return fmt.Sprintf(" (Importance: %s)", e.Importance)
}

// jsonString serializes v for embedding in a prompt. Map keys marshal
// in sorted order, so output is deterministic for identical input.
func jsonString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
