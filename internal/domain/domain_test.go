package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask() *Task {
	return &Task{
		ID:       "t1",
		Title:    "Write tests",
		DueDate:  time.Now().Add(24 * time.Hour),
		Priority: PriorityHigh,
		Category: CategoryWork,
	}
}

func TestTask_Validate(t *testing.T) {
	require.NoError(t, validTask().Validate())

	tests := []struct {
		name   string
		mutate func(*Task)
		field  string
	}{
		{"missing title", func(task *Task) { task.Title = "" }, "title"},
		{"zero due date", func(task *Task) { task.DueDate = time.Time{} }, "dueDate"},
		{"unknown priority", func(task *Task) { task.Priority = "urgent" }, "priority"},
		{"empty priority", func(task *Task) { task.Priority = "" }, "priority"},
		{"unknown category", func(task *Task) { task.Category = "chores" }, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(task)

			var fe *FieldError
			require.ErrorAs(t, task.Validate(), &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestCalendarEvent_Validate(t *testing.T) {
	start := time.Now().Add(time.Hour)
	event := &CalendarEvent{Title: "Standup", StartTime: start, EndTime: start.Add(30 * time.Minute)}
	require.NoError(t, event.Validate())

	t.Run("end before start", func(t *testing.T) {
		e := &CalendarEvent{Title: "Backwards", StartTime: start, EndTime: start.Add(-time.Hour)}
		var fe *FieldError
		require.ErrorAs(t, e.Validate(), &fe)
		assert.Equal(t, "endTime", fe.Field)
	})

	t.Run("missing title", func(t *testing.T) {
		e := &CalendarEvent{StartTime: start, EndTime: start.Add(time.Hour)}
		var fe *FieldError
		require.ErrorAs(t, e.Validate(), &fe)
		assert.Equal(t, "title", fe.Field)
	})

	t.Run("unknown type", func(t *testing.T) {
		e := &CalendarEvent{Title: "Mystery", StartTime: start, EndTime: start.Add(time.Hour), Type: "party"}
		var fe *FieldError
		require.ErrorAs(t, e.Validate(), &fe)
		assert.Equal(t, "type", fe.Field)
	})

	t.Run("empty type allowed", func(t *testing.T) {
		e := &CalendarEvent{Title: "Untyped", StartTime: start, EndTime: start.Add(time.Hour)}
		assert.NoError(t, e.Validate())
	})
}

func TestGoal_PercentComplete(t *testing.T) {
	tests := []struct {
		name     string
		target   int
		progress int
		want     int
	}{
		{"zero progress", 10, 0, 0},
		{"partial", 10, 4, 40},
		{"complete", 10, 10, 100},
		{"overshoot clamped", 10, 15, 100},
		{"negative clamped", 10, -3, 0},
		{"zero target", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Goal{Target: tt.target, Progress: tt.progress}
			assert.Equal(t, tt.want, g.PercentComplete())
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	g := &Goal{Title: "Read", Target: 12}
	require.NoError(t, g.Validate())

	var fe *FieldError
	require.ErrorAs(t, (&Goal{Target: 12}).Validate(), &fe)
	assert.Equal(t, "title", fe.Field)

	require.ErrorAs(t, (&Goal{Title: "Read"}).Validate(), &fe)
	assert.Equal(t, "target", fe.Field)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(2*time.Hour)))

	// Zero expiry never expires.
	assert.False(t, (&Session{}).Expired(now))
}
