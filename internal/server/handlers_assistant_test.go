package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/internal/llm"
)

func postJSON(t *testing.T, env *testEnv, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, env.server.URL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestSchedule_Success(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/schedule", testToken, map[string]any{
		"prompt": "Find 1 hour for deep work tomorrow",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "model text", body["result"])

	assert.Equal(t, int32(1), env.client.calls.Load())
	assert.Equal(t, llm.TaskSchedule, env.client.lastReq().Task)
	assert.Equal(t, "Find 1 hour for deep work tomorrow", env.client.lastReq().User)
}

func TestSchedule_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/schedule", "", map[string]any{
		"prompt": "anything",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authentication required", body["error"])
	assert.Equal(t, int32(0), env.client.calls.Load())
}

func TestSchedule_MissingPrompt(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/schedule", testToken, map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "prompt")
	assert.Equal(t, int32(0), env.client.calls.Load())
}

func TestSchedule_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.client.err = llm.ErrUpstream

	resp, body := postJSON(t, env, "/api/schedule", testToken, map[string]any{
		"prompt": "plan my day",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// Generic message only; the provider's diagnostic text stays in the logs.
	assert.Equal(t, "Failed to generate schedule", body["error"])
	assert.NotContains(t, body, "result")
}

func TestSchedule_UserContextFoldedIntoSystem(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := postJSON(t, env, "/api/schedule", testToken, map[string]any{
		"prompt": "plan my morning",
		"userContext": map[string]any{
			"preferences": map[string]any{"workStart": "09:00"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, env.client.lastReq().System, "Preferences: ")
	assert.Equal(t, "plan my morning", env.client.lastReq().User)
}

func TestPrioritize_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := postJSON(t, env, "/api/tasks/prioritize", "", map[string]any{
		"tasks":   []any{},
		"context": "",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(0), env.client.calls.Load())
}

func TestPrioritize_Success(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/tasks/prioritize", testToken, map[string]any{
		"tasks":   []any{map[string]any{"title": "Ship release", "priority": "high"}},
		"context": "3 hours left today",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "model text", body["result"])
	assert.Equal(t, llm.TaskPrioritize, env.client.lastReq().Task)
	assert.Contains(t, env.client.lastReq().User, "Ship release")
	assert.Contains(t, env.client.lastReq().User, "3 hours left today")
}

func TestResolveConflict_Success(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/conflicts/resolve", testToken, map[string]any{
		"conflict": map[string]any{
			"event1": map[string]any{"title": "Team Meeting", "time": "March 25, 2025 at 2:00 PM", "importance": "Medium"},
			"event2": map[string]any{"title": "Doctor's Appointment", "time": "March 25, 2025 at 2:00 PM", "importance": "High"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "model text", body["result"])
	assert.Equal(t, llm.TaskConflict, env.client.lastReq().Task)
	assert.Contains(t, env.client.lastReq().User, "(Importance: Medium)")
	assert.Contains(t, env.client.lastReq().User, "(Importance: High)")
	assert.Contains(t, env.client.lastReq().User, "What's the best way to resolve this conflict?")
}

func TestResolveConflict_MissingEvent(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/conflicts/resolve", testToken, map[string]any{
		"conflict": map[string]any{
			"event1": map[string]any{"title": "Team Meeting", "time": "2:00 PM"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Valid conflict information is required", body["error"])
	assert.Equal(t, int32(0), env.client.calls.Load())
}

func TestChat_NoAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	resp, body := postJSON(t, env, "/api/chat", "", map[string]any{
		"message": "What should I do first today?",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "model text", body["response"])
	assert.Equal(t, llm.TaskChat, env.client.lastReq().Task)
}

func TestChat_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.client.err = errors.New("connection reset")

	resp, body := postJSON(t, env, "/api/chat", "", map[string]any{
		"message": "hello",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to process chat message", body["error"])
}
