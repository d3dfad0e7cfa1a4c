package server

import (
	"context"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"nimbus/internal/assistant"
	"nimbus/internal/auth"
	"nimbus/internal/domain"
	"nimbus/internal/llm"
	"nimbus/internal/repository"
	"nimbus/internal/testutil"
)

const testToken = "valid-token"
const testEmail = "user@nimbus.test"

// countingClient is a completion client test double that counts
// invocations and records the last request.
type countingClient struct {
	calls atomic.Int32
	text  string
	err   error

	mu   sync.Mutex
	last llm.CompletionRequest
}

func (c *countingClient) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	c.calls.Add(1)
	c.mu.Lock()
	c.last = req
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return &llm.CompletionResult{Text: c.text, Usage: llm.Usage{TotalTokens: 42}}, nil
}

func (c *countingClient) lastReq() llm.CompletionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// stubResolver accepts exactly one token.
type stubResolver struct {
	session *domain.Session
}

func (r *stubResolver) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if r.session != nil && token == r.session.Token {
		return r.session, nil
	}
	return nil, auth.ErrUnauthenticated
}

type testEnv struct {
	server *httptest.Server
	client *countingClient
	tasks  repository.TaskRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database := testutil.NewTestDB(t)
	client := &countingClient{text: "model text"}

	resolver := &stubResolver{session: &domain.Session{
		Token:     testToken,
		UserEmail: testEmail,
		UserName:  "Test User",
	}}

	tasks := repository.NewSQLiteTaskRepo(database)
	srv := NewServer(
		assistant.NewService(client),
		resolver,
		tasks,
		repository.NewSQLiteEventRepo(database),
		repository.NewSQLiteGoalRepo(database),
		zap.NewNop(),
	)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testEnv{server: ts, client: client, tasks: tasks}
}
