package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is a canned reply for the MockClient.
type MockReply struct {
	Text  json.RawMessage
	Usage Usage
	Err   error
}

// MockClient is a deterministic Client for testing. It returns canned
// replies in FIFO order and records every request it receives.
type MockClient struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []Request
}

// NewMockClient creates a MockClient with the given canned replies.
func NewMockClient(replies ...MockReply) *MockClient {
	return &MockClient{replies: replies}
}

// Complete returns the next canned reply, or UnavailableError when the
// queue is empty.
func (m *MockClient) Complete(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return nil, &UnavailableError{}
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}

	return &Result{
		Text:  reply.Text,
		Usage: reply.Usage,
		Model: "mock",
		Stop:  "end",
	}, nil
}

// Model returns "mock".
func (m *MockClient) Model() string {
	return "mock"
}

// AddReply appends a canned reply to the queue.
func (m *MockClient) AddReply(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// CallCount returns the number of Complete calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
