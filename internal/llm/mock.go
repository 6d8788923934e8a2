package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockResponse is a queued reply for MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider answers without a network. Queued responses are served
// first, in order. Once the queue is empty, a request whose schema has a
// fixture gets that fixture, every time. Anything else fails with
// ErrProviderUnavailable. Every request is recorded in Calls.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockResponse
	fixtures map[string]json.RawMessage
	Calls    []Request
}

// NewMockProvider creates a MockProvider with the given queued responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses, fixtures: make(map[string]json.RawMessage)}
}

// SetFixture registers content as the standing answer for requests that
// use schema. The content must satisfy the schema.
func (m *MockProvider) SetFixture(schema *Schema, content json.RawMessage) error {
	if err := Validate(schema, content); err != nil {
		return fmt.Errorf("fixture %q: %w", schema.Name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixtures[schema.Name] = content
	return nil
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var next MockResponse
	switch {
	case len(m.queue) > 0:
		next, m.queue = m.queue[0], m.queue[1:]
	case req.Schema != nil && m.fixtures[req.Schema.Name] != nil:
		next = MockResponse{Content: m.fixtures[req.Schema.Name]}
	default:
		return nil, &ErrProviderUnavailable{}
	}
	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      ProviderMock,
		StopReason: StopEnd,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return ProviderMock
}

// AddResponse queues one more response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
