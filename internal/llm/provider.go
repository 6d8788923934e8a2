package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Provider sends one request to a model. When Request.Schema is set the
// returned Content is JSON that satisfies it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, before any alias resolution by the
	// provider's API.
	ModelID() string
}

// Request is a single-turn or few-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema switches the provider to structured output. Nil means plain
	// text, returned as a JSON string.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name is sent to providers that want one and
// must be unique per definition, e.g. "assessment-questions".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a provider reply. StopReason is StopEnd or StopMaxTokens.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// GenerateJSON runs req, which must carry a Schema, and decodes the reply
// into out.
func GenerateJSON(ctx context.Context, p Provider, req Request, out any) error {
	if req.Schema == nil {
		return errors.New("llm: GenerateJSON needs a schema")
	}
	resp, err := p.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return &ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode %s: %w", req.Schema.Name, err)}
	}
	return nil
}
