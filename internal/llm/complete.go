package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// finish turns a provider's raw text into a Response. Structured requests
// get their text unwrapped from markdown fences, checked for truncation and
// validated against the schema.
func finish(req Request, text string, usage Usage, model, stop string) (*Response, error) {
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	resp := &Response{Usage: usage, Model: model, StopReason: stop}

	if req.Schema == nil {
		raw, err := json.Marshal(text)
		if err != nil {
			return nil, &ErrInvalidResponse{Err: err}
		}
		resp.Content = raw
		return resp, nil
	}

	content := json.RawMessage(stripFences(text))
	if len(content) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("empty response")}
	}
	if stop == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := Validate(req.Schema, content); err != nil {
		return nil, err
	}
	resp.Content = content
	return resp, nil
}

// stripFences removes a ```json ... ``` wrapper some models add even in
// JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
