package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/careerwiz/internal/store"
)

// ErrNotConfigured is returned by NewProvider when no provider is selected.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Fixture is canned content the mock provider serves for one schema.
type Fixture struct {
	Schema  *Schema
	Content json.RawMessage
}

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware. eventRepo may be nil, in which case requests are only
// logged through log. fixtures are only used by the mock provider.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger, fixtures ...Fixture) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "":
		return nil, ErrNotConfigured
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		mock := NewMockProvider()
		for _, f := range fixtures {
			if err = mock.SetFixture(f.Schema, f.Content); err != nil {
				break
			}
		}
		base = mock
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	return WithRetry(logged, cfg.Retry, log), nil
}
