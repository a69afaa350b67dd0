package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider constants for LLM provider selection.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-pro",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-5-20250514",
}

var (
	// ErrMissingAPIKey is returned by every call of a generator built without a key.
	ErrMissingAPIKey = errors.New("API key is required")
	// ErrEmptyResponse means the provider answered without any text.
	ErrEmptyResponse = errors.New("model returned no text")
)

// Config holds LLM client configuration.
type Config struct {
	Provider  string // "gemini", "openai" or "anthropic"
	APIKey    string // Missing key defers the failure to Generate
	BaseURL   string // Optional: custom API endpoint
	Model     string // Empty selects the provider default
	MaxTokens int    // 0 = provider default
}

// Generator turns a prompt into a single, complete text completion.
// Implementations are safe for concurrent use and read-only after construction.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Completion, error)
	Model() string
	Provider() string
	Close() error
}

// Completion is the text returned by a provider plus token accounting when available.
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// NewGenerator creates a Generator for cfg.Provider, defaulting to Gemini.
// Without an API key it still succeeds; the returned generator fails each call
// with ErrMissingAPIKey so the configuration error surfaces per request.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	provider := strings.ToLower(cfg.Provider)
	if provider == "" {
		provider = ProviderGemini
	}

	model := cfg.Model
	if model == "" {
		model = defaultModels[provider]
	}
	cfg.Provider, cfg.Model = provider, model

	var (
		gen Generator
		err error
	)
	switch {
	case defaultModels[provider] == "":
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	case cfg.APIKey == "":
		return &unconfigured{provider: provider, model: model}, nil
	case provider == ProviderGemini:
		gen, err = newGeminiClient(ctx, cfg)
	case provider == ProviderOpenAI:
		gen, err = newOpenAIClient(cfg)
	case provider == ProviderAnthropic:
		gen, err = newAnthropicClient(cfg)
	}
	if err != nil {
		return nil, err
	}

	return &redacting{Generator: gen, secret: cfg.APIKey}, nil
}

type unconfigured struct {
	provider string
	model    string
}

func (u *unconfigured) Generate(context.Context, string) (*Completion, error) {
	return nil, fmt.Errorf("%s: %w", u.provider, ErrMissingAPIKey)
}

func (u *unconfigured) Model() string    { return u.model }
func (u *unconfigured) Provider() string { return u.provider }
func (u *unconfigured) Close() error     { return nil }

// redacting scrubs the API key from error text before it can reach a response body.
type redacting struct {
	Generator
	secret string
}

const redacted = "[REDACTED]"

func (r *redacting) Generate(ctx context.Context, prompt string) (*Completion, error) {
	completion, err := r.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, Redact(err, r.secret)
	}
	return completion, nil
}

// Redact returns err with every occurrence of secret replaced in its message.
// The wrapped error stays reachable through errors.Is/As.
func Redact(err error, secret string) error {
	if err == nil || secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return &redactedError{err: err, msg: strings.ReplaceAll(msg, secret, redacted)}
}

type redactedError struct {
	err error
	msg string
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
