package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

func newGeminiClient(ctx context.Context, cfg Config) (Generator, error) {
	opts := []option.ClientOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	if cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}

	return &geminiClient{
		client: client,
		model:  model,
		name:   cfg.Model,
	}, nil
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (*Completion, error) {
	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	completion, err := geminiCompletion(resp)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	slog.DebugContext(ctx, "llm generate completed",
		"model", c.name,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", completion.PromptTokens,
		"completion_tokens", completion.CompletionTokens)

	return completion, nil
}

func (c *geminiClient) Model() string    { return c.name }
func (c *geminiClient) Provider() string { return ProviderGemini }

func (c *geminiClient) Close() error {
	return c.client.Close()
}

// geminiCompletion concatenates the text parts of the first candidate.
func geminiCompletion(resp *genai.GenerateContentResponse) (*Completion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		return nil, fmt.Errorf("%w (finish reason: %s)", ErrEmptyResponse, cand.FinishReason)
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("%w (finish reason: %s)", ErrEmptyResponse, cand.FinishReason)
	}

	completion := &Completion{Text: sb.String()}
	if resp.UsageMetadata != nil {
		completion.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		completion.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return completion, nil
}
