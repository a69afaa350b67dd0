package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"promptrelay.app/relay/common/llm"
	"promptrelay.app/relay/common/logger"
	"promptrelay.app/relay/internal/persona"
)

type GenerateInput struct {
	Question string
	Role     string
}

type GenerateResult struct {
	Response string
	Role     string
	Model    string
}

type GenerateService interface {
	// Generate returns ErrNoInput for an empty question and *UpstreamError for
	// every generator failure.
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
}

type generateService struct {
	generator llm.Generator
}

func NewGenerateService(generator llm.Generator) GenerateService {
	return &generateService{generator: generator}
}

func (s *generateService) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	if in.Question == "" {
		return nil, ErrNoInput
	}

	role := persona.Resolve(in.Role)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Role:      logger.Ptr(role),
		Provider:  logger.Ptr(s.generator.Provider()),
		Component: "relay.service.generate",
	})

	prompt := persona.Compose(role, in.Question)

	sc := logger.StartSpan(ctx, "llm.generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.provider", s.generator.Provider()),
			attribute.String("llm.model", s.generator.Model()),
			attribute.String("relay.role", role),
		),
	)
	defer sc.End()
	ctx = sc.Context()

	start := time.Now()
	completion, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "generation failed",
			"error", err,
			"model", s.generator.Model(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, &UpstreamError{Err: err}
	}

	slog.InfoContext(ctx, "generation completed",
		"model", s.generator.Model(),
		"question", logger.Truncate(in.Question, 80),
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", completion.PromptTokens,
		"completion_tokens", completion.CompletionTokens,
	)

	return &GenerateResult{
		Response: completion.Text,
		Role:     role,
		Model:    s.generator.Model(),
	}, nil
}
