// Package content classifies job postings for fraud using an external
// text-generation model: it builds a structured prompt, makes a single
// best-effort model call, and strictly parses the JSON verdict.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
)

// Analyzer ties a model client to a prompt configuration.
type Analyzer struct {
	Client ModelClient
	Config PromptConfig
	Logger *slog.Logger
}

func NewAnalyzer(client ModelClient, cfg PromptConfig, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		Client: client,
		Config: cfg,
		Logger: logger,
	}
}

// Analyze classifies a posting. Every failure mode (network error, empty
// response, malformed JSON, invalid fields) returns an error wrapping
// ErrAnalysisUnavailable; callers decide the degradation policy.
func (a *Analyzer) Analyze(ctx context.Context, p Posting) (*Assessment, error) {
	ctx, span := otel.Tracer("content").Start(ctx, "Analyze")
	defer span.End()

	prompt := BuildPrompt(p, a.Config)

	resp, err := a.Client.Generate(ctx, prompt)
	if err != nil {
		analysisUnavailableCount.WithLabelValues("request").Inc()
		a.Logger.Warn("model request failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}

	assessment, err := ParseAssessment(resp.Text())
	if err != nil {
		analysisUnavailableCount.WithLabelValues("parse").Inc()
		a.Logger.Warn("model response unusable", "err", err)
		return nil, err
	}
	return assessment, nil
}
