package triage

import (
	"context"
	"log/slog"

	"triage/internal/models"
)

// Analyzer is the triage facade: it tries the AI analyzer when one is
// configured and falls back to the keyword classifier on any failure.
// Callers always receive a usable result, never an upstream error.
type Analyzer struct {
	ai     *AIAnalyzer
	rules  *KeywordClassifier
	logger *slog.Logger
}

// NewAnalyzer creates the facade. Pass a nil aiAnalyzer to run
// rule-based only.
func NewAnalyzer(aiAnalyzer *AIAnalyzer, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		ai:     aiAnalyzer,
		rules:  NewKeywordClassifier(),
		logger: logger,
	}
}

// AIEnabled reports whether the model-backed path is configured.
func (a *Analyzer) AIEnabled() bool {
	return a.ai != nil
}

// Analyze performs a single-shot triage of the symptom description.
func (a *Analyzer) Analyze(ctx context.Context, text string) *models.TriageResult {
	if a.ai != nil {
		result, err := a.ai.Analyze(ctx, text)
		if err == nil {
			return result
		}
		a.logger.Warn("ai analysis failed, using rule-based fallback", "error", err)
	}
	return a.rules.Classify(text)
}
