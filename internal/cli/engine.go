package cli

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"triage/internal/ai"
	"triage/internal/config"
	"triage/internal/conversation"
	"triage/internal/session"
	"triage/internal/triage"
)

// engine bundles the fully wired triage components. This is the
// composition root: configuration is resolved here once and passed into
// constructors, nothing reads the environment at call time.
type engine struct {
	model        ai.Model // nil when running rule-based only
	analyzer     *triage.Analyzer
	recommender  *triage.SpecialtyRecommender
	orchestrator *conversation.Orchestrator
	sessions     session.Store
}

// buildEngine wires the triage components from configuration. A failed
// model initialization is logged and degrades to rule-based operation,
// mirroring the facade's runtime fallback.
func buildEngine(cfg *config.Config, logger *slog.Logger) (*engine, error) {
	var model ai.Model
	if cfg.AI.Active() {
		m, err := ai.GetModel(ai.ModelType(cfg.AI.Provider), ai.ModelConfig{
			APIKey:      cfg.AI.APIKey,
			ModelName:   cfg.AI.Model,
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		})
		if err != nil {
			logger.Warn("ai model initialization failed, running rule-based only", "provider", cfg.AI.Provider, "error", err)
		} else {
			model = m
			logger.Info("ai model initialized", "provider", cfg.AI.Provider, "model", m.Name())
		}
	} else {
		logger.Info("ai analysis disabled, running rule-based only")
	}

	var aiAnalyzer *triage.AIAnalyzer
	if model != nil {
		aiAnalyzer = triage.NewAIAnalyzer(model)
	}
	analyzer := triage.NewAnalyzer(aiAnalyzer, logger)

	sessions, err := buildSessionStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to set up session store: %w", err)
	}

	return &engine{
		model:        model,
		analyzer:     analyzer,
		recommender:  triage.NewSpecialtyRecommender(),
		orchestrator: conversation.NewOrchestrator(model, analyzer, logger),
		sessions:     sessions,
	}, nil
}

func buildSessionStore(cfg config.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		return session.NewRedisStore(client, cfg.TTL), nil
	case "memory":
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

func (e *engine) Close() error {
	return e.sessions.Close()
}
