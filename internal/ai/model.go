package ai

import (
	"context"
	"time"
)

// ModelType represents the type of AI model
type ModelType string

const (
	// ModelOpenAI represents OpenAI's GPT models
	ModelOpenAI ModelType = "openai"

	// ModelClaude represents Anthropic's Claude models
	ModelClaude ModelType = "claude"

	// ModelGemini represents Google's Gemini models
	ModelGemini ModelType = "gemini"
)

// ModelConfig contains configuration for AI models
type ModelConfig struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Model defines the interface for all AI model implementations
type Model interface {
	// Name returns the concrete model identifier (e.g. "gpt-4o-mini")
	Name() string

	// Type returns the type of model
	Type() ModelType

	// GenerateText sends a prompt and returns the plain-text completion
	GenerateText(ctx context.Context, system, prompt string) (string, error)

	// GenerateJSON sends a prompt and returns the completion constrained
	// to a single JSON object
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
}

// ModelFactory creates a model from a configuration
type ModelFactory func(config ModelConfig) (Model, error)

// Registry of model factories
var modelFactories = make(map[ModelType]ModelFactory)

// RegisterModel registers a model factory for a given model type
func RegisterModel(modelType ModelType, factory ModelFactory) {
	modelFactories[modelType] = factory
}

// GetModel returns a model instance for the specified model type
func GetModel(modelType ModelType, config ModelConfig) (Model, error) {
	factory, exists := modelFactories[modelType]
	if !exists {
		return nil, ErrUnsupportedModel
	}
	return factory(config)
}
