package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIModel implements the Model interface using the OpenAI chat
// completions API.
type OpenAIModel struct {
	client openai.Client
	config ModelConfig
}

func init() {
	RegisterModel(ModelOpenAI, func(config ModelConfig) (Model, error) {
		return NewOpenAIModel(config)
	})
}

// NewOpenAIModel creates a new OpenAI-backed model
func NewOpenAIModel(config ModelConfig) (*OpenAIModel, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfiguration)
	}
	applyModelDefaults(&config, defaultOpenAIModel)

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithRequestTimeout(config.Timeout),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAIModel{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// Name returns the concrete model identifier
func (m *OpenAIModel) Name() string {
	return m.config.ModelName
}

// Type returns the model type
func (m *OpenAIModel) Type() ModelType {
	return ModelOpenAI
}

// GenerateText implements the Model interface
func (m *OpenAIModel) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	return m.complete(ctx, system, prompt, false)
}

// GenerateJSON implements the Model interface
func (m *OpenAIModel) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	return m.complete(ctx, system, prompt, true)
}

func (m *OpenAIModel) complete(ctx context.Context, system, prompt string, jsonMode bool) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.config.ModelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(m.config.Temperature),
		MaxTokens:   openai.Int(int64(m.config.MaxTokens)),
	}
	if jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPICallFailed, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return completion.Choices[0].Message.Content, nil
}

// applyModelDefaults fills zero-valued config fields shared by all providers
func applyModelDefaults(config *ModelConfig, defaultModel string) {
	if config.ModelName == "" {
		config.ModelName = defaultModel
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 800
	}
	if config.Temperature == 0 {
		config.Temperature = 0.3
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
}
