package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultClaudeModel = "claude-3-5-haiku-latest"

	// Claude has no native JSON response mode, so the constraint is
	// carried in the system prompt and the reply is stripped of fences.
	claudeJSONInstruction = "Respond with a single valid JSON object and nothing else. Do not wrap the JSON in markdown code fences."
)

// ClaudeModel implements the Model interface using the Anthropic Messages API.
type ClaudeModel struct {
	client anthropic.Client
	config ModelConfig
}

func init() {
	RegisterModel(ModelClaude, func(config ModelConfig) (Model, error) {
		return NewClaudeModel(config)
	})
}

// NewClaudeModel creates a new Claude-backed model
func NewClaudeModel(config ModelConfig) (*ClaudeModel, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfiguration)
	}
	applyModelDefaults(&config, defaultClaudeModel)

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithRequestTimeout(config.Timeout),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &ClaudeModel{
		client: anthropic.NewClient(opts...),
		config: config,
	}, nil
}

// Name returns the concrete model identifier
func (m *ClaudeModel) Name() string {
	return m.config.ModelName
}

// Type returns the model type
func (m *ClaudeModel) Type() ModelType {
	return ModelClaude
}

// GenerateText implements the Model interface
func (m *ClaudeModel) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	return m.complete(ctx, system, prompt)
}

// GenerateJSON implements the Model interface
func (m *ClaudeModel) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	text, err := m.complete(ctx, system+"\n\n"+claudeJSONInstruction, prompt)
	if err != nil {
		return "", err
	}
	return stripCodeFences(text), nil
}

func (m *ClaudeModel) complete(ctx context.Context, system, prompt string) (string, error) {
	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(m.config.ModelName),
		MaxTokens:   int64(m.config.MaxTokens),
		Temperature: anthropic.Float(m.config.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPICallFailed, err)
	}

	var content strings.Builder
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			content.WriteString(b.Text)
		}
	}
	if content.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return content.String(), nil
}

// stripCodeFences removes a surrounding markdown code fence if the model
// ignored the instruction not to add one.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
