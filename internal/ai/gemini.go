package ai

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel = "gemini-2.0-flash"
)

// GeminiModel implements the Model interface using the Gemini API.
type GeminiModel struct {
	client *genai.Client
	config ModelConfig
}

func init() {
	RegisterModel(ModelGemini, func(config ModelConfig) (Model, error) {
		return NewGeminiModel(config)
	})
}

// NewGeminiModel creates a new Gemini-backed model
func NewGeminiModel(config ModelConfig) (*GeminiModel, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfiguration)
	}
	applyModelDefaults(&config, defaultGeminiModel)

	clientConfig := &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: config.Timeout},
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	return &GeminiModel{
		client: client,
		config: config,
	}, nil
}

// Name returns the concrete model identifier
func (m *GeminiModel) Name() string {
	return m.config.ModelName
}

// Type returns the model type
func (m *GeminiModel) Type() ModelType {
	return ModelGemini
}

// GenerateText implements the Model interface
func (m *GeminiModel) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	return m.complete(ctx, system, prompt, "")
}

// GenerateJSON implements the Model interface
func (m *GeminiModel) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	return m.complete(ctx, system, prompt, "application/json")
}

func (m *GeminiModel) complete(ctx context.Context, system, prompt, responseMIMEType string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(m.config.Temperature)),
		MaxOutputTokens:   int32(m.config.MaxTokens),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	if responseMIMEType != "" {
		genConfig.ResponseMIMEType = responseMIMEType
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.config.ModelName, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPICallFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
