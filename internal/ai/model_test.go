package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModelUnknownType(t *testing.T) {
	_, err := GetModel("llama", ModelConfig{APIKey: "key"})
	assert.ErrorIs(t, err, ErrUnsupportedModel)
}

func TestOpenAIModelRequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIModel(ModelConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestClaudeModelRequiresAPIKey(t *testing.T) {
	_, err := NewClaudeModel(ModelConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGeminiModelRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiModel(ModelConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestRegistryProvidesAllProviders(t *testing.T) {
	for _, modelType := range []ModelType{ModelOpenAI, ModelClaude, ModelGemini} {
		model, err := GetModel(modelType, ModelConfig{APIKey: "test-key"})
		require.NoError(t, err, "provider %s", modelType)
		assert.Equal(t, modelType, model.Type())
		assert.NotEmpty(t, model.Name())
	}
}

func TestModelDefaults(t *testing.T) {
	config := ModelConfig{APIKey: "key"}
	applyModelDefaults(&config, "some-model")

	assert.Equal(t, "some-model", config.ModelName)
	assert.Equal(t, 800, config.MaxTokens)
	assert.Equal(t, 0.3, config.Temperature)
	assert.Equal(t, 30*time.Second, config.Timeout)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences(`{"a": 1}`))
}
