package ai

import "errors"

// Standard errors for AI model operations
var (
	// ErrUnsupportedModel is returned when an unsupported model type is requested
	ErrUnsupportedModel = errors.New("unsupported model type")

	// ErrInvalidConfiguration is returned when the model configuration is invalid
	ErrInvalidConfiguration = errors.New("invalid model configuration")

	// ErrAPICallFailed is returned when the API call to the model fails
	ErrAPICallFailed = errors.New("API call to model failed")

	// ErrEmptyResponse is returned when the model produced no usable text
	ErrEmptyResponse = errors.New("model returned empty response")
)
