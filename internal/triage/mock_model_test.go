package triage

import (
	"context"

	"triage/internal/ai"
)

// stubModel is a canned ai.Model for tests.
type stubModel struct {
	name     string
	response string
	err      error
	calls    int
}

func (m *stubModel) Name() string {
	if m.name == "" {
		return "stub-model"
	}
	return m.name
}

func (m *stubModel) Type() ai.ModelType { return "stub" }

func (m *stubModel) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	m.calls++
	return m.response, m.err
}

func (m *stubModel) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	m.calls++
	return m.response, m.err
}
