package conversation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage/internal/ai"
	"triage/internal/models"
	"triage/internal/triage"
)

// stubModel is a canned ai.Model for tests.
type stubModel struct {
	response string
	err      error
}

func (m *stubModel) Name() string       { return "stub-model" }
func (m *stubModel) Type() ai.ModelType { return "stub" }

func (m *stubModel) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	return m.response, m.err
}

func (m *stubModel) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	return m.response, m.err
}

func newRuleBasedOrchestrator() *Orchestrator {
	return NewOrchestrator(nil, triage.NewAnalyzer(nil, nil), nil)
}

// runRounds answers every question of three rounds and returns the
// accumulated history.
func runRounds(t *testing.T, o *Orchestrator, complaint string) []models.QAPair {
	t.Helper()

	var history []models.QAPair
	questions := o.Start(context.Background(), complaint)

	for round := 0; round < 3; round++ {
		require.NotNil(t, questions)
		require.Len(t, questions.Questions, 3)
		for i, q := range questions.Questions {
			history = append(history, models.QAPair{
				Question: q.Question,
				Answer:   fmt.Sprintf("answer %d of round %d", i+1, round+1),
			})
		}
		if round == 2 {
			break
		}
		next, result, err := o.Continue(context.Background(), history, questions.Step+1)
		require.NoError(t, err)
		require.Nil(t, result)
		questions = next
	}
	return history
}

func TestStartReturnsFirstRound(t *testing.T) {
	o := newRuleBasedOrchestrator()

	questions := o.Start(context.Background(), "my skin is itchy")
	require.NotNil(t, questions)
	assert.Equal(t, 1, questions.Step)
	assert.Equal(t, "Understanding Your Symptoms", questions.StepTitle)
	assert.False(t, questions.IsFinal)
	require.Len(t, questions.Questions, 3)
	assert.Equal(t, "severity", questions.Questions[0].ID)
	assert.Equal(t, "duration", questions.Questions[1].ID)
	assert.Equal(t, "location", questions.Questions[2].ID)
}

func TestContinueStepsTwoAndThree(t *testing.T) {
	o := newRuleBasedOrchestrator()

	history := []models.QAPair{{Question: "q", Answer: "a"}}

	questions, result, err := o.Continue(context.Background(), history, 2)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 2, questions.Step)
	assert.Equal(t, "related_symptoms", questions.Questions[0].ID)

	questions, result, err = o.Continue(context.Background(), history, 3)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 3, questions.Step)
	assert.Equal(t, "medical_history", questions.Questions[0].ID)
}

func TestContinueRejectsInvalidStep(t *testing.T) {
	o := newRuleBasedOrchestrator()

	_, _, err := o.Continue(context.Background(), nil, 1)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, _, err = o.Continue(context.Background(), nil, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestContinueFinalizesAtStepFour(t *testing.T) {
	o := newRuleBasedOrchestrator()

	history := runRounds(t, o, "my skin is itchy")
	require.Len(t, history, 9)

	questions, result, err := o.Continue(context.Background(), history, 4)
	require.NoError(t, err)
	assert.Nil(t, questions)
	require.NotNil(t, result)
	assert.True(t, result.IsFinal)
	assert.Len(t, result.ConversationSummary, 9)
}

func TestContinueDoesNotMutateHistory(t *testing.T) {
	o := newRuleBasedOrchestrator()

	history := []models.QAPair{
		{Question: "How severe?", Answer: "about a 4"},
		{Question: "How long?", Answer: "two days"},
	}
	snapshot := make([]models.QAPair, len(history))
	copy(snapshot, history)

	_, _, err := o.Continue(context.Background(), history, 2)
	require.NoError(t, err)
	assert.Equal(t, snapshot, history)
}

func TestFinalizeCompilesDescription(t *testing.T) {
	o := newRuleBasedOrchestrator()

	history := []models.QAPair{
		{Question: "How severe?", Answer: "mild, about a 2"},
		{Question: "How long?", Answer: "three days"},
	}

	result := o.Finalize(context.Background(), history)
	assert.Equal(t, "How severe?: mild, about a 2 | How long?: three days", result.SymptomsDescription)
	assert.True(t, result.IsFinal)
	assert.Equal(t, history, result.ConversationSummary)
}

func TestFinalizeRunsTriage(t *testing.T) {
	o := newRuleBasedOrchestrator()

	history := []models.QAPair{
		{Question: "What's wrong?", Answer: "crushing chest pain and shortness of breath"},
	}

	result := o.Finalize(context.Background(), history)
	assert.Equal(t, models.UrgencyEmergency, result.UrgencyLevel)
	assert.True(t, result.FollowUpNeeded)
}

func TestAIQuestionsUsedWhenModelResponds(t *testing.T) {
	model := &stubModel{response: `{
		"step": 1,
		"step_title": "Tell Us More",
		"questions": [
			{"id": "severity", "question": "How bad is the itching?", "type": "text"},
			{"id": "duration", "question": "When did it start?", "type": "text"},
			{"id": "location", "question": "Where is it itching?", "type": "text"}
		]
	}`}
	o := NewOrchestrator(model, triage.NewAnalyzer(nil, nil), nil)

	questions := o.Start(context.Background(), "my skin is itchy")
	require.Len(t, questions.Questions, 3)
	assert.Equal(t, "Tell Us More", questions.StepTitle)
	assert.Equal(t, "How bad is the itching?", questions.Questions[0].Question)
	assert.False(t, questions.IsFinal)
}

func TestAIQuestionFailureFallsBackToFixedText(t *testing.T) {
	o := NewOrchestrator(&stubModel{err: errors.New("timeout")}, triage.NewAnalyzer(nil, nil), nil)

	questions := o.Start(context.Background(), "my skin is itchy")
	require.Len(t, questions.Questions, 3)
	assert.Equal(t, "Understanding Your Symptoms", questions.StepTitle)
}

func TestAIQuestionGarbageFallsBackToFixedText(t *testing.T) {
	o := NewOrchestrator(&stubModel{response: "sure, here are some questions"}, triage.NewAnalyzer(nil, nil), nil)

	questions, result, err := o.Continue(context.Background(), []models.QAPair{{Question: "q", Answer: "a"}}, 2)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "Additional Details", questions.StepTitle)
	assert.Equal(t, 2, questions.Step)
}
