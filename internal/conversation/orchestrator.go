package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"triage/internal/ai"
	"triage/internal/models"
	"triage/internal/triage"
)

// Session parameters. The question flow is three rounds of three
// questions, finalized on the fourth step.
const (
	// FinalStep is the step number at which the session finalizes
	FinalStep = 4

	// answerDelimiter joins rendered question/answer pairs into the
	// composite symptom description
	answerDelimiter = " | "
)

// ErrInvalidStep is returned when Continue is called with a step the
// flow does not contain.
var ErrInvalidStep = errors.New("invalid conversation step")

// Orchestrator drives a bounded multi-step question/answer session and
// compiles the accumulated answers into a final triage call. It holds
// no session state: the caller threads the history through every call.
type Orchestrator struct {
	model    ai.Model
	analyzer *triage.Analyzer
	logger   *slog.Logger
}

// NewOrchestrator creates an orchestrator. Pass a nil model to use the
// fixed rule-based question text.
func NewOrchestrator(model ai.Model, analyzer *triage.Analyzer, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		model:    model,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Start begins a session for the initial complaint and returns the
// first round of questions.
func (o *Orchestrator) Start(ctx context.Context, initialComplaint string) *models.QuestionSet {
	return o.generateQuestions(ctx, 1, initialComplaint, nil)
}

// Continue produces the next round of questions for step 2 or 3. For
// step >= FinalStep it finalizes instead and returns the triage result;
// exactly one of the two return values is non-nil on success. The
// history is only read, never mutated.
func (o *Orchestrator) Continue(ctx context.Context, history []models.QAPair, step int) (*models.QuestionSet, *models.TriageResult, error) {
	if step < 2 {
		return nil, nil, ErrInvalidStep
	}
	if step >= FinalStep {
		return nil, o.Finalize(ctx, history), nil
	}

	initialComplaint := ""
	if len(history) > 0 {
		initialComplaint = history[0].Answer
	}
	return o.generateQuestions(ctx, step, initialComplaint, history), nil, nil
}

// Finalize compiles the full conversation into one composite symptom
// description and runs a single triage call on it.
func (o *Orchestrator) Finalize(ctx context.Context, history []models.QAPair) *models.TriageResult {
	result := o.analyzer.Analyze(ctx, compileDescription(history))
	result.ConversationSummary = history
	result.IsFinal = true
	return result
}

// generateQuestions asks the model for question text when available and
// falls back to the fixed sets on any failure.
func (o *Orchestrator) generateQuestions(ctx context.Context, step int, initialComplaint string, history []models.QAPair) *models.QuestionSet {
	if o.model == nil {
		return ruleBasedQuestions(step)
	}

	raw, err := o.model.GenerateJSON(ctx, questionSystemPrompt, questionPrompt(step, initialComplaint, history))
	if err != nil {
		o.logger.Warn("ai question generation failed, using rule-based questions", "step", step, "error", err)
		return ruleBasedQuestions(step)
	}

	var set models.QuestionSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil || len(set.Questions) == 0 {
		o.logger.Warn("unusable ai question response, using rule-based questions", "step", step, "error", err)
		return ruleBasedQuestions(step)
	}
	set.Step = step
	set.IsFinal = false
	return &set
}

// compileDescription renders each answered question as "<question>: <answer>"
// and joins the pairs with a fixed delimiter.
func compileDescription(history []models.QAPair) string {
	sections := make([]string, 0, len(history))
	for _, pair := range history {
		sections = append(sections, pair.Question+": "+pair.Answer)
	}
	return strings.Join(sections, answerDelimiter)
}
