package triage

import (
	"context"
	"encoding/json"
	"fmt"

	"triage/internal/ai"
	"triage/internal/models"
)

// triageSystemPrompt encodes the urgency taxonomy and the escalation
// bias: plausibly life-threatening symptoms are always an emergency.
const triageSystemPrompt = `You are a medical triage AI assistant. Analyze patient symptoms and provide:
1. Urgency level (emergency/urgent_care/doctor_visit/home_care)
2. Brief recommendation
3. Recommended provider type
4. Possible conditions (3-5 most likely)
5. Confidence score (0.0-1.0)
6. Self-care tips if applicable

CRITICAL SAFETY RULES:
- If symptoms suggest emergency (chest pain, difficulty breathing, severe bleeding, stroke signs, loss of consciousness), ALWAYS classify as 'emergency'
- Err on the side of caution - when in doubt, escalate urgency level
- Never diagnose - only suggest possibilities
- Always recommend professional medical evaluation for concerning symptoms

Respond in JSON format:
{
  "urgency_level": "emergency|urgent_care|doctor_visit|home_care",
  "recommendation": "specific recommendation text",
  "recommended_provider_type": "Emergency Room|Urgent Care|Specialist Name|Primary Care|Self-care",
  "possible_conditions": ["condition1", "condition2", "condition3"],
  "confidence_score": 0.85,
  "self_care_tips": ["tip1", "tip2"],
  "red_flags": ["flag1", "flag2"]
}`

// modelTriageResponse is the JSON object the model is instructed to return
type modelTriageResponse struct {
	UrgencyLevel            string   `json:"urgency_level"`
	Recommendation          string   `json:"recommendation"`
	RecommendedProviderType string   `json:"recommended_provider_type"`
	PossibleConditions      []string `json:"possible_conditions"`
	ConfidenceScore         *float64 `json:"confidence_score"`
	SelfCareTips            []string `json:"self_care_tips"`
	RedFlags                []string `json:"red_flags"`
}

// AIAnalyzer produces triage results by prompting an external language
// model for a structured response and normalizing it to the same shape
// the keyword classifier produces. Every failure mode (transport,
// timeout, malformed output) surfaces as ErrExternalService so the
// facade can fall back.
type AIAnalyzer struct {
	model ai.Model
}

// NewAIAnalyzer creates an analyzer backed by the given model
func NewAIAnalyzer(model ai.Model) *AIAnalyzer {
	return &AIAnalyzer{model: model}
}

// Analyze runs a single model-backed triage call.
func (a *AIAnalyzer) Analyze(ctx context.Context, text string) (*models.TriageResult, error) {
	raw, err := a.model.GenerateJSON(ctx, triageSystemPrompt, "Patient symptoms: "+text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	var resp modelTriageResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed model response: %v", ErrExternalService, err)
	}

	urgency, err := normalizeUrgency(resp.UrgencyLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	providerType := resp.RecommendedProviderType
	if providerType == "" {
		providerType = "Primary Care Physician"
	}

	confidence := 0.85
	if resp.ConfidenceScore != nil {
		confidence = *resp.ConfidenceScore
	}

	return &models.TriageResult{
		SymptomsDescription: text,
		UrgencyLevel:        urgency,
		Recommendation:      resp.Recommendation,
		ProviderType:        providerType,
		ConfidenceScore:     confidence,
		PossibleConditions:  orEmpty(resp.PossibleConditions),
		FollowUpNeeded:      urgency != models.UrgencyHomeCare,
		Metadata: models.TriageMetadata{
			RedFlags:     orEmpty(resp.RedFlags),
			SelfCareTips: orEmpty(resp.SelfCareTips),
			ModelUsed:    a.model.Name(),
		},
	}, nil
}

// normalizeUrgency maps the model's urgency string onto the known tiers.
// A missing value defaults to doctor_visit, an unrecognized value is a
// hard failure rather than a guess.
func normalizeUrgency(value string) (models.UrgencyLevel, error) {
	if value == "" {
		return models.UrgencyDoctorVisit, nil
	}
	urgency := models.UrgencyLevel(value)
	if !urgency.Valid() {
		return "", fmt.Errorf("unknown urgency level %q", value)
	}
	return urgency, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
