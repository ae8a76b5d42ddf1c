package conversation

import (
	"fmt"
	"strings"

	"triage/internal/models"
)

// Step titles shown with each question round
const (
	step1Title = "Understanding Your Symptoms"
	step2Title = "Additional Details"
	step3Title = "Medical Background"
)

// questionSystemPrompt is the system instruction for AI-generated questions
const questionSystemPrompt = "You are a medical AI assistant. Generate clear, empathetic questions to understand patient symptoms better."

// ruleBasedQuestions returns the fixed question set for a step. These
// are also the fallback when AI question generation fails.
func ruleBasedQuestions(step int) *models.QuestionSet {
	switch step {
	case 1:
		return &models.QuestionSet{
			Step:      1,
			StepTitle: step1Title,
			Questions: []models.Question{
				{
					ID:          "severity",
					Question:    "On a scale of 1-10, how severe is your discomfort? (1 = mild, 10 = severe)",
					Type:        "text",
					Placeholder: "e.g., 7 out of 10",
				},
				{
					ID:          "duration",
					Question:    "How long have you been experiencing these symptoms?",
					Type:        "text",
					Placeholder: "e.g., 3 days, 2 weeks, several months",
				},
				{
					ID:          "location",
					Question:    "Can you describe the specific location or area affected?",
					Type:        "text",
					Placeholder: "e.g., right side of head, lower back, entire chest",
				},
			},
		}
	case 2:
		return &models.QuestionSet{
			Step:      2,
			StepTitle: step2Title,
			Questions: []models.Question{
				{
					ID:          "related_symptoms",
					Question:    "Are you experiencing any other symptoms along with this? (e.g., fever, nausea, fatigue)",
					Type:        "text",
					Placeholder: "e.g., mild fever, headache, loss of appetite",
				},
				{
					ID:          "triggers",
					Question:    "Does anything make it better or worse? (activities, time of day, food, etc.)",
					Type:        "text",
					Placeholder: "e.g., worse when lying down, better after eating",
				},
				{
					ID:          "recent_changes",
					Question:    "Have there been any recent changes in your health, diet, or medications?",
					Type:        "text",
					Placeholder: "e.g., started new medication, travel, stress",
				},
			},
		}
	default:
		return &models.QuestionSet{
			Step:      3,
			StepTitle: step3Title,
			Questions: []models.Question{
				{
					ID:          "medical_history",
					Question:    "Do you have any relevant medical conditions or allergies?",
					Type:        "text",
					Placeholder: "e.g., diabetes, high blood pressure, allergies",
				},
				{
					ID:          "medications",
					Question:    "What medications or supplements are you currently taking?",
					Type:        "text",
					Placeholder: "e.g., aspirin, vitamins, prescription drugs",
				},
				{
					ID:          "main_concern",
					Question:    "What concerns you most about these symptoms?",
					Type:        "text",
					Placeholder: "e.g., pain intensity, impact on work, worry about serious illness",
				},
			},
		}
	}
}

// questionPrompt builds the per-step prompt for AI question generation.
func questionPrompt(step int, initialComplaint string, history []models.QAPair) string {
	switch step {
	case 1:
		return fmt.Sprintf(`Based on this initial symptom: %q

Generate 3 specific follow-up questions to understand:
1. The severity or intensity (scale 1-10, or description)
2. How long they've had these symptoms (duration)
3. Specific location or affected areas

Return JSON format:
{
  "step": 1,
  "step_title": %q,
  "questions": [
    {"id": "severity", "question": "...", "type": "text"},
    {"id": "duration", "question": "...", "type": "text"},
    {"id": "location", "question": "...", "type": "text"}
  ]
}`, initialComplaint, step1Title)
	case 2:
		return fmt.Sprintf(`Conversation so far:
%s

Generate 3 follow-up questions to understand:
1. Any related or associated symptoms
2. What makes it better or worse (triggers, patterns)
3. Any recent changes in health, medications, or lifestyle

Return JSON format:
{
  "step": 2,
  "step_title": %q,
  "questions": [
    {"id": "related_symptoms", "question": "...", "type": "text"},
    {"id": "triggers", "question": "...", "type": "text"},
    {"id": "recent_changes", "question": "...", "type": "text"}
  ]
}`, historyText(history), step2Title)
	default:
		return fmt.Sprintf(`Conversation so far:
%s

Generate final 3 questions to understand:
1. Relevant medical history or pre-existing conditions
2. Current medications or treatments they're taking
3. Their main concern or what worries them most

Return JSON format:
{
  "step": 3,
  "step_title": %q,
  "questions": [
    {"id": "medical_history", "question": "...", "type": "text"},
    {"id": "medications", "question": "...", "type": "text"},
    {"id": "main_concern", "question": "...", "type": "text"}
  ]
}`, historyText(history), step3Title)
	}
}

func historyText(history []models.QAPair) string {
	var sb strings.Builder
	for i, pair := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Q: %s\nA: %s", pair.Question, pair.Answer)
	}
	return sb.String()
}
