package models

// UrgencyLevel represents the severity tier assigned to a symptom report
type UrgencyLevel string

const (
	// UrgencyEmergency represents life-threatening presentations requiring immediate care
	UrgencyEmergency UrgencyLevel = "emergency"

	// UrgencyUrgentCare represents same-day conditions that are not immediately life-threatening
	UrgencyUrgentCare UrgencyLevel = "urgent_care"

	// UrgencyDoctorVisit represents conditions that should be evaluated within days
	UrgencyDoctorVisit UrgencyLevel = "doctor_visit"

	// UrgencyHomeCare represents mild conditions manageable with self-care
	UrgencyHomeCare UrgencyLevel = "home_care"
)

// Valid reports whether the urgency level is one of the four known tiers.
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyEmergency, UrgencyUrgentCare, UrgencyDoctorVisit, UrgencyHomeCare:
		return true
	}
	return false
}

// TriageMetadata carries auxiliary analysis details attached to a result
type TriageMetadata struct {
	RedFlags     []string `json:"red_flags"`
	SelfCareTips []string `json:"self_care_tips"`
	ModelUsed    string   `json:"model_used"`
}

// TriageResult is the outcome of a single symptom analysis.
// A result is produced fresh per call and never mutated afterwards.
type TriageResult struct {
	SymptomsDescription string         `json:"symptoms_description"`
	UrgencyLevel        UrgencyLevel   `json:"urgency_level"`
	Recommendation      string         `json:"recommendation"`
	ProviderType        string         `json:"recommended_provider_type"`
	ConfidenceScore     float64        `json:"confidence_score"`
	PossibleConditions  []string       `json:"possible_conditions"`
	FollowUpNeeded      bool           `json:"follow_up_needed"`
	Metadata            TriageMetadata `json:"ai_metadata"`

	// Conversation fields, populated only when the result finalizes a
	// multi-step session.
	ConversationSummary []QAPair `json:"conversation_summary,omitempty"`
	IsFinal             bool     `json:"is_final,omitempty"`
}

// IsEmergency returns true if the result was classified as a medical emergency
func (r *TriageResult) IsEmergency() bool {
	return r.UrgencyLevel == UrgencyEmergency
}

// QAPair is one answered question in a conversation session
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Question is a single follow-up question presented to the user
type Question struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
}

// QuestionSet is one round of conversation questions
type QuestionSet struct {
	Step      int        `json:"step"`
	StepTitle string     `json:"step_title"`
	IsFinal   bool       `json:"is_final"`
	Questions []Question `json:"questions"`
}
