package triage

import (
	"fmt"
	"strings"

	"triage/internal/models"
)

// Model identifiers recorded in result metadata
const (
	modelRuleBased         = "rule_based"
	modelRuleBasedFallback = "rule_based_fallback"
)

// KeywordClassifier assigns an urgency tier to free-text symptom
// descriptions by matching ordered keyword sets. It is fully
// deterministic and needs no network access, which makes it the
// fallback path when the AI analyzer is disabled or failing.
type KeywordClassifier struct {
	emergencyKeywords []string
	urgentKeywords    []string
	mildKeywords      []string
	specialties       []Specialty
}

// NewKeywordClassifier creates a classifier backed by the canonical
// specialty table.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		emergencyKeywords: []string{
			"chest pain", "chest pressure", "can't breathe", "difficulty breathing",
			"shortness of breath", "severe bleeding", "unconscious", "unresponsive",
			"stroke", "heart attack", "severe pain", "suicide", "suicidal",
			"overdose", "seizure", "severe burn", "paralysis", "sudden weakness",
			"severe headache", "sudden confusion", "loss of consciousness",
			"coughing blood", "vomiting blood", "severe allergic reaction",
		},
		urgentKeywords: []string{
			"high fever", "persistent fever", "severe vomiting", "severe diarrhea",
			"dehydration", "difficulty urinating", "blood in urine", "severe cough",
			"broken bone", "sprained ankle", "deep cut", "animal bite",
			"severe rash", "eye injury", "ear infection",
		},
		mildKeywords: []string{
			"mild", "slight", "minor", "little", "runny nose", "stuffy nose",
			"scratchy throat", "tired", "fatigue", "common cold",
		},
		specialties: specialtyTable,
	}
}

// Classify analyzes a symptom description and returns a triage result.
// It never returns an error: an unexpected internal failure is converted
// to a safe doctor-visit default at this boundary.
func (c *KeywordClassifier) Classify(text string) (result *models.TriageResult) {
	defer func() {
		if r := recover(); r != nil {
			result = c.safeDefault(text)
		}
	}()

	lower := strings.ToLower(text)

	if containsAny(lower, c.emergencyKeywords) {
		return &models.TriageResult{
			SymptomsDescription: text,
			UrgencyLevel:        models.UrgencyEmergency,
			Recommendation:      "SEEK IMMEDIATE EMERGENCY CARE. Call 911 or go to the nearest emergency room immediately. Do not drive yourself.",
			ProviderType:        "Emergency Room",
			ConfidenceScore:     0.95,
			PossibleConditions:  []string{"Medical Emergency - Immediate Evaluation Required"},
			FollowUpNeeded:      true,
			Metadata: models.TriageMetadata{
				RedFlags:     []string{"Emergency symptoms detected"},
				SelfCareTips: []string{},
				ModelUsed:    modelRuleBased,
			},
		}
	}

	if containsAny(lower, c.urgentKeywords) {
		return &models.TriageResult{
			SymptomsDescription: text,
			UrgencyLevel:        models.UrgencyUrgentCare,
			Recommendation:      "Visit an urgent care clinic or emergency room within the next few hours. Your symptoms require prompt medical attention.",
			ProviderType:        "Urgent Care",
			ConfidenceScore:     0.85,
			PossibleConditions:  []string{"Requires Urgent Medical Evaluation"},
			FollowUpNeeded:      true,
			Metadata: models.TriageMetadata{
				RedFlags:     []string{"Urgent symptoms detected"},
				SelfCareTips: []string{},
				ModelUsed:    modelRuleBased,
			},
		}
	}

	// Mild wording overrides a specialty match: "mild rash" is home
	// care, not a dermatology referral.
	if containsAny(lower, c.mildKeywords) {
		return &models.TriageResult{
			SymptomsDescription: text,
			UrgencyLevel:        models.UrgencyHomeCare,
			Recommendation:      "Rest, stay hydrated, and monitor your symptoms. Over-the-counter medications may help relieve symptoms. Seek medical attention if symptoms worsen or persist for more than 7 days.",
			ProviderType:        "Self-care",
			ConfidenceScore:     0.75,
			PossibleConditions:  []string{"Mild Symptoms - Self-care Appropriate", "Common Cold", "Minor Viral Infection"},
			FollowUpNeeded:      false,
			Metadata: models.TriageMetadata{
				RedFlags: []string{},
				SelfCareTips: []string{
					"Get plenty of rest",
					"Stay well hydrated",
					"Use over-the-counter medications as directed",
					"Monitor your temperature",
					"Seek care if symptoms worsen",
				},
				ModelUsed: modelRuleBased,
			},
		}
	}

	providerType := "Primary Care Physician"
	conditions := []string{"Requires Medical Evaluation"}
	if specialty := c.matchSpecialty(lower); specialty != nil {
		providerType = specialty.Provider
		conditions = specialty.Conditions
	}

	return &models.TriageResult{
		SymptomsDescription: text,
		UrgencyLevel:        models.UrgencyDoctorVisit,
		Recommendation:      fmt.Sprintf("Schedule an appointment with a %s within the next few days. Your symptoms should be evaluated by a healthcare professional.", providerType),
		ProviderType:        providerType,
		ConfidenceScore:     0.80,
		PossibleConditions:  conditions,
		FollowUpNeeded:      true,
		Metadata: models.TriageMetadata{
			RedFlags: []string{},
			SelfCareTips: []string{
				"Monitor your symptoms",
				"Keep a symptom diary",
				"Note any changes or worsening",
				"Prepare questions for your doctor",
			},
			ModelUsed: modelRuleBased,
		},
	}
}

// matchSpecialty returns the first specialty whose keywords intersect
// the lower-cased symptom text, or nil.
func (c *KeywordClassifier) matchSpecialty(lower string) *Specialty {
	for i := range c.specialties {
		if containsAny(lower, c.specialties[i].Keywords) {
			return &c.specialties[i]
		}
	}
	return nil
}

// safeDefault is the response of last resort when classification itself
// fails unexpectedly.
func (c *KeywordClassifier) safeDefault(text string) *models.TriageResult {
	return &models.TriageResult{
		SymptomsDescription: text,
		UrgencyLevel:        models.UrgencyDoctorVisit,
		Recommendation:      "Please consult a healthcare provider for proper evaluation of your symptoms.",
		ProviderType:        "Primary Care Physician",
		ConfidenceScore:     0.60,
		PossibleConditions:  []string{"Requires Medical Evaluation"},
		FollowUpNeeded:      true,
		Metadata: models.TriageMetadata{
			RedFlags:     []string{},
			SelfCareTips: []string{},
			ModelUsed:    modelRuleBasedFallback,
		},
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
