package triage

import (
	"strings"

	"triage/internal/models"
)

// maxRecommendedSpecialties caps the number of referral suggestions.
const maxRecommendedSpecialties = 3

// SpecialtyRecommender maps symptom text and an urgency level to a
// ranked list of medical specialties.
type SpecialtyRecommender struct {
	specialties []Specialty
}

// NewSpecialtyRecommender creates a recommender backed by the canonical
// specialty table.
func NewSpecialtyRecommender() *SpecialtyRecommender {
	return &SpecialtyRecommender{specialties: specialtyTable}
}

// Recommend returns up to three specialties for the given symptoms.
// Emergencies always short-circuit to Emergency Medicine and home-care
// cases need no referral at all.
func (r *SpecialtyRecommender) Recommend(text string, urgency models.UrgencyLevel) []string {
	if urgency == models.UrgencyEmergency {
		return []string{"Emergency Medicine"}
	}
	if urgency == models.UrgencyHomeCare {
		return []string{}
	}

	lower := strings.ToLower(text)

	var recommended []string
	for i := range r.specialties {
		if containsAny(lower, r.specialties[i].Keywords) {
			recommended = append(recommended, r.specialties[i].Name)
			if len(recommended) == maxRecommendedSpecialties {
				break
			}
		}
	}

	if len(recommended) == 0 {
		return []string{"Family Medicine", "Internal Medicine"}
	}
	return recommended
}
