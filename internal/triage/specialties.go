package triage

// Specialty is one row of the canonical specialty table. The same table
// backs both the keyword classifier (provider label, conditions) and the
// specialty recommender (referral name), so the two cannot drift apart.
type Specialty struct {
	// Key identifies the row, e.g. "cardiology"
	Key string

	// Provider is the provider label shown to the patient, e.g. "Cardiologist"
	Provider string

	// Name is the referral specialty, e.g. "Cardiology"
	Name string

	// Keywords are matched case-insensitively against the symptom text
	Keywords []string

	// Conditions are the possible conditions suggested for this specialty
	Conditions []string
}

// specialtyTable is ordered: the classifier selects the first row whose
// keywords intersect the symptom text, the recommender collects every
// matching row in table order.
var specialtyTable = []Specialty{
	{
		Key:        "cardiology",
		Provider:   "Cardiologist",
		Name:       "Cardiology",
		Keywords:   []string{"heart", "chest", "palpitations", "irregular heartbeat"},
		Conditions: []string{"Cardiac concerns", "Heart rhythm issues", "Hypertension"},
	},
	{
		Key:        "dermatology",
		Provider:   "Dermatologist",
		Name:       "Dermatology",
		Keywords:   []string{"skin", "rash", "acne", "mole", "eczema", "psoriasis", "hives"},
		Conditions: []string{"Skin condition", "Allergic reaction", "Dermatitis", "Infection"},
	},
	{
		Key:        "orthopedics",
		Provider:   "Orthopedic Specialist",
		Name:       "Orthopedics",
		Keywords:   []string{"bone", "joint", "fracture", "sprain", "back pain", "knee"},
		Conditions: []string{"Musculoskeletal injury", "Arthritis", "Strain or sprain"},
	},
	{
		Key:        "gastroenterology",
		Provider:   "Gastroenterologist",
		Name:       "Gastroenterology",
		Keywords:   []string{"stomach", "digestion", "nausea", "diarrhea", "constipation", "abdominal"},
		Conditions: []string{"Digestive disorder", "Gastritis", "IBS", "Food intolerance"},
	},
	{
		Key:        "neurology",
		Provider:   "Neurologist",
		Name:       "Neurology",
		Keywords:   []string{"headache", "migraine", "dizziness", "numbness", "tingling"},
		Conditions: []string{"Neurological condition", "Migraine", "Tension headache"},
	},
	{
		Key:        "pulmonology",
		Provider:   "Pulmonologist",
		Name:       "Pulmonology",
		Keywords:   []string{"cough", "breathing", "lung", "asthma", "bronchitis"},
		Conditions: []string{"Respiratory infection", "Bronchitis", "Asthma exacerbation"},
	},
	{
		Key:        "ent",
		Provider:   "ENT Specialist",
		Name:       "ENT",
		Keywords:   []string{"ear", "nose", "throat", "sinus", "tonsil"},
		Conditions: []string{"Ear infection", "Sinusitis", "Tonsillitis", "Upper respiratory infection"},
	},
	{
		Key:        "ophthalmology",
		Provider:   "Ophthalmologist",
		Name:       "Ophthalmology",
		Keywords:   []string{"eye", "vision", "blurry", "blind", "double vision", "sight"},
		Conditions: []string{"Eye condition", "Vision problem", "Conjunctivitis"},
	},
	{
		Key:        "mental_health",
		Provider:   "Mental Health Professional",
		Name:       "Psychiatry",
		Keywords:   []string{"anxiety", "depression", "stress", "mental", "panic", "worried"},
		Conditions: []string{"Anxiety disorder", "Depression", "Stress-related condition"},
	},
	{
		Key:        "pediatrics",
		Provider:   "Pediatrician",
		Name:       "Pediatrics",
		Keywords:   []string{"child", "baby", "infant", "toddler"},
		Conditions: []string{"Childhood illness", "Viral infection", "Developmental concern"},
	},
	{
		Key:        "urology",
		Provider:   "Urologist",
		Name:       "Urology",
		Keywords:   []string{"urinary", "bladder", "kidney", "urination"},
		Conditions: []string{"Urinary tract infection", "Kidney condition", "Bladder issue"},
	},
	{
		Key:        "gynecology",
		Provider:   "Gynecologist",
		Name:       "Gynecology",
		Keywords:   []string{"menstrual", "period", "pregnancy", "vaginal", "pelvic"},
		Conditions: []string{"Gynecological condition", "Menstrual disorder", "Reproductive health issue"},
	},
	{
		Key:        "internal_medicine",
		Provider:   "Internal Medicine Physician",
		Name:       "Internal Medicine",
		Keywords:   []string{"fever", "infection", "general illness"},
		Conditions: []string{"Infection", "General medical condition"},
	},
}
