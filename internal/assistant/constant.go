package assistant

// symptomKeywords is the extractor table. Order is significant: extracted
// symptoms are emitted in this order.
var symptomKeywords = []Symptom{
	{Name: "headache", Description: "head pain"},
	{Name: "fever", Description: "elevated body temperature"},
	{Name: "cough", Description: "respiratory irritation"},
	{Name: "sore throat", Description: "throat pain or irritation"},
	{Name: "runny nose", Description: "nasal discharge"},
	{Name: "fatigue", Description: "feeling of tiredness"},
	{Name: "pain", Description: "discomfort"},
	{Name: "nausea", Description: "feeling of sickness"},
	{Name: "dizzy", Description: "feeling of unsteadiness"},
	{Name: "vomiting", Description: "forceful expulsion of stomach contents"},
}

// Conditions
const (
	ConditionCommonCold        = "Common cold"
	ConditionFlu               = "Flu"
	ConditionStrepThroat       = "Strep throat"
	ConditionTensionHeadache   = "Tension headache"
	ConditionMigraine          = "Migraine"
	ConditionAllergies         = "Allergies"
	ConditionGeneralDiscomfort = "General discomfort"
)

// Recommendations
const (
	RecommendRest              = "Rest and stay hydrated"
	RecommendPainRelieverFever = "Over-the-counter pain relievers for fever and aches"
	RecommendWarmLiquids       = "Warm liquids like tea with honey for sore throat"
	RecommendPainReliever      = "Over-the-counter pain relievers"
	RecommendStressReduction   = "Stress reduction techniques"
	RecommendDarkRoom          = "Rest in a quiet, dark room"
	RecommendMigraineMedicine  = "Over-the-counter migraine medication"
	RecommendAntihistamines    = "Over-the-counter antihistamines"
	RecommendAvoidAllergens    = "Avoid known allergens"
	RecommendConsultProvider   = "If symptoms persist for more than 3 days or worsen, consult with your healthcare provider"
)

// moderateSymptomCount is the accumulated symptom count above which severity is moderate.
const moderateSymptomCount = 3

// Intent keywords, checked against lowercased text.
var (
	appointmentKeywords = []string{"appointment", "schedule", "book"}
	providerKeywords    = []string{"doctor", "provider"}
	symptomLanguage     = []string{"symptom", "pain"}
)

// Confidence per intent bucket.
const (
	ConfidenceScheduleAppointment = 0.9
	ConfidenceConnectToProvider   = 0.85
	ConfidenceSymptomAnalysis     = 0.8
	ConfidenceUnknown             = 0.7
)

// Appointment defaults
const (
	UrgencyRoutine          = "routine"
	ReasonHealthConsult     = "Health consultation"
	ReasonPossibleCondition = "Possible "
)

// Reply templates
const (
	ReplyAppointment = "I'll help you schedule an appointment with your healthcare provider. " +
		"Based on your request, I'll look for a %s slot. " +
		"I'll need to contact your provider to confirm availability. " +
		"Would you like me to proceed with scheduling?"
	ReplyDiagnosisSymptoms   = "Based on your symptoms (%s), "
	ReplyDiagnosisConditions = "you may have %s. "
	ReplyDiagnosisRecommend  = "I recommend: %s. "
	ReplyDiagnosisSeverity   = "Your condition appears to be %s. "
	ReplyScheduleQuestion    = "Would you like me to schedule an appointment with your healthcare provider?"
	ReplyNotedSymptoms       = "I've noted your symptoms: %s. " +
		"Please tell me more about how you're feeling or any other symptoms you're experiencing."
	ReplyConnectProvider = "I'll connect you with your healthcare provider right away."
	ReplyFallback        = "I'm here to help with your health concerns. " +
		"Please describe your symptoms so I can assist you better."
)
