package assistant

// Symptom is a normalized observation extracted from free text.
type Symptom struct {
	Name        string `json:"name"`        // Canonical keyword, e.g. "sore throat"
	Description string `json:"description"` // Human-readable gloss
}

// Severity is a coarse two-level urgency label.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
)

// Diagnosis is the rule-based guess for the current symptom set.
// It is recomputed from scratch on every turn.
type Diagnosis struct {
	Symptoms           []Symptom `json:"symptoms"`
	PossibleConditions []string  `json:"possibleConditions"`
	Recommendations    []string  `json:"recommendations"`
	Severity           Severity  `json:"severity"`
}

// PreferredTime is the part of day requested for an appointment.
type PreferredTime string

const (
	PreferredTimeMorning   PreferredTime = "morning"
	PreferredTimeAfternoon PreferredTime = "afternoon"
	PreferredTimeEvening   PreferredTime = "evening"
	PreferredTimeAny       PreferredTime = "any"
)

// AppointmentRequest is produced when scheduling language is detected.
type AppointmentRequest struct {
	Requested     bool          `json:"requested"`
	PreferredTime PreferredTime `json:"preferredTime"`
	Urgency       string        `json:"urgency"` // Diagnosis severity or "routine"
	Reason        string        `json:"reason"`
}

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentScheduleAppointment Intent = "schedule_appointment"
	IntentConnectToProvider   Intent = "connect_to_provider"
	IntentSymptomAnalysis     Intent = "symptom_analysis"
	IntentUnknown             Intent = "unknown"
)

// Actions are follow-up UI flows suggested to the caller.
type Actions struct {
	ScheduleAppointment bool `json:"scheduleAppointment"`
	ConnectToProvider   bool `json:"connectToProvider"`
}

// Response is the unit returned to the caller each turn.
type Response struct {
	Text       string  `json:"text"`
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"` // Fixed per intent bucket, not a probability
	Actions    Actions `json:"actions"`
}

// Turn is the full result of one conversation turn. Symptoms is the updated
// accumulated set the caller must pass back as prior on the next turn.
type Turn struct {
	Response    Response            `json:"response"`
	Symptoms    []Symptom           `json:"symptoms"`
	Extracted   []Symptom           `json:"extracted"`
	Diagnosis   *Diagnosis          `json:"diagnosis,omitempty"`
	Appointment *AppointmentRequest `json:"appointment,omitempty"`
}
