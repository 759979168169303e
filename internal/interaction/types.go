package interaction

import (
	"time"

	"patient-portal-assistant/internal/assistant"
)

// --- Interaction Domain Model ---

// Interaction is one persisted assistant exchange.
type Interaction struct {
	ID                         string
	UserID                     string
	SessionID                  string
	InputText                  string
	ResponseText               string
	DetectedIntent             string
	ConfidenceScore            float64
	ResultedInAppointment      bool
	ResultedInProviderTransfer bool
	InteractionTimestamp       time.Time
	CreatedAt                  time.Time
}

// --- UseCase Inputs ---

// ProcessVoiceInput carries one user utterance. PriorSymptoms, when non-nil,
// overrides whatever the session store holds for SessionID.
type ProcessVoiceInput struct {
	Text          string
	SessionID     string
	PriorSymptoms []assistant.Symptom
}

type RecordInput struct {
	SessionID                  string
	InputText                  string
	ResponseText               string
	DetectedIntent             string
	ConfidenceScore            float64
	ResultedInAppointment      bool
	ResultedInProviderTransfer bool
}

type HistoryInput struct {
	Limit  int
	Offset int
}

type DiagnoseInput struct {
	Text string
}

// --- UseCase Outputs ---

type ProcessVoiceOutput struct {
	Interaction Interaction
	SessionID   string
	Turn        assistant.Turn
}

type RecordOutput struct {
	Interaction Interaction
}

type HistoryOutput struct {
	Interactions []Interaction
	Total        int
	Limit        int
	Offset       int
}

type DiagnoseOutput struct {
	Diseases []string
}
