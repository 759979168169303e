package repository

import "time"

type CreateInteractionOptions struct {
	UserID                     string
	SessionID                  string
	InputText                  string
	ResponseText               string
	DetectedIntent             string
	ConfidenceScore            float64
	ResultedInAppointment      bool
	ResultedInProviderTransfer bool
	InteractionTimestamp       time.Time
}

// ListInteractionsOptions lists one user's interactions, newest first.
type ListInteractionsOptions struct {
	UserID string
	Limit  int
	Offset int
}
