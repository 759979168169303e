package interaction

import (
	"context"

	"patient-portal-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	ProcessVoice(ctx context.Context, sc model.Scope, input ProcessVoiceInput) (ProcessVoiceOutput, error)
	ResetSession(ctx context.Context, sc model.Scope, sessionID string) error

	// Interaction log
	Record(ctx context.Context, sc model.Scope, input RecordInput) (RecordOutput, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// Stateless
	Diagnose(ctx context.Context, input DiagnoseInput) (DiagnoseOutput, error)
}
