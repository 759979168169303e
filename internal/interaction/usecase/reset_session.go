package usecase

import (
	"context"

	"patient-portal-assistant/internal/interaction"
	"patient-portal-assistant/internal/model"
)

// ResetSession drops the accumulated symptoms of one of the caller's conversations.
func (uc *implUseCase) ResetSession(ctx context.Context, sc model.Scope, sessionID string) error {
	if sc.UserID == "" {
		return interaction.ErrMissingUser
	}
	if sessionID == "" {
		return interaction.ErrInvalidPayload
	}

	if !uc.sessions.Delete(sc.UserID, sessionID) {
		return interaction.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "uc.ResetSession: cleared session %s", sessionID)
	return nil
}
