package usecase

import (
	"context"
	"strings"

	"patient-portal-assistant/internal/interaction"
	repo "patient-portal-assistant/internal/interaction/repository"
	"patient-portal-assistant/internal/model"
)

// Record persists an interaction produced by the client.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input interaction.RecordInput) (interaction.RecordOutput, error) {
	if sc.UserID == "" {
		return interaction.RecordOutput{}, interaction.ErrMissingUser
	}
	if err := uc.validateRecord(input); err != nil {
		return interaction.RecordOutput{}, err
	}

	it, err := uc.repo.CreateInteraction(ctx, repo.CreateInteractionOptions{
		UserID:                     sc.UserID,
		SessionID:                  input.SessionID,
		InputText:                  input.InputText,
		ResponseText:               input.ResponseText,
		DetectedIntent:             input.DetectedIntent,
		ConfidenceScore:            input.ConfidenceScore,
		ResultedInAppointment:      input.ResultedInAppointment,
		ResultedInProviderTransfer: input.ResultedInProviderTransfer,
		InteractionTimestamp:       uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateInteraction: %v", err)
		uc.metrics.RecordPersistFailure()
		return interaction.RecordOutput{}, err
	}

	return interaction.RecordOutput{Interaction: it}, nil
}

func (uc *implUseCase) validateRecord(input interaction.RecordInput) error {
	for _, field := range []string{input.InputText, input.ResponseText, input.DetectedIntent} {
		if strings.TrimSpace(field) == "" {
			return interaction.ErrInvalidPayload
		}
	}
	if input.ConfidenceScore < 0 || input.ConfidenceScore > 1 {
		return interaction.ErrInvalidConfidence
	}
	return nil
}
