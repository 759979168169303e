package usecase

import (
	"context"
	"strings"

	"patient-portal-assistant/internal/assistant"
	"patient-portal-assistant/internal/interaction"
)

// Diagnose maps free text to possible conditions with no conversation state.
func (uc *implUseCase) Diagnose(ctx context.Context, input interaction.DiagnoseInput) (interaction.DiagnoseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return interaction.DiagnoseOutput{}, interaction.ErrEmptyInput
	}

	return interaction.DiagnoseOutput{Diseases: assistant.Conditions(input.Text)}, nil
}
