package usecase

import (
	"context"

	"patient-portal-assistant/internal/interaction"
	repo "patient-portal-assistant/internal/interaction/repository"
	"patient-portal-assistant/internal/model"
)

// History returns the caller's interactions, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input interaction.HistoryInput) (interaction.HistoryOutput, error) {
	if sc.UserID == "" {
		return interaction.HistoryOutput{}, interaction.ErrMissingUser
	}

	limit := input.Limit
	if limit <= 0 || limit > interaction.MaxHistoryLimit {
		limit = interaction.DefaultHistoryLimit
	}
	offset := max(input.Offset, 0)

	items, total, err := uc.repo.ListInteractions(ctx, repo.ListInteractionsOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListInteractions: %v", err)
		return interaction.HistoryOutput{}, err
	}

	return interaction.HistoryOutput{
		Interactions: items,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}
