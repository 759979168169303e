package repository

import (
	"context"

	"patient-portal-assistant/internal/interaction"
)

// Repository is the composed interface for the interaction domain data store.
type Repository interface {
	InteractionRepository
}

type InteractionRepository interface {
	CreateInteraction(ctx context.Context, opt CreateInteractionOptions) (interaction.Interaction, error)
	ListInteractions(ctx context.Context, opt ListInteractionsOptions) ([]interaction.Interaction, int, error)
}
