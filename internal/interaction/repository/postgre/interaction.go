package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"patient-portal-assistant/internal/interaction"
	repo "patient-portal-assistant/internal/interaction/repository"
)

const interactionColumns = `id, user_id, session_id, input_text, response_text, detected_intent,
	confidence_score, resulted_in_appointment, resulted_in_provider_transfer,
	interaction_timestamp, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInteraction(row rowScanner) (interaction.Interaction, error) {
	var (
		it        interaction.Interaction
		sessionID sql.NullString
	)
	err := row.Scan(
		&it.ID, &it.UserID, &sessionID, &it.InputText, &it.ResponseText, &it.DetectedIntent,
		&it.ConfidenceScore, &it.ResultedInAppointment, &it.ResultedInProviderTransfer,
		&it.InteractionTimestamp, &it.CreatedAt,
	)
	it.SessionID = sessionID.String
	return it, err
}

// CreateInteraction inserts one interaction row and returns it as stored.
func (r *implRepository) CreateInteraction(ctx context.Context, opt repo.CreateInteractionOptions) (interaction.Interaction, error) {
	query := fmt.Sprintf(`
		INSERT INTO ai_interactions (
			id, user_id, session_id, input_text, response_text, detected_intent,
			confidence_score, resulted_in_appointment, resulted_in_provider_transfer,
			interaction_timestamp, created_at
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING %s`, interactionColumns)

	it, err := scanInteraction(r.db.QueryRowContext(ctx, query,
		r.newID(), opt.UserID, opt.SessionID, opt.InputText, opt.ResponseText, opt.DetectedIntent,
		opt.ConfidenceScore, opt.ResultedInAppointment, opt.ResultedInProviderTransfer,
		opt.InteractionTimestamp,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateInteraction"), err)
		return interaction.Interaction{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// ListInteractions returns one page of a user's interactions and the user's total count.
func (r *implRepository) ListInteractions(ctx context.Context, opt repo.ListInteractionsOptions) ([]interaction.Interaction, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ai_interactions WHERE user_id = $1`, opt.UserID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.op("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM ai_interactions %s`, interactionColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]interaction.Interaction, 0)
	for rows.Next() {
		it, err := scanInteraction(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("ListInteractions"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("ListInteractions"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}
