package postgre

import (
	"fmt"
	"strings"

	repo "patient-portal-assistant/internal/interaction/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListInteractions.
// Ordering follows the (user_id, interaction_timestamp DESC) index.
func (r *implRepository) buildListQuery(opt repo.ListInteractionsOptions) (string, []any) {
	parts := []string{"WHERE user_id = $1", "ORDER BY interaction_timestamp DESC, id"}
	args := []any{opt.UserID}
	idx := 2

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
