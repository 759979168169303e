package usecase

import (
	"time"

	"github.com/google/uuid"

	"patient-portal-assistant/internal/interaction/repository"
	"patient-portal-assistant/internal/metrics"
	"patient-portal-assistant/internal/session"
	"patient-portal-assistant/pkg/log"
)

// implUseCase is the private implementation of interaction.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	sessions session.Store
	metrics  *metrics.Metrics

	now          func() time.Time
	newSessionID func() string
}

// New creates the interaction UseCase. m may be nil.
func New(l log.Logger, repo repository.Repository, sessions session.Store, m *metrics.Metrics) *implUseCase {
	return &implUseCase{
		l:            l,
		repo:         repo,
		sessions:     sessions,
		metrics:      m,
		now:          time.Now,
		newSessionID: uuid.NewString,
	}
}
