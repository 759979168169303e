package http

import (
	"errors"
	"net/http"

	"patient-portal-assistant/internal/interaction"
	pkgErrors "patient-portal-assistant/pkg/errors"
)

var (
	errEmptyInput        = pkgErrors.NewHTTPError(http.StatusBadRequest, "input text is required")
	errUnknownSymptom    = pkgErrors.NewHTTPError(http.StatusBadRequest, "priorSymptoms contains an unknown symptom")
	errInvalidConfidence = pkgErrors.NewHTTPError(http.StatusBadRequest, "confidenceScore must be between 0 and 1")
	errSessionNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised, including repository failures, becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, interaction.ErrEmptyInput):
		return errEmptyInput
	case errors.Is(err, interaction.ErrInvalidPayload):
		return pkgErrors.ErrBadRequest
	case errors.Is(err, interaction.ErrUnknownSymptom):
		return errUnknownSymptom
	case errors.Is(err, interaction.ErrInvalidConfidence):
		return errInvalidConfidence
	case errors.Is(err, interaction.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, interaction.ErrMissingUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
