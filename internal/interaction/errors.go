package interaction

import "errors"

var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrInvalidConfidence = errors.New("confidence score must be between 0 and 1")
	ErrMissingUser       = errors.New("user id is required")
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownSymptom    = errors.New("prior symptom is not a known symptom")
)
