package session

import "patient-portal-assistant/internal/assistant"

// Store holds the accumulated symptoms of in-flight conversations on behalf
// of HTTP callers. Keys are scoped per user so one user can never read
// another user's session.
type Store interface {
	Get(userID, sessionID string) ([]assistant.Symptom, bool)
	Save(userID, sessionID string, symptoms []assistant.Symptom)
	Delete(userID, sessionID string) bool
	Len() int
}
