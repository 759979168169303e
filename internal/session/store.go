package session

import (
	"slices"

	"patient-portal-assistant/internal/assistant"
)

type sessionKey struct {
	userID    string
	sessionID string
}

func key(userID, sessionID string) sessionKey {
	return sessionKey{userID: userID, sessionID: sessionID}
}

// Get returns a copy of the stored symptoms.
func (s *lruStore) Get(userID, sessionID string) ([]assistant.Symptom, bool) {
	symptoms, ok := s.cache.Get(key(userID, sessionID))
	if !ok {
		return nil, false
	}
	return slices.Clone(symptoms), true
}

// Save replaces the session state and resets its TTL.
func (s *lruStore) Save(userID, sessionID string, symptoms []assistant.Symptom) {
	stored := slices.Clone(symptoms)
	if stored == nil {
		stored = []assistant.Symptom{}
	}
	s.cache.Add(key(userID, sessionID), stored)
}

func (s *lruStore) Delete(userID, sessionID string) bool {
	return s.cache.Remove(key(userID, sessionID))
}

func (s *lruStore) Len() int {
	return s.cache.Len()
}
