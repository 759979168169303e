package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patient-portal-assistant/internal/assistant"
)

var (
	cough = assistant.Symptom{Name: "cough", Description: "respiratory irritation"}
	fever = assistant.Symptom{Name: "fever", Description: "elevated body temperature"}
)

func TestStore_SaveGet(t *testing.T) {
	s := New(Config{})

	_, ok := s.Get("u1", "s1")
	assert.False(t, ok)

	s.Save("u1", "s1", []assistant.Symptom{cough, fever})

	got, ok := s.Get("u1", "s1")
	require.True(t, ok)
	assert.Equal(t, []assistant.Symptom{cough, fever}, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ScopedPerUser(t *testing.T) {
	s := New(Config{})
	s.Save("u1", "s1", []assistant.Symptom{cough})

	_, ok := s.Get("u2", "s1")
	assert.False(t, ok)
}

func TestStore_KeysDoNotCollide(t *testing.T) {
	s := New(Config{})
	s.Save("a/b", "c", []assistant.Symptom{cough})
	s.Save("a", "b/c", []assistant.Symptom{fever})

	got, ok := s.Get("a/b", "c")
	require.True(t, ok)
	assert.Equal(t, []assistant.Symptom{cough}, got)
	assert.Equal(t, 2, s.Len())
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New(Config{})
	in := []assistant.Symptom{cough}
	s.Save("u1", "s1", in)

	in[0].Name = "mutated input"
	out, ok := s.Get("u1", "s1")
	require.True(t, ok)
	assert.Equal(t, "cough", out[0].Name)

	out[0].Name = "mutated output"
	again, _ := s.Get("u1", "s1")
	assert.Equal(t, "cough", again[0].Name)
}

func TestStore_SaveEmpty(t *testing.T) {
	s := New(Config{})
	s.Save("u1", "s1", nil)

	got, ok := s.Get("u1", "s1")
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_Delete(t *testing.T) {
	s := New(Config{})
	s.Save("u1", "s1", []assistant.Symptom{cough})

	assert.True(t, s.Delete("u1", "s1"))
	assert.False(t, s.Delete("u1", "s1"))

	_, ok := s.Get("u1", "s1")
	assert.False(t, ok)
}

func TestStore_Capacity(t *testing.T) {
	s := New(Config{Capacity: 2})
	s.Save("u1", "a", nil)
	s.Save("u1", "b", nil)
	s.Save("u1", "c", nil)

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("u1", "a")
	assert.False(t, ok, "oldest session should be evicted")
}

func TestStore_Expiry(t *testing.T) {
	s := New(Config{TTL: 20 * time.Millisecond})
	s.Save("u1", "s1", []assistant.Symptom{cough})

	time.Sleep(60 * time.Millisecond)

	_, ok := s.Get("u1", "s1")
	assert.False(t, ok)
}
