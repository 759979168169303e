package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"patient-portal-assistant/internal/assistant"
)

const (
	DefaultCapacity = 10000
	DefaultTTL      = 30 * time.Minute
)

type Config struct {
	Capacity int
	TTL      time.Duration
}

type lruStore struct {
	cache *expirable.LRU[sessionKey, []assistant.Symptom]
}

// New creates an in-memory Store. Least recently used sessions are evicted
// once Capacity is reached and every session expires TTL after its last save.
func New(cfg Config) Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	return &lruStore{
		cache: expirable.NewLRU[sessionKey, []assistant.Symptom](cfg.Capacity, nil, cfg.TTL),
	}
}
