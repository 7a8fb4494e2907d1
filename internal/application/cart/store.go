package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps one cart per user with an idle TTL. Carts that go untouched
// for longer than the TTL are evicted by a background sweep, matching a
// register session that was abandoned mid-order.
type Store struct {
	carts       map[uuid.UUID]*storeEntry
	mu          sync.Mutex
	entryTTL    time.Duration
	cleanupTick time.Duration
}

type storeEntry struct {
	cart     *Cart
	lastSeen time.Time
}

// StoreConfig holds configuration for the cart store
type StoreConfig struct {
	EntryTTL        time.Duration // How long an idle cart survives
	CleanupInterval time.Duration // How often to sweep idle carts
}

// DefaultStoreConfig returns sensible defaults
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		EntryTTL:        2 * time.Hour,
		CleanupInterval: 10 * time.Minute,
	}
}

// NewStore creates a cart store and starts its background sweep.
func NewStore(cfg StoreConfig) *Store {
	s := &Store{
		carts:       make(map[uuid.UUID]*storeEntry),
		entryTTL:    cfg.EntryTTL,
		cleanupTick: cfg.CleanupInterval,
	}

	go s.cleanupLoop()

	return s
}

// Get returns the user's cart, creating an empty one if needed, and renews
// the idle timer.
func (s *Store) Get(userID uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.carts[userID]
	if !exists {
		entry = &storeEntry{cart: New()}
		s.carts[userID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.cart
}

// Mutate runs fn against the user's cart while holding the store lock, so
// concurrent requests from the same register cannot interleave.
func (s *Store) Mutate(userID uuid.UUID, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.carts[userID]
	if !exists {
		entry = &storeEntry{cart: New()}
		s.carts[userID] = entry
	}
	entry.lastSeen = time.Now()
	fn(entry.cart)
}

// Snapshot returns the lines and total of the user's cart without extending
// its lifetime when the cart does not exist.
func (s *Store) Snapshot(userID uuid.UUID) ([]Line, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.carts[userID]
	if !exists {
		return []Line{}, 0
	}
	entry.lastSeen = time.Now()
	return entry.cart.Lines(), entry.cart.Total()
}

// Drop discards the user's cart entirely.
func (s *Store) Drop(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *Store) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.entryTTL)
	for userID, entry := range s.carts {
		if entry.lastSeen.Before(cutoff) {
			delete(s.carts, userID)
		}
	}
}
