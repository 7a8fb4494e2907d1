package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore() *Store {
	return &Store{
		carts:       make(map[uuid.UUID]*storeEntry),
		entryTTL:    time.Hour,
		cleanupTick: time.Hour,
	}
}

func TestStoreIsolatesUsers(t *testing.T) {
	s := newTestStore()
	alice := uuid.New()
	bob := uuid.New()

	s.Mutate(alice, func(c *Cart) {
		c.Add(uuid.New(), "Wings", 120)
	})

	if lines, _ := s.Snapshot(bob); len(lines) != 0 {
		t.Errorf("bob's cart has %d lines, want 0", len(lines))
	}
	if lines, _ := s.Snapshot(alice); len(lines) != 1 {
		t.Errorf("alice's cart has %d lines, want 1", len(lines))
	}
}

func TestStoreSnapshotEmpty(t *testing.T) {
	s := newTestStore()
	lines, total := s.Snapshot(uuid.New())
	if len(lines) != 0 || total != 0 {
		t.Errorf("snapshot of absent cart = %v, %v; want empty, 0", lines, total)
	}
}

func TestStoreDrop(t *testing.T) {
	s := newTestStore()
	user := uuid.New()
	s.Mutate(user, func(c *Cart) {
		c.Add(uuid.New(), "Rice", 15)
	})

	s.Drop(user)
	if lines, _ := s.Snapshot(user); len(lines) != 0 {
		t.Errorf("dropped cart has %d lines, want 0", len(lines))
	}
}

func TestStoreCleanupEvictsIdle(t *testing.T) {
	s := newTestStore()
	stale := uuid.New()
	fresh := uuid.New()

	s.Mutate(stale, func(c *Cart) { c.Add(uuid.New(), "Wings", 120) })
	s.Mutate(fresh, func(c *Cart) { c.Add(uuid.New(), "Rice", 15) })

	s.mu.Lock()
	s.carts[stale].lastSeen = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()

	s.cleanup()

	s.mu.Lock()
	_, staleExists := s.carts[stale]
	_, freshExists := s.carts[fresh]
	s.mu.Unlock()

	if staleExists {
		t.Error("stale cart should have been evicted")
	}
	if !freshExists {
		t.Error("fresh cart should have survived cleanup")
	}
}
