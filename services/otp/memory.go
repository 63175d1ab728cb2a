package otp

import (
	"context"
	"sync"
	"time"
)

// MemoryBroker implements Broker as a process-lifetime map with lazy expiry
// on read. A restart drops all pending entries; callers must re-request.
type MemoryBroker struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	staged    StagedBooking
	expiresAt time.Time
}

// NewMemoryBroker creates an in-memory Broker.
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryBrokerWithClock creates an in-memory Broker with an injected
// clock.
func NewMemoryBrokerWithClock(now func() time.Time) *MemoryBroker {
	b := NewMemoryBroker()
	b.now = now
	return b
}

func (b *MemoryBroker) Stage(ctx context.Context, key string, entry StagedBooking, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = memoryEntry{staged: entry, expiresAt: b.now().Add(ttl)}
	return nil
}

func (b *MemoryBroker) Get(ctx context.Context, key string) (*StagedBooking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[key]
	if !ok {
		return nil, nil
	}
	if b.now().After(e.expiresAt) {
		delete(b.entries, key)
		return nil, nil
	}
	staged := e.staged
	return &staged, nil
}

func (b *MemoryBroker) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	return nil
}
