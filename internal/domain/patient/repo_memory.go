package patient

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/medinest/simrs/internal/platform/clock"
)

// MemoryRepository keeps the patient collection in memory and simulates the
// latency of a backing service on every operation. There is no cancellation:
// an issued operation always completes.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []*Record // newest admissions first

	clk     clock.Clock
	latency time.Duration
	rnd     *rand.Rand
}

// NewMemoryRepository builds a repository pre-loaded with seed records. The
// seed slice is used as-is and assumed to be ordered newest first.
func NewMemoryRepository(clk clock.Clock, latency time.Duration, seed []*Record) *MemoryRepository {
	return &MemoryRepository{
		records: seed,
		clk:     clk,
		latency: latency,
		rnd:     rand.New(rand.NewSource(clk.Now().UnixNano())),
	}
}

func (m *MemoryRepository) simulateLatency() {
	if m.latency > 0 {
		m.clk.Sleep(m.latency)
	}
}

// GetAll returns a snapshot of the whole collection. Records are cloned so
// callers can never mutate the stored state.
func (m *MemoryRepository) GetAll(_ context.Context) ([]*Record, error) {
	m.simulateLatency()

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Record, len(m.records))
	for i, r := range m.records {
		out[i] = r.Clone()
	}
	return out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id string) (*Record, error) {
	m.simulateLatency()

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) Create(_ context.Context, rec *Record) error {
	m.simulateLatency()

	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID == "" {
		rec.ID = m.uniqueID()
	}
	if rec.Status == "" {
		rec.Status = StatusStable
	}
	m.records = append([]*Record{rec.Clone()}, m.records...)
	return nil
}

func (m *MemoryRepository) Update(_ context.Context, rec *Record) error {
	m.simulateLatency()

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == rec.ID {
			m.records[i] = rec.Clone()
			return nil
		}
	}
	return ErrNotFound
}

// uniqueID generates record IDs until one does not collide with the
// collection. Must be called with the write lock held.
func (m *MemoryRepository) uniqueID() string {
	for {
		id := NewRecordID(m.clk.Now(), m.rnd)
		if !m.hasID(id) {
			return id
		}
	}
}

func (m *MemoryRepository) hasID(id string) bool {
	for _, r := range m.records {
		if r.ID == id {
			return true
		}
	}
	return false
}
