package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/roamly/trip-go/internal/domain"
	"github.com/roamly/trip-go/internal/repository"
)

// Ledger is the append-only collection of every reservation ever created.
// Cancellation flips the status in place; entries are never removed. Ids
// come from a monotonic counter, so two back-to-back creations can never
// collide the way wall-clock derived ids could.
type Ledger struct {
	mu      sync.RWMutex
	entries []domain.Reservation
	byID    map[int64]int
	nextID  int64
	now     func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		byID:   make(map[int64]int),
		nextID: 1,
		now:    time.Now,
	}
}

// Create appends a confirmed reservation holding a snapshot of the offering
// and returns it. Creation cannot fail: input validation is the service
// layer's job.
func (l *Ledger) Create(offering domain.Offering, details domain.TripDetails) domain.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := domain.Reservation{
		ID:        l.nextID,
		Offering:  offering,
		Details:   details,
		Status:    domain.ReservationConfirmed,
		CreatedAt: l.now(),
	}
	l.nextID++

	l.byID[r.ID] = len(l.entries)
	l.entries = append(l.entries, r)

	return r
}

// Cancel moves the reservation to cancelled. Cancelling an already-cancelled
// reservation is a no-op, as is cancelling an id the ledger has never seen.
// The bool reports whether the ledger changed.
func (l *Ledger) Cancel(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.byID[id]
	if !ok {
		return false
	}

	if l.entries[i].Status != domain.ReservationConfirmed {
		return false
	}

	l.entries[i].Status = domain.ReservationCancelled
	return true
}

// Get returns the reservation with the given id.
//
// Returns:
//   - domain.Reservation: the reservation when present.
//   - error: repository.ErrNotFound for unknown ids.
func (l *Ledger) Get(id int64) (domain.Reservation, error) {
	const op = "memory.Ledger.Get"

	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byID[id]
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%s: id %d: %w", op, id, repository.ErrNotFound)
	}

	return l.entries[i], nil
}

// List returns reservations matching the filter in insertion order. The
// result is a fresh slice.
func (l *Ledger) List(filter domain.ReservationFilter) []domain.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Reservation, 0, len(l.entries))
	for _, r := range l.entries {
		switch filter {
		case domain.FilterConfirmed:
			if r.Status != domain.ReservationConfirmed {
				continue
			}
		case domain.FilterCancelled:
			if r.Status != domain.ReservationCancelled {
				continue
			}
		}
		out = append(out, r)
	}

	return out
}

// Len reports the total number of ledger entries, cancelled included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
