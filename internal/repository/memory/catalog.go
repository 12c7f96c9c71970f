package memory

import (
	"fmt"

	"github.com/roamly/trip-go/internal/domain"
	"github.com/roamly/trip-go/internal/repository"
)

// CatalogStore is the immutable, ordered collection of all offerings. No
// writer exists after construction, so reads need no locking.
type CatalogStore struct {
	offerings []domain.Offering
	byID      map[int64]int
}

// NewCatalogStore copies the seed and indexes it by id.
//
// Returns:
//   - *CatalogStore: the populated store.
//   - error: repository.ErrConflict if an id is duplicated or not positive.
func NewCatalogStore(seed []domain.Offering) (*CatalogStore, error) {
	const op = "memory.NewCatalogStore"

	offerings := make([]domain.Offering, len(seed))
	copy(offerings, seed)

	byID := make(map[int64]int, len(offerings))
	for i, o := range offerings {
		if o.ID <= 0 {
			return nil, fmt.Errorf("%s: offering id %d: %w", op, o.ID, repository.ErrConflict)
		}
		if _, dup := byID[o.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate offering id %d: %w", op, o.ID, repository.ErrConflict)
		}
		byID[o.ID] = i
	}

	return &CatalogStore{offerings: offerings, byID: byID}, nil
}

// List returns a fresh copy of the full catalog in seed order. Callers may
// filter or re-slice the result without affecting the store.
func (c *CatalogStore) List() []domain.Offering {
	out := make([]domain.Offering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

// Get returns the offering with the given id.
//
// Returns:
//   - domain.Offering: the offering when present.
//   - error: repository.ErrNotFound for unknown ids.
func (c *CatalogStore) Get(id int64) (domain.Offering, error) {
	const op = "memory.CatalogStore.Get"

	i, ok := c.byID[id]
	if !ok {
		return domain.Offering{}, fmt.Errorf("%s: id %d: %w", op, id, repository.ErrNotFound)
	}

	return c.offerings[i], nil
}

// Len reports the catalog size.
func (c *CatalogStore) Len() int {
	return len(c.offerings)
}
