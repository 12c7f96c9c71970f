// Package memory holds the in-memory state of the engine: the immutable
// offering catalog, the session favorites set, and the append-only
// reservation ledger. There is no durable backend; the catalog is seeded
// once at construction and everything else lives for the process lifetime.
package memory

import (
	"fmt"

	"github.com/roamly/trip-go/internal/domain"
)

type Store struct {
	catalog      *CatalogStore
	favorites    *FavoriteSet
	reservations *Ledger
}

// NewStore builds the full in-memory store from the seed catalog. It fails
// if the seed violates the catalog invariants (unique positive ids).
func NewStore(seed []domain.Offering) (*Store, error) {
	const op = "memory.NewStore"

	catalog, err := NewCatalogStore(seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{
		catalog:      catalog,
		favorites:    NewFavoriteSet(),
		reservations: NewLedger(),
	}, nil
}

func (s *Store) Catalog() *CatalogStore { return s.catalog }

func (s *Store) Favorites() *FavoriteSet { return s.favorites }

func (s *Store) Reservations() *Ledger { return s.reservations }
