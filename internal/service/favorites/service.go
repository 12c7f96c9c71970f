package favorites

import (
	"context"

	"github.com/roamly/trip-go/internal/domain"
	"github.com/roamly/trip-go/internal/repository/memory"
)

type Service struct {
	store *memory.Store
}

func New(store *memory.Store) *Service {
	return &Service{store: store}
}

// Toggle flips the favorite state of an offering id and reports whether it
// is a favorite afterwards. Ids are not checked against the catalog:
// toggling an unknown id simply tracks it, matching the permissive browsing
// behavior.
//
// Parameters:
//   - ctx: request-scoped context.
//   - offeringID: id to toggle.
//
// Returns:
//   - bool: true if the id is a favorite after the toggle.
func (s *Service) Toggle(ctx context.Context, offeringID int64) bool {
	return s.store.Favorites().Toggle(offeringID)
}

// IsFavorite reports whether the offering id is currently a favorite.
func (s *Service) IsFavorite(ctx context.Context, offeringID int64) bool {
	return s.store.Favorites().Contains(offeringID)
}

// FavoriteOfferings returns the favorited offerings in catalog order,
// regardless of the order they were toggled in. Favorited ids with no
// catalog entry are skipped.
func (s *Service) FavoriteOfferings(ctx context.Context) []domain.Offering {
	out := []domain.Offering{}
	for _, o := range s.store.Catalog().List() {
		if s.store.Favorites().Contains(o.ID) {
			out = append(out, o)
		}
	}

	return out
}

// Count reports the number of favorited ids.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Favorites().Len()
}
