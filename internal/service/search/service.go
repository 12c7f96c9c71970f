package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roamly/trip-go/internal/domain"
	"github.com/roamly/trip-go/internal/repository"
	"github.com/roamly/trip-go/internal/repository/memory"
)

type Service struct {
	store *memory.Store
}

func New(store *memory.Store) *Service {
	return &Service{store: store}
}

// Search returns the offerings matching the free-text term and the filter
// criteria. The term is a case-insensitive substring match against name,
// location, or category (any of the three). Each set criteria field narrows
// the result further; all predicates are AND-composed. The result preserves
// catalog order, and an empty result is returned as-is: any fall-back to the
// full catalog is the caller's decision.
//
// Parameters:
//   - ctx: request-scoped context.
//   - term: free-text search term, may be empty.
//   - criteria: structured filters, nil fields are unconstrained.
//
// Returns:
//   - []domain.Offering: matching offerings in catalog order, never nil.
func (s *Service) Search(ctx context.Context, term string, criteria domain.FilterCriteria) []domain.Offering {
	results := s.store.Catalog().List()

	if term != "" {
		results = filter(results, matchesTerm(term))
	}

	if criteria.Category != nil {
		cat := *criteria.Category
		results = filter(results, func(o domain.Offering) bool {
			return o.Category == cat
		})
	}

	if criteria.PriceRange != nil {
		pr := *criteria.PriceRange
		results = filter(results, func(o domain.Offering) bool {
			return o.Price >= pr.Min && o.Price <= pr.Max
		})
	}

	if criteria.MinRating != nil {
		minRating := *criteria.MinRating
		results = filter(results, func(o domain.Offering) bool {
			return o.Rating >= minRating
		})
	}

	if criteria.Difficulty != nil {
		diff := *criteria.Difficulty
		results = filter(results, func(o domain.Offering) bool {
			return o.Difficulty == diff
		})
	}

	return results
}

// GetOffering retrieves a single offering by id.
//
// Parameters:
//   - ctx: request-scoped context.
//   - id: id of the offering to retrieve.
//
// Returns:
//   - domain.Offering: the offering when found.
//   - error: search.ErrOfferingNotFound if the id is not in the catalog.
func (s *Service) GetOffering(ctx context.Context, id int64) (domain.Offering, error) {
	const op = "service.search.GetOffering"

	o, err := s.store.Catalog().Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Offering{}, fmt.Errorf("%s: %w", op, ErrOfferingNotFound)
		}

		return domain.Offering{}, fmt.Errorf("%s: %w", op, err)
	}

	return o, nil
}

// Catalog returns the full catalog in seed order.
func (s *Service) Catalog(ctx context.Context) []domain.Offering {
	return s.store.Catalog().List()
}

func matchesTerm(term string) func(domain.Offering) bool {
	needle := strings.ToLower(term)
	return func(o domain.Offering) bool {
		return strings.Contains(strings.ToLower(o.Name), needle) ||
			strings.Contains(strings.ToLower(o.Location), needle) ||
			strings.Contains(strings.ToLower(o.Category), needle)
	}
}

// filter keeps the relative order of the input; search results are always a
// stable subsequence of the catalog.
func filter(in []domain.Offering, keep func(domain.Offering) bool) []domain.Offering {
	out := make([]domain.Offering, 0, len(in))
	for _, o := range in {
		if keep(o) {
			out = append(out, o)
		}
	}

	return out
}
