package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/trip-go/internal/domain"
	"github.com/roamly/trip-go/internal/repository/memory"
)

func newTestService(t *testing.T) (*Service, []domain.Offering) {
	t.Helper()

	seed, err := memory.SeedOfferings()
	require.NoError(t, err)

	store, err := memory.NewStore(seed)
	require.NoError(t, err)

	return New(store), seed
}

func ids(offerings []domain.Offering) []int64 {
	out := make([]int64, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, o.ID)
	}
	return out
}

func strptr(s string) *string { return &s }

func f64ptr(f float64) *float64 { return &f }

func TestSearchEmptyTermReturnsFullCatalog(t *testing.T) {
	svc, seed := newTestService(t)

	got := svc.Search(context.Background(), "", domain.FilterCriteria{})

	require.Len(t, got, len(seed))
	assert.Equal(t, ids(seed), ids(got))
}

func TestSearchTerm(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("case-insensitive name match", func(t *testing.T) {
		got := svc.Search(ctx, "kenya", domain.FilterCriteria{})
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("matches location", func(t *testing.T) {
		got := svc.Search(ctx, "east africa", domain.FilterCriteria{})
		assert.Equal(t, []int64{1, 2}, ids(got))
	})

	t.Run("matches category", func(t *testing.T) {
		got := svc.Search(ctx, "wildlife", domain.FilterCriteria{})
		assert.Equal(t, []int64{6, 7}, ids(got))
	})

	t.Run("no match returns empty, not nil", func(t *testing.T) {
		got := svc.Search(ctx, "antarctica", domain.FilterCriteria{})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSearchCriteria(t *testing.T) {
	svc, seed := newTestService(t)
	ctx := context.Background()

	t.Run("category is exact and case-sensitive", func(t *testing.T) {
		got := svc.Search(ctx, "", domain.FilterCriteria{Category: strptr("Wildlife")})
		assert.Equal(t, []int64{6, 7}, ids(got))

		got = svc.Search(ctx, "", domain.FilterCriteria{Category: strptr("wildlife")})
		assert.Empty(t, got)
	})

	t.Run("price range is inclusive", func(t *testing.T) {
		got := svc.Search(ctx, "", domain.FilterCriteria{
			PriceRange: &domain.PriceRange{Min: 2199, Max: 2499},
		})
		assert.Equal(t, []int64{1, 3, 7}, ids(got))
	})

	t.Run("price range excludes offerings above max", func(t *testing.T) {
		got := svc.Search(ctx, "", domain.FilterCriteria{
			Category:   strptr("Safari"),
			PriceRange: &domain.PriceRange{Min: 0, Max: 2000},
		})
		assert.NotContains(t, ids(got), int64(1))
		assert.Empty(t, got)
	})

	t.Run("min rating", func(t *testing.T) {
		got := svc.Search(ctx, "", domain.FilterCriteria{MinRating: f64ptr(4.9)})
		assert.Equal(t, []int64{1, 4, 6}, ids(got))
	})

	t.Run("difficulty", func(t *testing.T) {
		got := svc.Search(ctx, "", domain.FilterCriteria{Difficulty: strptr("Challenging")})
		assert.Equal(t, []int64{6, 8}, ids(got))
	})

	t.Run("all filters AND-compose", func(t *testing.T) {
		criteria := domain.FilterCriteria{
			Category:   strptr("Safari"),
			PriceRange: &domain.PriceRange{Min: 2000, Max: 3000},
			MinRating:  f64ptr(4.8),
			Difficulty: strptr("Challenging"),
		}
		got := svc.Search(ctx, "safari", criteria)

		// result must equal the intersection of each predicate applied alone
		want := []int64{}
		for _, o := range seed {
			if o.Category == "Safari" &&
				o.Price >= 2000 && o.Price <= 3000 &&
				o.Rating >= 4.8 &&
				o.Difficulty == "Challenging" {
				want = append(want, o.ID)
			}
		}
		assert.Equal(t, want, ids(got))
		assert.Equal(t, []int64{8}, ids(got))
	})

	t.Run("result preserves catalog order", func(t *testing.T) {
		got := svc.Search(ctx, "", domain.FilterCriteria{Category: strptr("Safari")})
		prev := int64(0)
		for _, o := range got {
			assert.Greater(t, o.ID, prev)
			prev = o.ID
		}
	})
}

func TestGetOffering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o, err := svc.GetOffering(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "South Africa Big Five Safari", o.Name)

	_, err = svc.GetOffering(ctx, 404)
	assert.ErrorIs(t, err, ErrOfferingNotFound)
}
