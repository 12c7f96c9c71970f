package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/trip-go/internal/repository/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	seed, err := memory.SeedOfferings()
	require.NoError(t, err)

	store, err := memory.NewStore(seed)
	require.NoError(t, err)

	return New(store)
}

func TestToggle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.True(t, svc.Toggle(ctx, 1))
	assert.True(t, svc.IsFavorite(ctx, 1))

	assert.False(t, svc.Toggle(ctx, 1))
	assert.False(t, svc.IsFavorite(ctx, 1))
}

func TestFavoriteOfferingsKeepCatalogOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// toggle out of catalog order
	svc.Toggle(ctx, 5)
	svc.Toggle(ctx, 2)
	svc.Toggle(ctx, 8)

	favs := svc.FavoriteOfferings(ctx)
	require.Len(t, favs, 3)
	assert.Equal(t, int64(2), favs[0].ID)
	assert.Equal(t, int64(5), favs[1].ID)
	assert.Equal(t, int64(8), favs[2].ID)
	assert.Equal(t, 3, svc.Count(ctx))
}

func TestFavoriteOfferingsSkipUnknownIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.Toggle(ctx, 999)
	svc.Toggle(ctx, 1)

	favs := svc.FavoriteOfferings(ctx)
	require.Len(t, favs, 1)
	assert.Equal(t, int64(1), favs[0].ID)

	// the unknown id is still tracked in the set itself
	assert.True(t, svc.IsFavorite(ctx, 999))
	assert.Equal(t, 2, svc.Count(ctx))
}

func TestFavoriteOfferingsEmpty(t *testing.T) {
	svc := newTestService(t)

	favs := svc.FavoriteOfferings(context.Background())
	require.NotNil(t, favs)
	assert.Empty(t, favs)
}
