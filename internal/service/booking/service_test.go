package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/trip-go/internal/domain"
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

func TestCreate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		r, err := svc.Create(ctx, 1, domain.TripDetails{
			CheckIn:  "2024-06-01",
			CheckOut: "2024-06-08",
			Guests:   2,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ReservationConfirmed, r.Status)
		assert.Equal(t, "Kenya Safari Adventure", r.Offering.Name)
		assert.Equal(t, int64(2499*2), r.TotalPrice())
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("snapshots the offering", func(t *testing.T) {
		r, err := svc.Create(ctx, 2, domain.TripDetails{Guests: 1})
		require.NoError(t, err)

		got, err := svc.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Offering.ID)
		assert.Equal(t, "Tanzania Serengeti Explorer", got.Offering.Name)
	})

	t.Run("unknown offering", func(t *testing.T) {
		_, err := svc.Create(ctx, 404, domain.TripDetails{Guests: 1})
		assert.ErrorIs(t, err, ErrOfferingNotFound)
	})

	t.Run("guest count must be positive", func(t *testing.T) {
		for _, guests := range []int{0, -1} {
			_, err := svc.Create(ctx, 1, domain.TripDetails{Guests: guests})
			assert.ErrorIs(t, err, ErrInvalidGuestCount)
		}
	})

	t.Run("check-out before check-in is accepted", func(t *testing.T) {
		// date ordering is deliberately not validated
		_, err := svc.Create(ctx, 1, domain.TripDetails{
			CheckIn:  "2024-06-08",
			CheckOut: "2024-06-01",
			Guests:   1,
		})
		assert.NoError(t, err)
	})

	t.Run("back-to-back creations get unique ids", func(t *testing.T) {
		a, err := svc.Create(ctx, 1, domain.TripDetails{Guests: 1})
		require.NoError(t, err)
		b, err := svc.Create(ctx, 1, domain.TripDetails{Guests: 1})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestCancel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, 1, domain.TripDetails{
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-08",
		Guests:   2,
	})
	require.NoError(t, err)

	svc.Cancel(ctx, r.ID)

	all := svc.List(ctx, domain.FilterAll)
	require.Len(t, all, 1)
	assert.Equal(t, domain.ReservationCancelled, all[0].Status)
	assert.Zero(t, svc.TotalSpend(ctx, domain.FilterConfirmed))

	t.Run("cancel is idempotent", func(t *testing.T) {
		svc.Cancel(ctx, r.ID)

		got, err := svc.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationCancelled, got.Status)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		svc.Cancel(ctx, 424242)
		assert.Len(t, svc.List(ctx, domain.FilterAll), 1)
	})
}

func TestListAndTotalSpend(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	kenya, err := svc.Create(ctx, 1, domain.TripDetails{Guests: 2}) // 2499*2
	require.NoError(t, err)
	_, err = svc.Create(ctx, 3, domain.TripDetails{Guests: 1}) // 2199
	require.NoError(t, err)
	_, err = svc.Create(ctx, 6, domain.TripDetails{Guests: 4}) // 3899*4
	require.NoError(t, err)

	svc.Cancel(ctx, kenya.ID)

	all := svc.List(ctx, domain.FilterAll)
	confirmed := svc.List(ctx, domain.FilterConfirmed)
	cancelled := svc.List(ctx, domain.FilterCancelled)

	assert.Len(t, all, 3)
	assert.Equal(t, len(all), len(confirmed)+len(cancelled))

	assert.Equal(t, int64(2199+3899*4), svc.TotalSpend(ctx, domain.FilterConfirmed))
	assert.Equal(t, int64(2499*2), svc.TotalSpend(ctx, domain.FilterCancelled))
	assert.Equal(t, int64(2499*2+2199+3899*4), svc.TotalSpend(ctx, domain.FilterAll))
}

func TestGet(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
