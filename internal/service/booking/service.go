package booking

import (
	"context"
	"errors"
	"fmt"

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

// Create books an offering and appends a confirmed reservation to the
// ledger. The reservation embeds a snapshot of the offering taken here, so
// later reads never have to resolve the catalog again. Check-in/check-out
// ordering is deliberately not validated, matching the permissive reference
// behavior.
//
// Parameters:
//   - ctx: request-scoped context.
//   - offeringID: id of the catalog offering to book.
//   - details: trip details supplied by the caller.
//
// Returns:
//   - domain.Reservation: the created reservation, status confirmed.
//   - error: booking.ErrOfferingNotFound if the offering id is unknown.
//   - error: booking.ErrInvalidGuestCount if details.Guests < 1.
func (s *Service) Create(ctx context.Context, offeringID int64, details domain.TripDetails) (domain.Reservation, error) {
	const op = "service.booking.Create"

	if details.Guests < 1 {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, ErrInvalidGuestCount)
	}

	offering, err := s.store.Catalog().Get(offeringID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Reservation{}, fmt.Errorf("%s: %w", op, ErrOfferingNotFound)
		}

		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.store.Reservations().Create(offering, details), nil
}

// Cancel moves a reservation to cancelled. It is idempotent: cancelling an
// already-cancelled reservation or an id the ledger has never seen leaves
// the ledger unchanged and reports no error.
//
// Parameters:
//   - ctx: request-scoped context.
//   - reservationID: id of the reservation to cancel.
func (s *Service) Cancel(ctx context.Context, reservationID int64) {
	s.store.Reservations().Cancel(reservationID)
}

// Get retrieves a single reservation by id.
//
// Parameters:
//   - ctx: request-scoped context.
//   - reservationID: id of the reservation to retrieve.
//
// Returns:
//   - domain.Reservation: the reservation when found.
//   - error: booking.ErrReservationNotFound if the id is unknown.
func (s *Service) Get(ctx context.Context, reservationID int64) (domain.Reservation, error) {
	const op = "service.booking.Get"

	r, err := s.store.Reservations().Get(reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Reservation{}, fmt.Errorf("%s: %w", op, ErrReservationNotFound)
		}

		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// List returns reservations matching the status filter in creation order.
// An unrecognized filter behaves like domain.FilterAll.
func (s *Service) List(ctx context.Context, filter domain.ReservationFilter) []domain.Reservation {
	return s.store.Reservations().List(filter)
}

// TotalSpend sums price*guests over reservations matching the filter. The
// profile summary calls it with domain.FilterConfirmed.
func (s *Service) TotalSpend(ctx context.Context, filter domain.ReservationFilter) int64 {
	var total int64
	for _, r := range s.store.Reservations().List(filter) {
		total += r.TotalPrice()
	}

	return total
}
