package domain

import "time"

// ReservationStatus is the lifecycle state of a reservation. The engine only
// ever produces confirmed and cancelled; pending exists for display layers
// that want an intermediate state.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationPending   ReservationStatus = "pending"
)

// Offering is a single bookable travel product. Offerings are seeded once at
// startup and never mutated afterwards.
type Offering struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Price       int64    `json:"price"`
	Rating      float64  `json:"rating"`
	Duration    string   `json:"duration"`
	GroupSize   string   `json:"group_size"`
	Highlights  []string `json:"highlights"`
	Includes    []string `json:"includes"`
	Image       string   `json:"image"`
}

// TripDetails is the caller-supplied part of a reservation. CheckIn and
// CheckOut are opaque calendar dates; the engine does not validate their
// ordering.
type TripDetails struct {
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Reservation is one booking record. Offering is a snapshot of the catalog
// entry taken at creation time, not a live reference. Only Status ever
// changes after creation, and only confirmed -> cancelled.
type Reservation struct {
	ID        int64             `json:"id"`
	Offering  Offering          `json:"offering"`
	Details   TripDetails       `json:"details"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// TotalPrice is the display cost of the reservation: offering price times
// guest count. Derived, never stored.
func (r Reservation) TotalPrice() int64 {
	return r.Offering.Price * int64(r.Details.Guests)
}

// PriceRange is an inclusive [Min, Max] price bound.
type PriceRange struct {
	Min int64
	Max int64
}

// FilterCriteria holds the structured search filters. A nil field means
// "unconstrained"; all set fields are AND-composed with each other and with
// the free-text term.
type FilterCriteria struct {
	Category   *string
	PriceRange *PriceRange
	MinRating  *float64
	Difficulty *string
}

// ReservationFilter selects reservations by status when listing.
type ReservationFilter string

const (
	FilterAll       ReservationFilter = "all"
	FilterConfirmed ReservationFilter = "confirmed"
	FilterCancelled ReservationFilter = "cancelled"
)

// User is the session identity the auth endpoints hand back. The engine
// itself only needs "some identity or none" to gate reservations.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
