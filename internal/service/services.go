// Package service composes the engine behind a single facade. Callers other
// than tests never touch the stores directly: every query and mutation goes
// through one of the services aggregated here.
package service

import (
	"github.com/roamly/trip-go/internal/repository/memory"
	"github.com/roamly/trip-go/internal/service/booking"
	"github.com/roamly/trip-go/internal/service/favorites"
	"github.com/roamly/trip-go/internal/service/identity"
	"github.com/roamly/trip-go/internal/service/search"
)

type Services struct {
	Search    *search.Service
	Favorites *favorites.Service
	Booking   *booking.Service
	Identity  *identity.Service
}

type Config struct {
	Identity identity.Config
}

func NewServices(store *memory.Store, cfg Config) *Services {
	return &Services{
		Search:    search.New(store),
		Favorites: favorites.New(store),
		Booking:   booking.New(store),
		Identity:  identity.New(cfg.Identity),
	}
}
