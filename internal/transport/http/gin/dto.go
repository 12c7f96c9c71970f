package httpgin

import "github.com/roamly/trip-go/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type CreateReservationRequest struct {
	OfferingID      int64  `json:"offering_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type ReservationResponse struct {
	domain.Reservation
	TotalPrice int64 `json:"total_price"`
}

type ToggleFavoriteResponse struct {
	OfferingID int64 `json:"offering_id"`
	Favorite   bool  `json:"favorite"`
}

type ProfileSummaryResponse struct {
	ConfirmedReservations int   `json:"confirmed_reservations"`
	TotalSpend            int64 `json:"total_spend"`
	Favorites             int   `json:"favorites"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toReservationResponse(r domain.Reservation) ReservationResponse {
	return ReservationResponse{Reservation: r, TotalPrice: r.TotalPrice()}
}

func toReservationResponses(rs []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationResponse(r))
	}
	return out
}
