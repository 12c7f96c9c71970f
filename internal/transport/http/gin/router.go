package httpgin

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/roamly/trip-go/internal/domain"
	"github.com/roamly/trip-go/internal/service"
	"github.com/roamly/trip-go/internal/service/booking"
	"github.com/roamly/trip-go/internal/service/identity"
	"github.com/roamly/trip-go/internal/service/search"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/offerings", handleListOfferings(svcs))
	r.GET("/offerings/:id", handleGetOffering(svcs))
	r.GET("/favorites", handleListFavorites(svcs))
	r.POST("/offerings/:id/favorite", handleToggleFavorite(svcs))

	r.POST("/auth/login", handleLogin(svcs))
	r.POST("/auth/register", handleRegister(svcs))

	// Reservation API, session required
	authed := r.Group("/", RequireIdentity(svcs.Identity))
	{
		authed.POST("/reservations", handleCreateReservation(svcs))
		authed.POST("/reservations/:id/cancel", handleCancelReservation(svcs))
		authed.GET("/reservations", handleListReservations(svcs))
		authed.GET("/reservations/:id", handleGetReservation(svcs))
		authed.GET("/profile/summary", handleProfileSummary(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Search offerings
// @Param    term        query  string  false  "free-text term over name/location/category"
// @Param    category    query  string  false  "exact category"
// @Param    min_price   query  int     false  "inclusive lower price bound"
// @Param    max_price   query  int     false  "inclusive upper price bound"
// @Param    min_rating  query  number  false  "minimum rating"
// @Param    difficulty  query  string  false  "exact difficulty"
// @Param    fallback    query  bool    false  "return the full catalog when nothing matches"
// @Success  200  {array}   domain.Offering
// @Failure  400  {object}  ErrorResponse
// @Router   /offerings [get]
func handleListOfferings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, ok := parseCriteria(c)
		if !ok {
			return
		}

		results := svcs.Search.Search(c.Request.Context(), c.Query("term"), criteria)

		// Empty-result fallback is a presentation choice, opted into by the
		// client; the search service itself reports empty as empty.
		if len(results) == 0 && c.Query("fallback") == "true" {
			results = svcs.Search.Catalog(c.Request.Context())
		}

		writeJSONWithCache(c, http.StatusOK, results, "public, max-age=60")
	}
}

// @Summary  Get offering
// @Param    id  path  int  true  "Offering ID"
// @Success  200  {object}  domain.Offering
// @Failure  404  {object}  ErrorResponse
// @Router   /offerings/{id} [get]
func handleGetOffering(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		o, err := svcs.Search.GetOffering(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, o, "public, max-age=60")
	}
}

// @Summary  List favorite offerings in catalog order
// @Success  200  {array}  domain.Offering
// @Router   /favorites [get]
func handleListFavorites(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svcs.Favorites.FavoriteOfferings(c.Request.Context()))
	}
}

// @Summary  Toggle favorite
// @Param    id  path  int  true  "Offering ID"
// @Success  200  {object}  ToggleFavoriteResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /offerings/{id}/favorite [post]
func handleToggleFavorite(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		fav := svcs.Favorites.Toggle(c.Request.Context(), id)
		c.JSON(http.StatusOK, ToggleFavoriteResponse{OfferingID: id, Favorite: fav})
	}
}

// @Summary  Log in
// @Param    req  body  LoginRequest  true  "payload"
// @Success  200  {object}  AuthResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /auth/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, token, err := svcs.Identity.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
	}
}

// @Summary  Register
// @Param    req  body  RegisterRequest  true  "payload"
// @Success  201  {object}  AuthResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /auth/register [post]
func handleRegister(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		user, token, err := svcs.Identity.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
	}
}

// @Summary  Create reservation
// @Security BearerAuth
// @Param    req  body  CreateReservationRequest  true  "payload"
// @Success  201  {object}  ReservationResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  401  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse  "offering not found"
// @Failure  422  {object}  ErrorResponse  "invalid guest count"
// @Router   /reservations [post]
func handleCreateReservation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		r, err := svcs.Booking.Create(c.Request.Context(), req.OfferingID, domain.TripDetails{
			CheckIn:         req.CheckIn,
			CheckOut:        req.CheckOut,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, toReservationResponse(r))
	}
}

// @Summary  Cancel reservation (idempotent)
// @Security BearerAuth
// @Param    id  path  int  true  "Reservation ID"
// @Success  204
// @Failure  401  {object}  ErrorResponse
// @Router   /reservations/{id}/cancel [post]
func handleCancelReservation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		// Unknown ids and repeated cancels succeed by design.
		svcs.Booking.Cancel(c.Request.Context(), id)
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List reservations
// @Security BearerAuth
// @Param    status  query  string  false  "all|confirmed|cancelled"  default(all)
// @Success  200  {array}  ReservationResponse
// @Failure  401  {object}  ErrorResponse
// @Router   /reservations [get]
func handleListReservations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := domain.ReservationFilter(c.DefaultQuery("status", string(domain.FilterAll)))
		rs := svcs.Booking.List(c.Request.Context(), filter)
		c.JSON(http.StatusOK, toReservationResponses(rs))
	}
}

// @Summary  Get reservation
// @Security BearerAuth
// @Param    id  path  int  true  "Reservation ID"
// @Success  200  {object}  ReservationResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /reservations/{id} [get]
func handleGetReservation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		r, err := svcs.Booking.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toReservationResponse(r))
	}
}

// @Summary  Profile summary
// @Security BearerAuth
// @Success  200  {object}  ProfileSummaryResponse
// @Failure  401  {object}  ErrorResponse
// @Router   /profile/summary [get]
func handleProfileSummary(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, ProfileSummaryResponse{
			ConfirmedReservations: len(svcs.Booking.List(ctx, domain.FilterConfirmed)),
			TotalSpend:            svcs.Booking.TotalSpend(ctx, domain.FilterConfirmed),
			Favorites:             svcs.Favorites.Count(ctx),
		})
	}
}

// --- Helpers ---

func parseCriteria(c *gin.Context) (domain.FilterCriteria, bool) {
	var criteria domain.FilterCriteria

	if v := c.Query("category"); v != "" {
		criteria.Category = &v
	}

	if v := c.Query("difficulty"); v != "" {
		criteria.Difficulty = &v
	}

	minStr, maxStr := c.Query("min_price"), c.Query("max_price")
	if minStr != "" || maxStr != "" {
		pr := domain.PriceRange{Min: 0, Max: math.MaxInt64}
		if minStr != "" {
			v, err := strconv.ParseInt(minStr, 10, 64)
			if err != nil {
				badRequest(c, "invalid min_price")
				return criteria, false
			}
			pr.Min = v
		}
		if maxStr != "" {
			v, err := strconv.ParseInt(maxStr, 10, 64)
			if err != nil {
				badRequest(c, "invalid max_price")
				return criteria, false
			}
			pr.Max = v
		}
		criteria.PriceRange = &pr
	}

	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badRequest(c, "invalid min_rating")
			return criteria, false
		}
		criteria.MinRating = &r
	}

	return criteria, true
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// search service
	case errors.Is(err, search.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "offering not found"})
		return
	// booking service
	case errors.Is(err, booking.ErrOfferingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "offering not found"})
		return
	case errors.Is(err, booking.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "reservation not found"})
		return
	case errors.Is(err, booking.ErrInvalidGuestCount):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "guest count must be a positive integer"})
		return
	// identity service
	case errors.Is(err, identity.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid credentials"})
		return
	case errors.Is(err, identity.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid session"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
