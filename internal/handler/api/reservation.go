package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"beach-reserve/internal/domain/reservation"
	reqdto "beach-reserve/internal/handler/dto/request"
	resdto "beach-reserve/internal/handler/dto/response"
	"beach-reserve/internal/handler/middleware"
	"beach-reserve/internal/usecase/commands"
	"beach-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errIdempotencyKeyRequired = errors.New("Idempotency-Key header is required")

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
	userQueries         queries.UserQueries
	loc                 *time.Location
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
	userQueries queries.UserQueries,
	policy reservation.Policy,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
		userQueries:         userQueries,
		loc:                 policy.Location(),
	}
}

// @Summary Create reservation
// @Description Place a reservation with a vendor; requires an idempotency key
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} queries.ReservationView
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid arrival format, expected day 2006-01-02 and time 15:04",
		})
		return
	}

	result, err := h.reservationCommands.CreateReservation(c.Request.Context(), cmd, userID, idempotencyKey)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, result.Reservation)
}

func (h *ReservationHandler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVendorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vendor not found",
		})
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found for this vendor",
		})
	case errors.Is(err, commands.ErrVendorInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Vendor is not accepting reservations",
		})
	case errors.Is(err, commands.ErrItemUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Item is not available",
		})
	case errors.Is(err, commands.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Not enough stock for the requested quantity",
		})
	case errors.Is(err, commands.ErrInvalidArrival):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Arrival time is outside the allowed window",
			"detail": arrivalDetail(err),
		})
	case errors.Is(err, commands.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate reservation request with different parameters",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Reservation request failed validation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// arrivalDetail names which window rule rejected the requested time.
func arrivalDetail(err error) string {
	switch {
	case errors.Is(err, reservation.ErrDayOutOfRange):
		return "day_out_of_range"
	case errors.Is(err, reservation.ErrBeforeOpening):
		return "before_opening"
	case errors.Is(err, reservation.ErrAfterClosing):
		return "after_closing"
	case errors.Is(err, reservation.ErrInsufficientLead):
		return "insufficient_lead"
	default:
		return "invalid"
	}
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	actor, err := h.resolveActor(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Account unavailable",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound), errors.Is(err, queries.ErrReservationAccess):
			// Access failures read as 404 so IDs cannot be probed.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List current reservations
// @Description List the caller's upcoming and recent reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationListItem
// @Failure 401 {object} map[string]string
// @Router /reservations/current [get]
func (h *ReservationHandler) ListCurrent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := queries.ValidateLimit(intQuery(c, "limit"))
	items, err := h.reservationQueries.ListCurrentByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.ReservationListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List reservation history
// @Description Page through the caller's settled reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Opaque cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservations/history [get]
func (h *ReservationHandler) ListHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		if _, _, err := queries.DecodeAfterCursor(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid cursor",
			})
			return
		}
		after = &queries.Cursor{After: raw}
	}

	limit := queries.ValidateLimit(intQuery(c, "limit"))
	items, next, err := h.reservationQueries.ListHistoryByUser(c.Request.Context(), userID, after, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Cancel reservation
// @Description Cancel the caller's own reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.CancelByUser(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound), errors.Is(err, commands.ErrReservationNotOwned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, reservation.ErrCancelTooClose):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Too close to the arrival time to cancel",
			})
		case errors.Is(err, reservation.ErrCancelWrongStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation can no longer be canceled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check in
// @Description Confirm arrival at the stand with the reservation code
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckInRequest true "Check-in code"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	var req reqdto.CheckInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.reservationCommands.CheckIn(c.Request.Context(), id, req.Code); err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, reservation.ErrPinMismatch), errors.Is(err, reservation.ErrCheckInNotAllowed):
			// Wrong code and wrong status look the same to the client.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Check-in failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) resolveActor(c *gin.Context) (queries.AuthorizedUserView, error) {
	if actor, ok := middleware.GetActor(c); ok {
		return actor, nil
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.AuthorizedUserView{}, errors.New("not authenticated")
	}
	actor, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		return queries.AuthorizedUserView{}, err
	}
	return *actor, nil
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}

func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
