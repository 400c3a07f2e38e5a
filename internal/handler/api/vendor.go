package api

import (
	"errors"
	"net/http"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/domain/vendor"
	reqdto "beach-reserve/internal/handler/dto/request"
	resdto "beach-reserve/internal/handler/dto/response"
	"beach-reserve/internal/handler/middleware"
	"beach-reserve/internal/usecase/commands"
	"beach-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler serves the stand-operator side: the day's reservation
// board, approval decisions, and the item catalog.
type VendorHandler struct {
	decisionCommands commands.DecisionCommands
	itemCommands     commands.ItemCommands
	profileCommands  commands.ProfileCommands
	reservations     queries.ReservationQueries
	catalog          queries.CatalogQueries
	loc              *time.Location
}

func NewVendorHandler(
	decisionCommands commands.DecisionCommands,
	itemCommands commands.ItemCommands,
	profileCommands commands.ProfileCommands,
	reservations queries.ReservationQueries,
	catalog queries.CatalogQueries,
	policy reservation.Policy,
) *VendorHandler {
	return &VendorHandler{
		decisionCommands: decisionCommands,
		itemCommands:     itemCommands,
		profileCommands:  profileCommands,
		reservations:     reservations,
		catalog:          catalog,
		loc:              policy.Location(),
	}
}

// @Summary Vendor day board
// @Description List reservations arriving on a calendar day for the caller's stand
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Param day query string false "Day as 2006-01-02, defaults to today"
// @Success 200 {array} queries.ReservationListItem
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /vendor/reservations [get]
func (h *VendorHandler) ListDayReservations(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	day := time.Now().In(h.loc)
	if raw := c.Query("day"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid day format, expected 2006-01-02",
			})
			return
		}
		day = parsed
	}

	items, err := h.reservations.ListForVendorDay(c.Request.Context(), *actor.VendorID, day)
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

// @Summary Vendor current reservations
// @Description List reservations arriving today or tomorrow, plus open undated ones
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationListItem
// @Failure 403 {object} map[string]string
// @Router /vendor/reservations/current [get]
func (h *VendorHandler) ListCurrentReservations(c *gin.Context) {
	h.listBoard(c, func(vendorID uuid.UUID) ([]*queries.ReservationListItem, error) {
		return h.reservations.ListVendorCurrent(c.Request.Context(), vendorID)
	})
}

// @Summary Vendor past reservations
// @Description List settled or bygone reservations, newest first
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} queries.ReservationListItem
// @Failure 403 {object} map[string]string
// @Router /vendor/reservations/past [get]
func (h *VendorHandler) ListPastReservations(c *gin.Context) {
	limit := intQuery(c, "limit")
	h.listBoard(c, func(vendorID uuid.UUID) ([]*queries.ReservationListItem, error) {
		return h.reservations.ListVendorPast(c.Request.Context(), vendorID, limit)
	})
}

func (h *VendorHandler) listBoard(c *gin.Context, run func(vendorID uuid.UUID) ([]*queries.ReservationListItem, error)) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := run(*actor.VendorID)
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

// @Summary Vendor summary
// @Description Dashboard counters for the caller's stand
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VendorSummaryResponse
// @Failure 403 {object} map[string]string
// @Router /vendor/summary [get]
func (h *VendorHandler) Summary(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	pending, err := h.reservations.CountPendingForVendor(c.Request.Context(), *actor.VendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.VendorSummaryResponse{PendingCount: pending})
}

// @Summary Approve reservation
// @Description Confirm a pending reservation and issue its check-in code
// @Tags vendor
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/reservations/{id}/approve [post]
func (h *VendorHandler) ApproveReservation(c *gin.Context) {
	h.decide(c, func(reservationID, vendorID uuid.UUID) error {
		return h.decisionCommands.Approve(c.Request.Context(), reservationID, vendorID)
	})
}

// @Summary Reject reservation
// @Description Reject a pending reservation with an optional reason
// @Tags vendor
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DecisionRequest false "Rejection reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/reservations/{id}/reject [post]
func (h *VendorHandler) RejectReservation(c *gin.Context) {
	reason := bindReason(c)
	h.decide(c, func(reservationID, vendorID uuid.UUID) error {
		return h.decisionCommands.Reject(c.Request.Context(), reservationID, vendorID, reason)
	})
}

// @Summary Cancel reservation as vendor
// @Description Cancel a confirmed reservation on the stand's side
// @Tags vendor
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DecisionRequest false "Cancellation reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/reservations/{id}/cancel [post]
func (h *VendorHandler) CancelReservation(c *gin.Context) {
	reason := bindReason(c)
	h.decide(c, func(reservationID, vendorID uuid.UUID) error {
		return h.decisionCommands.Cancel(c.Request.Context(), reservationID, vendorID, reason)
	})
}

// @Summary Mark no-show
// @Description Mark a confirmed reservation whose grace period expired as a no-show
// @Tags vendor
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/reservations/{id}/no-show [post]
func (h *VendorHandler) MarkNoShow(c *gin.Context) {
	h.decide(c, func(reservationID, vendorID uuid.UUID) error {
		return h.decisionCommands.MarkNoShow(c.Request.Context(), reservationID, vendorID)
	})
}

func (h *VendorHandler) decide(c *gin.Context, run func(reservationID, vendorID uuid.UUID) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := run(reservationID, *actor.VendorID); err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound), errors.Is(err, commands.ErrNotVendorReservation):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, reservation.ErrDecisionTooEarly):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Decisions open at the start of the arrival day",
			})
		case errors.Is(err, commands.ErrDecisionRejected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation is not in a state that allows this action",
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

func bindReason(c *gin.Context) *string {
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil
	}
	return req.GetReason()
}

// @Summary List own items
// @Description List the caller's stand items including inactive ones
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ItemView
// @Failure 403 {object} map[string]string
// @Router /vendor/items [get]
func (h *VendorHandler) ListItems(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.catalog.ListItems(c.Request.Context(), *actor.VendorID, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create item
// @Description Add an item to the caller's stand
// @Tags vendor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/items [post]
func (h *VendorHandler) CreateItem(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.itemCommands.CreateItem(c.Request.Context(), *actor.VendorID, req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item failed validation",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update item
// @Description Apply a partial update to an item, including stock resizing
// @Tags vendor
// @Accept json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/items/{id} [patch]
func (h *VendorHandler) UpdateItem(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.itemCommands.UpdateItem(c.Request.Context(), *actor.VendorID, itemID, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound), errors.Is(err, commands.ErrNotVendorItem):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errors.Is(err, vendor.ErrInvalidStockTotal), errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Item update failed validation",
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

// @Summary Delete item
// @Description Delete an item that was never reserved
// @Tags vendor
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vendor/items/{id} [delete]
func (h *VendorHandler) DeleteItem(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	if err := h.itemCommands.DeleteItem(c.Request.Context(), *actor.VendorID, itemID); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound), errors.Is(err, commands.ErrNotVendorItem):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errors.Is(err, commands.ErrItemInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item has reservations; deactivate it instead",
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

// @Summary Upload stand photo
// @Description Upload the stand's storefront photo
// @Tags vendor
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo"
// @Success 200 {object} resdto.URLResponse
// @Failure 400 {object} map[string]string
// @Router /vendor/photo [post]
func (h *VendorHandler) UploadPhoto(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Photo file is required",
		})
		return
	}
	defer file.Close()

	url, err := h.profileCommands.UploadVendorPhoto(c.Request.Context(), *actor.VendorID, header.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.URLResponse{URL: url})
}
