//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/domain/vendor"
	"beach-reserve/internal/handler/api"
	"beach-reserve/internal/usecase/commands"
	"beach-reserve/internal/usecase/queries"
	"beach-reserve/tests/common/httptest"
	commandsmock "beach-reserve/tests/mock/commands"
	queriesmock "beach-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VendorHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockDecisions *commandsmock.MockDecisionCommands
	mockItems     *commandsmock.MockItemCommands
	mockProfile   *commandsmock.MockProfileCommands
	mockQueries   *queriesmock.MockReservationQueries
	mockCatalog   *queriesmock.MockCatalogQueries
	handler       *api.VendorHandler
	vendorID      uuid.UUID
}

func (s *VendorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDecisions = commandsmock.NewMockDecisionCommands(s.mockCtrl)
	s.mockItems = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.mockProfile = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.vendorID = uuid.New()

	policy, err := reservation.NewPolicy(reservation.PolicyParams{
		OpenHour:     7,
		CloseHour:    17,
		MaxDayOffset: 1,
		MinimumLead:  10 * time.Minute,
		CancelCutoff: 10 * time.Minute,
		NoShowGrace:  20 * time.Minute,
	})
	require.NoError(s.T(), err)

	s.handler = api.NewVendorHandler(s.mockDecisions, s.mockItems, s.mockProfile, s.mockQueries, s.mockCatalog, policy)

	// Stand-in for RequireVendorActor.
	asVendor := func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("actor", queries.AuthorizedUserView{
			ID:       uuid.New(),
			Role:     "vendor",
			VendorID: &s.vendorID,
			IsActive: true,
		})
	}

	s.router.GET("/vendor/reservations", asVendor, s.handler.ListDayReservations)
	s.router.GET("/vendor/reservations/current", asVendor, s.handler.ListCurrentReservations)
	s.router.GET("/vendor/reservations/past", asVendor, s.handler.ListPastReservations)
	s.router.GET("/vendor/summary", asVendor, s.handler.Summary)
	s.router.POST("/vendor/reservations/:id/approve", asVendor, s.handler.ApproveReservation)
	s.router.POST("/vendor/reservations/:id/reject", asVendor, s.handler.RejectReservation)
	s.router.POST("/vendor/reservations/:id/no-show", asVendor, s.handler.MarkNoShow)
	s.router.POST("/vendor/items", asVendor, s.handler.CreateItem)
	s.router.PATCH("/vendor/items/:id", asVendor, s.handler.UpdateItem)
	s.router.DELETE("/vendor/items/:id", asVendor, s.handler.DeleteItem)
}

func (s *VendorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVendorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}

func (s *VendorHandlerTestSuite) TestApproveReservation() {
	reservationID := uuid.New()

	s.Run("returns 204 on approval", func() {
		s.mockDecisions.EXPECT().Approve(gomock.Any(), reservationID, s.vendorID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/vendor/reservations/"+reservationID.String()+"/approve", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("hides other stands' reservations behind 404", func() {
		s.mockDecisions.EXPECT().Approve(gomock.Any(), reservationID, s.vendorID).
			Return(commands.ErrNotVendorReservation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/vendor/reservations/"+reservationID.String()+"/approve", nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("returns 422 before the arrival day opens", func() {
		s.mockDecisions.EXPECT().Approve(gomock.Any(), reservationID, s.vendorID).
			Return(reservation.ErrDecisionTooEarly)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/vendor/reservations/"+reservationID.String()+"/approve", nil, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestRejectReservation() {
	reservationID := uuid.New()

	s.Run("passes the trimmed reason through", func() {
		reason := "Barraca fechada"
		s.mockDecisions.EXPECT().Reject(gomock.Any(), reservationID, s.vendorID, &reason).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/vendor/reservations/"+reservationID.String()+"/reject",
			map[string]string{"reason": "  Barraca fechada  "}, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("accepts an empty body", func() {
		s.mockDecisions.EXPECT().Reject(gomock.Any(), reservationID, s.vendorID, nil).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/vendor/reservations/"+reservationID.String()+"/reject", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestMarkNoShow() {
	reservationID := uuid.New()

	s.Run("returns 422 while the grace period is still running", func() {
		s.mockDecisions.EXPECT().MarkNoShow(gomock.Any(), reservationID, s.vendorID).
			Return(commands.ErrDecisionRejected)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/vendor/reservations/"+reservationID.String()+"/no-show", nil, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestListDayReservations() {
	s.Run("defaults to today", func() {
		s.mockQueries.EXPECT().
			ListForVendorDay(gomock.Any(), s.vendorID, gomock.Any()).
			Return([]*queries.ReservationListItem{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/reservations", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects an unparseable day", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/reservations?day=someday", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestVendorBoards() {
	s.Run("serves an empty current board as a JSON array", func() {
		s.mockQueries.EXPECT().
			ListVendorCurrent(gomock.Any(), s.vendorID).
			Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/reservations/current", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Equal("[]", w.Body.String())
	})

	s.Run("passes the page size to the past board", func() {
		s.mockQueries.EXPECT().
			ListVendorPast(gomock.Any(), s.vendorID, 5).
			Return([]*queries.ReservationListItem{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/reservations/past?limit=5", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestSummary() {
	s.Run("returns the pending counter", func() {
		s.mockQueries.EXPECT().
			CountPendingForVendor(gomock.Any(), s.vendorID).
			Return(int64(3), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/summary", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"pending_count": 3}`, w.Body.String())
	})
}

func (s *VendorHandlerTestSuite) TestCreateItem() {
	s.Run("returns the new item id", func() {
		itemID := uuid.New()
		s.mockItems.EXPECT().CreateItem(gomock.Any(), s.vendorID, gomock.Any()).Return(itemID, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/items",
			map[string]any{"name": "Caiaque", "price_cents": 8000, "track_stock": true, "stock_total": 3}, "")

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), itemID.String())
	})

	s.Run("returns 422 for a domain rejection", func() {
		s.mockItems.EXPECT().CreateItem(gomock.Any(), s.vendorID, gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vendor/items",
			map[string]any{"name": "Caiaque", "price_cents": 8000}, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestUpdateItem() {
	itemID := uuid.New()

	s.Run("returns 404 for another stand's item", func() {
		s.mockItems.EXPECT().UpdateItem(gomock.Any(), s.vendorID, itemID, gomock.Any()).
			Return(commands.ErrNotVendorItem)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vendor/items/"+itemID.String(),
			map[string]any{"price_cents": 9000}, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("returns 422 when stock cannot shrink below reservations", func() {
		s.mockItems.EXPECT().UpdateItem(gomock.Any(), s.vendorID, itemID, gomock.Any()).
			Return(vendor.ErrInvalidStockTotal)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/vendor/items/"+itemID.String(),
			map[string]any{"stock_total": 1}, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *VendorHandlerTestSuite) TestDeleteItem() {
	itemID := uuid.New()

	s.Run("returns 204 when the item is gone", func() {
		s.mockItems.EXPECT().DeleteItem(gomock.Any(), s.vendorID, itemID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vendor/items/"+itemID.String(), nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("returns 409 when reservations reference the item", func() {
		s.mockItems.EXPECT().DeleteItem(gomock.Any(), s.vendorID, itemID).
			Return(commands.ErrItemInUse)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vendor/items/"+itemID.String(), nil, "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("returns 404 for another stand's item", func() {
		s.mockItems.EXPECT().DeleteItem(gomock.Any(), s.vendorID, itemID).
			Return(commands.ErrNotVendorItem)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vendor/items/"+itemID.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}
