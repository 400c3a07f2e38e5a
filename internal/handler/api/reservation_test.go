//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/handler/api"
	"beach-reserve/internal/pkg/errs"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockUsers    *queriesmock.MockUserQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
	loc          *time.Location
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(s.T(), err)
	s.loc = loc

	policy, err := reservation.NewPolicy(reservation.PolicyParams{
		OpenHour:     7,
		CloseHour:    17,
		MaxDayOffset: 1,
		MinimumLead:  10 * time.Minute,
		CancelCutoff: 10 * time.Minute,
		NoShowGrace:  20 * time.Minute,
		Location:     loc,
	})
	require.NoError(s.T(), err)

	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.mockUsers, policy)
	s.userID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}

	s.router.POST("/reservations", authed, s.handler.CreateReservation)
	s.router.GET("/reservations/current", authed, s.handler.ListCurrent)
	s.router.GET("/reservations/history", authed, s.handler.ListHistory)
	s.router.GET("/reservations/:id", authed, s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", authed, s.handler.CancelReservation)
	s.router.POST("/reservations/:id/check-in", authed, s.handler.CheckIn)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) actorView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       s.userID,
		Email:    "alice@example.com",
		Role:     "customer",
		IsActive: true,
	}
}

func validCreateBody(vendorID, itemID uuid.UUID) map[string]any {
	return map[string]any{
		"vendor_id": vendorID.String(),
		"items":     []map[string]any{{"item_id": itemID.String(), "quantity": 2}},
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	vendorID := uuid.New()
	itemID := uuid.New()
	headers := func() map[string]string {
		return map[string]string{"Idempotency-Key": uuid.New().String()}
	}

	s.Run("returns 201 for a new reservation", func() {
		view := &queries.ReservationView{ID: uuid.New(), VendorID: vendorID, Status: "PENDING"}
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: view}, nil)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), headers(), "")

		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("returns 200 when the idempotency key replays", func() {
		view := &queries.ReservationView{ID: uuid.New(), VendorID: vendorID, Status: "PENDING"}
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), headers(), "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("parses a dated arrival in the beach's timezone", func() {
		var captured commands.CreateReservationCommand
		view := &queries.ReservationView{ID: uuid.New(), VendorID: vendorID, Status: "PENDING"}
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.CreateReservationCommand, _, _ uuid.UUID) (*commands.CreateReservationResult, error) {
				captured = cmd
				return &commands.CreateReservationResult{Reservation: view}, nil
			})

		body := validCreateBody(vendorID, itemID)
		body["arrival"] = map[string]any{"day": "2024-01-10", "time": "14:00"}

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			body, headers(), "")

		s.Equal(http.StatusCreated, w.Code)
		require.NotNil(s.T(), captured.Arrival)
		// Midnight local, not midnight UTC: a UTC-parsed day lands on the
		// previous local day and fails the day-offset check.
		s.True(captured.Arrival.Day.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, s.loc)))
		s.Equal(14, captured.Arrival.Hour)
		s.Equal(0, captured.Arrival.Minute)
	})

	s.Run("returns 400 without an idempotency key", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("returns 404 for an unknown vendor", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrVendorNotFound)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), headers(), "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("returns 409 when stock runs out", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrOutOfStock)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), headers(), "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("returns 422 with a detail for a rejected arrival", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(reservation.ErrBeforeOpening, commands.ErrInvalidArrival))

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), headers(), "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		s.Contains(w.Body.String(), "before_opening")
	})

	s.Run("returns 409 for a reused key with different parameters", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrDuplicateRequest)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			validCreateBody(vendorID, itemID), headers(), "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("returns 400 for an empty items list", func() {
		body := map[string]any{"vendor_id": vendorID.String(), "items": []map[string]any{}}

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			body, headers(), "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("returns 400 for an unparseable arrival", func() {
		body := validCreateBody(vendorID, itemID)
		body["arrival"] = map[string]any{"day": "tomorrow", "time": "noon"}

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/reservations",
			body, headers(), "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	reservationID := uuid.New()

	s.Run("returns the view for the owner", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(s.actorView(), nil)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any(), reservationID).
			Return(&queries.ReservationView{ID: reservationID, Status: "CONFIRMED"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+reservationID.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), reservationID.String())
	})

	s.Run("hides access denials behind 404", func() {
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(s.actorView(), nil)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any(), reservationID).
			Return(nil, queries.ErrReservationAccess)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+reservationID.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("returns 400 for a malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestListHistory() {
	s.Run("passes a decodable cursor through", func() {
		cursor := queries.EncodeAfterCursor(time.Now(), uuid.New())
		s.mockQueries.EXPECT().
			ListHistoryByUser(gomock.Any(), s.userID, &queries.Cursor{After: cursor}, gomock.Any()).
			Return([]*queries.ReservationListItem{}, nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history?after="+cursor, nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects a garbage cursor before hitting the query layer", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history?after=zzz", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()

	s.Run("returns 204 on success", func() {
		s.mockCommands.EXPECT().CancelByUser(gomock.Any(), reservationID, s.userID).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+reservationID.String(), nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("returns 404 when the reservation belongs to someone else", func() {
		s.mockCommands.EXPECT().
			CancelByUser(gomock.Any(), reservationID, s.userID).
			Return(commands.ErrReservationNotOwned)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+reservationID.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("returns 422 when the cutoff has passed", func() {
		s.mockCommands.EXPECT().
			CancelByUser(gomock.Any(), reservationID, s.userID).
			Return(reservation.ErrCancelTooClose)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+reservationID.String(), nil, "")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	reservationID := uuid.New()

	s.Run("returns 204 for a matching code", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), reservationID, "4821").Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/check-in", map[string]string{"code": "4821"}, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("maps a wrong code and a wrong status to the same 422", func() {
		for _, err := range []error{reservation.ErrPinMismatch, reservation.ErrCheckInNotAllowed} {
			s.mockCommands.EXPECT().CheckIn(gomock.Any(), reservationID, "0000").Return(err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
				"/reservations/"+reservationID.String()+"/check-in", map[string]string{"code": "0000"}, "")

			s.Equal(http.StatusUnprocessableEntity, w.Code)
		}
	})

	s.Run("rejects a code that is not four digits", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+reservationID.String()+"/check-in", map[string]string{"code": "12"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
