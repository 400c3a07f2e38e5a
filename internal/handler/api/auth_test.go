//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/handler/api"
	resdto "beach-reserve/internal/handler/dto/response"
	"beach-reserve/internal/pkg/config"
	"beach-reserve/internal/pkg/jwt"
	"beach-reserve/internal/usecase/commands"
	"beach-reserve/internal/usecase/queries"
	"beach-reserve/tests/common/builder"
	"beach-reserve/tests/common/httptest"
	commandsmock "beach-reserve/tests/mock/commands"
	queriesmock "beach-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, &jwt.Service{}, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	userID := uuid.New()
	loginResult := &commands.LoginResult{
		UserID:    userID,
		TokenPair: &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}
	account := &queries.AuthorizedUserView{ID: userID, Email: "alice@example.com", Role: "customer", IsActive: true}

	s.Run("returns tokens and sets cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "alice@example.com", "password123").Return(loginResult, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), userID).Return(account, nil)

		body := builder.NewAuthBuilder()
		body.Email = "alice@example.com"
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body.BuildDTO(), "")

		s.Equal(http.StatusOK, w.Code)

		var body resdto.LoginResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &body)
		s.Equal("access", body.AccessToken)
		s.Equal("refresh", body.RefreshToken)
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
		s.NotNil(httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("returns 401 for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "alice@example.com", "nope").
			Return(nil, commands.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]string{"email": "alice@example.com", "password": "nope"}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("returns 403 for a deactivated account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "alice@example.com", "password123").
			Return(nil, commands.ErrUserInactive)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]string{"email": "alice@example.com", "password": "password123"}, "")

		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("returns 400 for a malformed email", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]string{"email": "not-an-email", "password": "password123"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("returns the new account id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Register(gomock.Any(), commands.RegisterCommand{Email: "bob@example.com", Password: "password123", DisplayName: "Bob"}).
			Return(id, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]string{"email": "bob@example.com", "password": "password123", "display_name": "Bob"}, "")

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), id.String())
	})

	s.Run("returns 409 for a taken email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]string{"email": "bob@example.com", "password": "password123", "display_name": "Bob"}, "")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("returns 400 for a weak password", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, user.ErrPasswordTooWeak)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]string{"email": "bob@example.com", "password": "longenough", "display_name": "Bob"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the current account", func() {
		account := &queries.AuthorizedUserView{ID: uuid.New(), Email: "alice@example.com", Role: "customer", IsActive: true}
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(account, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "alice@example.com")
	})

	s.Run("returns 401 without auth context", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("returns 404 when the account vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")

		s.Equal(http.StatusNotFound, w.Code)
	})
}
