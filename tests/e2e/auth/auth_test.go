//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/handler/dto/request"
	"beach-reserve/internal/handler/dto/response"
	"beach-reserve/internal/usecase/queries"
	"beach-reserve/tests/common/authtest"
	"beach-reserve/tests/common/dbtest"
	"beach-reserve/tests/common/httptest"
	"beach-reserve/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("returns tokens and account for valid credentials", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "alice@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var body response.LoginResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &body)
		require.NotEmpty(s.T(), body.AccessToken)
		require.NotEmpty(s.T(), body.RefreshToken)
		require.NotNil(s.T(), body.User)
		require.Equal(s.T(), "alice@example.com", body.User.Email)
		require.Equal(s.T(), "customer", body.User.Role)

		require.NotNil(s.T(), httptest.ExtractCookie(w, "access_token"))
		require.NotNil(s.T(), httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("rejects a wrong password", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects an unknown email", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects an inactive account", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "gone@example.com", "customer")
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE users SET is_active = false WHERE email = 'gone@example.com'")
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "gone@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestRegister() {
	s.Run("creates an account that can log in", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "bob@example.com", Password: "password123", DisplayName: "Bob"}, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var body response.RegisterResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &body)
		require.NotEmpty(s.T(), body.ID)

		token := authtest.LoginUser(s.T(), s.Router, "bob@example.com", "password123")
		require.NotEmpty(s.T(), token)
	})

	s.Run("refuses a taken email", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "bob@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "bob@example.com", Password: "password123", DisplayName: "Bob"}, "")
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("refuses a short password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "carol@example.com", Password: "short", DisplayName: "Carol"}, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("returns the authenticated account", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var account queries.AuthorizedUserView
		httptest.DecodeResponseBody(s.T(), w.Body, &account)
		require.Equal(s.T(), "alice@example.com", account.Email)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("rejects an expired access token", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), userID, user.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, expired)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("rejects a refresh token used as access token", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "alice@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var body response.LoginResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &body)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, body.RefreshToken)
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("rotates tokens from the refresh cookie", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")

		login := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "alice@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, login.Code, login.Body.String())

		cookies := httptest.ExtractCookies(login)
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, "/api/auth/refresh", nil, cookies, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var body response.RefreshResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &body)
		require.NotEmpty(s.T(), body.AccessToken)
		require.NotEmpty(s.T(), body.RefreshToken)
	})

	s.Run("fails without a refresh cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/refresh", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("clears the token cookies", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")

		login := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "alice@example.com", Password: "password123"}, "")
		require.Equal(s.T(), http.StatusOK, login.Code, login.Body.String())

		cookies := httptest.ExtractCookies(login)
		authtest.LogoutUser(s.T(), s.Router, cookies)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), cleared)
		require.Empty(s.T(), cleared.Value)
	})
}
