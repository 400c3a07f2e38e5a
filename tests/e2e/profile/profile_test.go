//go:build e2e

package profile_test

import (
	"net/http"
	"testing"

	"beach-reserve/internal/handler/dto/request"
	"beach-reserve/internal/handler/dto/response"
	"beach-reserve/internal/usecase/queries"
	"beach-reserve/tests/common/authtest"
	"beach-reserve/tests/common/httptest"
	"beach-reserve/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProfileSuite struct {
	e2e.SharedSuite
}

func TestProfileSuite(t *testing.T) {
	suite.Run(t, new(ProfileSuite))
}

func (s *ProfileSuite) TestGetProfile() {
	s.Run("returns the caller's profile", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, token)
		var profile queries.UserProfileView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &profile)
		require.Equal(s.T(), "alice@example.com", profile.Email)
		require.Equal(s.T(), "Test User", profile.DisplayName)
		require.Nil(s.T(), profile.AvatarURL)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *ProfileSuite) TestUpdateProfile() {
	s.Run("changes the display name", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/me",
			request.UpdateProfileRequest{DisplayName: "Maria da Silva"}, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, token)
		var profile queries.UserProfileView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &profile)
		require.Equal(s.T(), "Maria da Silva", profile.DisplayName)
	})

	s.Run("rejects an empty display name", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/me",
			request.UpdateProfileRequest{DisplayName: ""}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ProfileSuite) TestUploadAvatar() {
	s.Run("stores the file and records the URL", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, "/api/me/avatar",
			"avatar", "selfie.png", []byte("not-really-a-png"), token)
		var body response.URLResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		require.Contains(s.T(), body.URL, s.Config.Media.BaseURL)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, token)
		var profile queries.UserProfileView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &profile)
		require.NotNil(s.T(), profile.AvatarURL)
		require.Equal(s.T(), body.URL, *profile.AvatarURL)
	})

	s.Run("requires the avatar form field", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, "/api/me/avatar",
			"photo", "selfie.png", []byte("not-really-a-png"), token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Avatar file is required")
	})
}

func (s *ProfileSuite) TestPushTokens() {
	s.Run("registers and removes a device token", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/me/push-tokens",
			request.PushTokenRequest{Token: "ExponentPushToken[abc123]"}, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		var count int
		require.NoError(s.T(), s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM user_push_tokens WHERE token = $1", "ExponentPushToken[abc123]").Scan(&count))
		require.Equal(s.T(), 1, count)

		// Registering the same token twice is an upsert, not a duplicate.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/me/push-tokens",
			request.PushTokenRequest{Token: "ExponentPushToken[abc123]"}, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())
		require.NoError(s.T(), s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM user_push_tokens WHERE token = $1", "ExponentPushToken[abc123]").Scan(&count))
		require.Equal(s.T(), 1, count)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/me/push-tokens",
			request.PushTokenRequest{Token: "ExponentPushToken[abc123]"}, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())
		require.NoError(s.T(), s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM user_push_tokens WHERE token = $1", "ExponentPushToken[abc123]").Scan(&count))
		require.Equal(s.T(), 0, count)
	})

	s.Run("rejects a blank token", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/me/push-tokens",
			map[string]string{"token": ""}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
