package api

import (
	"context"
	"errors"
	"net/http"

	"beach-reserve/internal/domain/user"
	reqdto "beach-reserve/internal/handler/dto/request"
	resdto "beach-reserve/internal/handler/dto/response"
	"beach-reserve/internal/handler/middleware"
	"beach-reserve/internal/usecase/commands"
	"beach-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileCommands commands.ProfileCommands
	userQueries     queries.UserQueries
}

func NewProfileHandler(profileCommands commands.ProfileCommands, userQueries queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{
		profileCommands: profileCommands,
		userQueries:     userQueries,
	}
}

// @Summary Get profile
// @Description Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UserProfileView
// @Failure 401 {object} map[string]string
// @Router /me [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	profile, err := h.userQueries.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Update profile
// @Description Change the caller's display name
// @Tags profile
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /me [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.profileCommands.UpdateProfile(c.Request.Context(), userID, req.DisplayName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload avatar
// @Description Upload the caller's avatar image
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} resdto.URLResponse
// @Failure 400 {object} map[string]string
// @Router /me/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Avatar file is required",
		})
		return
	}
	defer file.Close()

	url, err := h.profileCommands.UploadAvatar(c.Request.Context(), userID, header.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.URLResponse{URL: url})
}

// @Summary Register push token
// @Description Register an Expo push token for the caller's device
// @Tags profile
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PushTokenRequest true "Push token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /me/push-tokens [post]
func (h *ProfileHandler) RegisterPushToken(c *gin.Context) {
	h.pushToken(c, h.profileCommands.RegisterPushToken)
}

// @Summary Remove push token
// @Description Remove a previously registered push token
// @Tags profile
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PushTokenRequest true "Push token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /me/push-tokens [delete]
func (h *ProfileHandler) RemovePushToken(c *gin.Context) {
	h.pushToken(c, h.profileCommands.RemovePushToken)
}

func (h *ProfileHandler) pushToken(c *gin.Context, run func(ctx context.Context, userID uuid.UUID, token string) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := run(c.Request.Context(), userID, req.Token); err != nil {
		if errors.Is(err, user.ErrEmptyPushToken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Push token cannot be empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
