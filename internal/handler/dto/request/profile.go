package request

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type PushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
