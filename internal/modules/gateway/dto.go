package gateway

type MessageResponse struct {
	Message string `json:"message"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
