package api

// AdminLoginRequest is the admin console login payload.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the issued access token.
type AdminLoginResponse struct {
	Token string `json:"token"`
}
