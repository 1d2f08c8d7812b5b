package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kiwistay/hotel-booking-backend/internal/auth"
)

// AdminHandler serves the admin console's login and session-probe endpoints.
// There is a single configured admin account; no user storage is involved.
type AdminHandler struct {
	username     string
	passwordHash string
	verifier     auth.PasswordVerifier
	jwtManager   *auth.JWTManager
}

func NewAdminHandler(username, passwordHash string, verifier auth.PasswordVerifier, jwtManager *auth.JWTManager) *AdminHandler {
	return &AdminHandler{
		username:     username,
		passwordHash: passwordHash,
		verifier:     verifier,
		jwtManager:   jwtManager,
	}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var body AdminLoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	// Constant-time username compare; bcrypt handles the password side.
	usernameOK := subtle.ConstantTimeCompare([]byte(body.Username), []byte(h.username)) == 1
	passwordErr := h.verifier.Compare(h.passwordHash, body.Password)

	if !usernameOK || passwordErr != nil {
		log.Warn().Str("username", body.Username).Msg("failed admin login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.jwtManager.GenerateAdminToken(h.username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{Token: token})
}

// Session handles GET /admin/session. Reaching it through the auth
// middleware means the token is still valid.
func (h *AdminHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": auth.GetAdminUsername(c)})
}
