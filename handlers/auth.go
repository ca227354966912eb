package handlers

import (
	"errors"
	"net/http"

	"sanyukt/services/auth"
	"sanyukt/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the identity-provider login endpoint.
type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleLoginHandler exchanges a verified Firebase ID token for an app token,
// creating the member record on first login.
func (h *AuthHandler) GoogleLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "idToken is required")
		return
	}

	resp, err := h.Svc.GoogleLogin(req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid identity token", "")
			return
		}
		logger.Error("Google login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign in", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": resp.Token,
		"user":  resp.User,
	})
}
