package handlers

import (
	"errors"
	"net/http"

	"sanyukt/services/profile"
	"sanyukt/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the member's own profile endpoints.
type UserHandler struct {
	Svc profile.ProfileService
}

func NewUserHandler(svc profile.ProfileService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// GetProfileHandler returns the authenticated member's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	// AuthMiddleware has set "userID" in context.
	userID, exists := c.Get("userID")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	user, err := h.Svc.GetProfile(userID.(string))
	if err != nil {
		if errors.Is(err, profile.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		logger.Error("Failed to get profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve profile", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileHandler applies a partial profile update for the
// authenticated member. A validation failure names the offending field in
// the error details.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	user, err := h.Svc.UpdateProfile(userID.(string), update)
	if err != nil {
		if ve, ok := profile.AsValidationError(err); ok {
			utils.JSONError(c, http.StatusBadRequest, ve.Message, ve.Field)
			return
		}
		if errors.Is(err, profile.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		logger.Error("Failed to update profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ProfileOptionsHandler returns the dropdown choices for the profile form.
func (h *UserHandler) ProfileOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": h.Svc.GetOptions()})
}
