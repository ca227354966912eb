package handlers

import (
	"errors"
	"net/http"
	"strings"

	"sanyukt/models"
	"sanyukt/services/audience"
	"sanyukt/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AudienceHandler serves the member-directory endpoints.
type AudienceHandler struct {
	Svc audience.AudienceService
}

func NewAudienceHandler(svc audience.AudienceService) *AudienceHandler {
	return &AudienceHandler{Svc: svc}
}

// ListCategoriesHandler returns the distinct directory categories for an
// audience type.
func (h *AudienceHandler) ListCategoriesHandler(c *gin.Context) {
	logger := getLogger(c)

	audienceType, ok := models.ParseAudienceType(strings.ToLower(c.Query("type")))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, `Query param "type" must be job, business, or student`, "")
		return
	}

	categories, err := h.Svc.ListCategories(audienceType)
	if err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list categories", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":       audienceType,
		"categories": categories,
	})
}

// ListUsersHandler returns the members of an audience, optionally narrowed
// to one category.
func (h *AudienceHandler) ListUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	audienceType, ok := models.ParseAudienceType(strings.ToLower(c.Query("type")))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, `Query param "type" must be job, business, or student`, "")
		return
	}
	category := strings.TrimSpace(c.Query("category"))

	users, err := h.Svc.ListUsersByCategory(audienceType, category)
	if err != nil {
		logger.Error("Failed to list audience members", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":     audienceType,
		"category": category,
		"users":    users,
	})
}

// LegacyUsersHandler serves the old path-segment category ids. Unknown ids
// return an empty list, never an error.
func (h *AudienceHandler) LegacyUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	categoryID := c.Param("categoryId")
	audienceType, users, err := h.Svc.ListUsersByLegacyCategory(categoryID)
	if err != nil {
		logger.Error("Failed to list legacy category members", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", "")
		return
	}

	typeValue := string(audienceType)
	if typeValue == "" {
		typeValue = strings.ToLower(categoryID)
	}
	c.JSON(http.StatusOK, gin.H{
		"type":     typeValue,
		"category": "",
		"users":    users,
	})
}

// UserDetailHandler returns one member's profile view, with contact and
// location fields gated on the viewer's completion score.
func (h *AudienceHandler) UserDetailHandler(c *gin.Context) {
	logger := getLogger(c)

	viewerID, _ := c.Get("userID")
	targetID := strings.TrimSpace(c.Param("userId"))
	if targetID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id", "")
		return
	}

	viewer, _ := viewerID.(string)
	view, canSee, err := h.Svc.GetUserDetail(viewer, targetID)
	if err != nil {
		switch {
		case errors.Is(err, audience.ErrUnauthorized):
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		case errors.Is(err, audience.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
		default:
			logger.Error("Failed to get user detail", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve user", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            view,
		"canSeeSensitive": canSee,
	})
}

// StatsHandler returns the directory aggregates.
func (h *AudienceHandler) StatsHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Svc.GetStats()
	if err != nil {
		logger.Error("Failed to get stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve stats", "")
		return
	}

	c.JSON(http.StatusOK, stats)
}
