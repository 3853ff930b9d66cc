package handlers

import (
	"net/http"
	"strconv"

	"momslove/helper"
	"momslove/models"
	"momslove/services"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceService services.PreferenceService
	Helper            *helper.HTTPHelper
}

func NewPreferenceHandler(preferenceService services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService, Helper: helper.NewHTTPHelper()}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.preferenceService.Get(actorFromContext(c))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.preferenceService.Replace(actorFromContext(c), req.CategoryIDs); err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}

// HomeFeed is the ranked article list for the home page. It works without a
// session; a signed-in user's category preferences rank their feed.
func (h *PreferenceHandler) HomeFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	articles, err := h.preferenceService.HomeFeed(actorFromContext(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
