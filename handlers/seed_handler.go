package handlers

import (
	"net/http"

	"momslove/helper"
	"momslove/services"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seedService services.SeedService
	Helper      *helper.HTTPHelper
}

func NewSeedHandler(seedService services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService, Helper: helper.NewHTTPHelper()}
}

// Migrate loads the starter dataset, attributed to the calling admin.
// The route sits behind the admin middleware.
func (h *SeedHandler) Migrate(c *gin.Context) {
	actor := actorFromContext(c)

	report, err := h.seedService.MigrateAllData(actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if report.Skipped {
		c.JSON(http.StatusOK, gin.H{"message": "Data already migrated", "report": report})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Migration complete", "report": report})
}
