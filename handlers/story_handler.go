package handlers

import (
	"net/http"

	"momslove/helper"
	"momslove/models"
	"momslove/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type StoryHandler struct {
	storyService services.StoryService
	Helper       *helper.HTTPHelper
	log          zerolog.Logger
}

func NewStoryHandler(storyService services.StoryService, log zerolog.Logger) *StoryHandler {
	return &StoryHandler{storyService: storyService, Helper: helper.NewHTTPHelper(), log: log}
}

// respondError writes the error as an {error: message} body. Persistence
// failures are logged with context and surfaced as a bare 500.
func (h *StoryHandler) respondError(c *gin.Context, err error) {
	status := h.Helper.GetStatusCode(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("story request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.storyService.List(c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (h *StoryHandler) SubmitStory(c *gin.Context) {
	var req models.SubmitStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := h.storyService.Submit(actorFromContext(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Story submitted successfully",
		"storyId": story.ID,
	})
}

// GetStory returns a single story to its owner or an admin.
func (h *StoryHandler) GetStory(c *gin.Context) {
	story, err := h.storyService.GetByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	if story.UserID != actor.ID && !actor.IsAdmin() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": story})
}

func (h *StoryHandler) ApproveStory(c *gin.Context) {
	if _, err := h.storyService.Approve(actorFromContext(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story approved"})
}

func (h *StoryHandler) RejectStory(c *gin.Context) {
	var req models.RejectStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.storyService.Reject(actorFromContext(c), c.Param("id"), req.Reason); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story rejected"})
}

// ModerateStory applies either decision through the PATCH surface used by
// the moderation panel.
func (h *StoryHandler) ModerateStory(c *gin.Context) {
	var req models.ModerateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.storyService.Moderate(actorFromContext(c), c.Param("id"), models.StoryStatus(req.Status), req.RejectionReason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// The moderation panel must never render a cached decision.
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, gin.H{"message": "Story status updated"})
}

func (h *StoryHandler) ConvertStory(c *gin.Context) {
	var req models.ConvertStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publish := req.Status == string(models.StatusPublished)
	article, err := h.storyService.ConvertToArticle(actorFromContext(c), c.Param("id"), req.CategoryID, publish)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Story converted to article",
		"articleId": article.ID,
	})
}
