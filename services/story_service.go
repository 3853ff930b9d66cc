package services

import (
	"errors"
	"strings"
	"time"

	"momslove/models"
	"momslove/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clock allows deterministic timing in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// StoryService manages the submission and moderation lifecycle for
// reader-submitted stories: pending on submit, then approved or rejected by
// an admin. A decided story may be re-moderated; the opposite decision's
// fields are overwritten. Stories are never hard-deleted.
type StoryService interface {
	Submit(actor Actor, req models.SubmitStoryRequest) (*models.Story, error)
	List(status string) ([]models.Story, error)
	GetByID(id string) (*models.Story, error)
	Approve(actor Actor, id string) (*models.Story, error)
	Reject(actor Actor, id, reason string) (*models.Story, error)
	Moderate(actor Actor, id string, status models.StoryStatus, reason string) (*models.Story, error)
	ConvertToArticle(actor Actor, storyID string, categoryID *uint, publish bool) (*models.Article, error)
}

type storyService struct {
	storyRepo   repositories.StoryRepository
	articleRepo repositories.ArticleRepository
	clock       Clock
}

func NewStoryService(storyRepo repositories.StoryRepository, articleRepo repositories.ArticleRepository, clock Clock) StoryService {
	if clock == nil {
		clock = systemClock{}
	}
	return &storyService{
		storyRepo:   storyRepo,
		articleRepo: articleRepo,
		clock:       clock,
	}
}

func (s *storyService) Submit(actor Actor, req models.SubmitStoryRequest) (*models.Story, error) {
	if !actor.Authenticated() {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, models.ErrorValidation{Message: "title and content are required"}
	}

	story := &models.Story{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserEmail:   actor.Email,
		Status:      models.StoryPending,
		SubmittedAt: s.clock.Now(),
	}

	if err := s.storyRepo.Create(story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *storyService) List(status string) ([]models.Story, error) {
	switch models.StoryStatus(status) {
	case "", models.StoryPending, models.StoryApproved, models.StoryRejected:
	default:
		return nil, models.ErrorValidation{Message: "invalid story status: " + status}
	}
	return s.storyRepo.List(models.StoryStatus(status))
}

func (s *storyService) GetByID(id string) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "story not found"}
		}
		return nil, err
	}
	return story, nil
}

func (s *storyService) Approve(actor Actor, id string) (*models.Story, error) {
	return s.Moderate(actor, id, models.StoryApproved, "")
}

func (s *storyService) Reject(actor Actor, id, reason string) (*models.Story, error) {
	return s.Moderate(actor, id, models.StoryRejected, reason)
}

// Moderate applies an approve or reject decision regardless of the story's
// current status, so an admin can flip an earlier decision. Approving clears
// the rejection fields and vice versa.
func (s *storyService) Moderate(actor Actor, id string, status models.StoryStatus, reason string) (*models.Story, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	reason = strings.TrimSpace(reason)
	if status == models.StoryRejected && reason == "" {
		return nil, models.ErrorValidation{Message: "rejection reason is required"}
	}
	if status != models.StoryApproved && status != models.StoryRejected {
		return nil, models.ErrorValidation{Message: "invalid moderation status: " + string(status)}
	}

	story, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	switch status {
	case models.StoryApproved:
		story.Status = models.StoryApproved
		story.ApprovedAt = &now
		story.RejectedAt = nil
		story.RejectionReason = nil
	case models.StoryRejected:
		story.Status = models.StoryRejected
		story.RejectedAt = &now
		story.RejectionReason = &reason
		story.ApprovedAt = nil
	}

	if err := s.storyRepo.Update(story); err != nil {
		return nil, err
	}

	return story, nil
}

// ConvertToArticle publishes an approved story as a fresh article. The story
// itself is left untouched.
func (s *storyService) ConvertToArticle(actor Actor, storyID string, categoryID *uint, publish bool) (*models.Article, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	story, err := s.GetByID(storyID)
	if err != nil {
		return nil, err
	}

	if story.Status != models.StoryApproved {
		return nil, models.ErrorValidation{Message: "only approved stories can be converted"}
	}

	slug, err := uniqueSlug(s.articleRepo, slugify(story.Title))
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       story.Title,
		Slug:        slug,
		Content:     story.Content,
		Excerpt:     excerpt(story.Content),
		CoverImage:  defaultCoverImage,
		UserID:      story.UserID,
		AuthorName:  story.UserName,
		Status:      models.StatusDraft,
		ReadingTime: readingTime(story.Content),
		CategoryID:  categoryID,
	}

	if publish {
		now := s.clock.Now()
		article.Status = models.StatusPublished
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return article, nil
}
