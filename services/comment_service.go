package services

import (
	"errors"
	"strings"

	"momslove/models"
	"momslove/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	Create(actor Actor, articleID uint, req models.CreateCommentRequest) (*models.Comment, error)
	ListByArticle(articleID uint, includeHidden bool) ([]models.Comment, error)
	Update(actor Actor, id uint, req models.UpdateCommentRequest) (*models.Comment, error)
	Hide(actor Actor, id uint) (*models.Comment, error)
	Delete(actor Actor, id uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

func (s *commentService) Create(actor Actor, articleID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if !actor.Authenticated() {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, models.ErrorValidation{Message: "comment content is required"}
	}

	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Content:   content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListByArticle(articleID uint, includeHidden bool) ([]models.Comment, error) {
	return s.commentRepo.ListByArticle(articleID, includeHidden)
}

func (s *commentService) Update(actor Actor, id uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.getOwned(actor, id)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, models.ErrorValidation{Message: "comment content is required"}
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) Hide(actor Actor, id uint) (*models.Comment, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "comment not found"}
		}
		return nil, err
	}

	comment.Hidden = true
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) Delete(actor Actor, id uint) error {
	if _, err := s.getOwned(actor, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(id)
}

// getOwned fetches the comment and checks the caller is its owner or an admin.
func (s *commentService) getOwned(actor Actor, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "comment not found"}
		}
		return nil, err
	}

	if comment.UserID != actor.ID && !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "not your comment"}
	}

	return comment, nil
}
