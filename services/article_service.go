package services

import (
	"errors"
	"fmt"

	"momslove/models"
	"momslove/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	Create(actor Actor, req models.CreateArticleRequest) (*models.Article, error)
	GetBySlug(slug string, isPublic bool) (*models.Article, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	GetRecent(limit int) ([]models.Article, error)
	GetByCategory(categoryID uint) ([]models.Article, error)
	GetByTag(tagID uint) ([]models.Article, error)
	Update(actor Actor, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(actor Actor, id uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	clock        Clock
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository, clock Clock) ArticleService {
	if clock == nil {
		clock = systemClock{}
	}
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		clock:        clock,
	}
}

func (s *articleService) Create(actor Actor, req models.CreateArticleRequest) (*models.Article, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(s.articleRepo, slugify(req.Title))
	if err != nil {
		return nil, err
	}

	summary := req.Excerpt
	if summary == "" {
		summary = excerpt(req.Content)
	}
	cover := req.CoverImage
	if cover == "" {
		cover = defaultCoverImage
	}

	article := &models.Article{
		Title:       req.Title,
		Slug:        slug,
		Content:     req.Content,
		Excerpt:     summary,
		CoverImage:  cover,
		UserID:      actor.ID,
		AuthorName:  actor.Name,
		Status:      models.StatusDraft,
		ReadingTime: readingTime(req.Content),
		CategoryID:  req.CategoryID,
		Tags:        tags,
	}

	if req.Publish {
		now := s.clock.Now()
		article.Status = models.StatusPublished
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetBySlug(slug string, isPublic bool) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	if isPublic && article.Status != models.StatusPublished {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}

	return article, nil
}

func (s *articleService) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, isPublic)
}

func (s *articleService) GetRecent(limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.articleRepo.GetRecent(limit)
}

func (s *articleService) GetByCategory(categoryID uint) ([]models.Article, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}
	return s.articleRepo.GetByCategory(categoryID)
}

func (s *articleService) GetByTag(tagID uint) ([]models.Article, error) {
	if _, err := s.tagRepo.GetByID(tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "tag not found"}
		}
		return nil, err
	}
	return s.articleRepo.GetByTag(tagID)
}

// Update applies only the fields present in the request.
func (s *articleService) Update(actor Actor, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Title != nil {
		fields["title"] = *req.Title
		slug, err := uniqueSlug(s.articleRepo, slugify(*req.Title))
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Content != nil {
		fields["content"] = *req.Content
		fields["reading_time"] = readingTime(*req.Content)
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.CoverImage != nil {
		fields["cover_image"] = *req.CoverImage
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Status != nil {
		switch models.ArticleStatus(*req.Status) {
		case models.StatusDraft:
			fields["status"] = models.StatusDraft
			fields["published_at"] = nil
		case models.StatusPublished:
			fields["status"] = models.StatusPublished
			if article.PublishedAt == nil {
				fields["published_at"] = s.clock.Now()
			}
		default:
			return nil, models.ErrorValidation{Message: "invalid article status: " + *req.Status}
		}
	}

	if len(fields) > 0 {
		if err := s.articleRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	if req.Tags != nil {
		tags, err := s.resolveTags(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceTags(article, tags); err != nil {
			return nil, err
		}
	}

	return s.articleRepo.GetByID(id)
}

func (s *articleService) Delete(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return models.ErrorUnauthorized{Message: "admin access required"}
	}
	if _, err := s.articleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "article not found"}
		}
		return err
	}
	return s.articleRepo.Delete(id)
}

// resolveTags looks up each name and creates the ones that do not exist yet.
func (s *articleService) resolveTags(names []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range names {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}
	return tags, nil
}

// uniqueSlug appends a numeric suffix until the slug is free.
func uniqueSlug(repo repositories.ArticleRepository, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		_, err := repo.GetBySlug(slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
