package services

import (
	"errors"

	"momslove/models"
	"momslove/repositories"

	"gorm.io/gorm"
)

type TaxonomyService interface {
	CreateCategory(actor Actor, req models.CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	UpdateCategory(actor Actor, id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(actor Actor, id uint) error
	CreateTag(actor Actor, req models.CreateTagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
}

type taxonomyService struct {
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	articleRepo  repositories.ArticleRepository
}

func NewTaxonomyService(categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository, articleRepo repositories.ArticleRepository) TaxonomyService {
	return &taxonomyService{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		articleRepo:  articleRepo,
	}
}

func (s *taxonomyService) CreateCategory(actor Actor, req models.CreateCategoryRequest) (*models.Category, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	_, err := s.categoryRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.ErrorConflict{Message: "category already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slugify(req.Name),
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *taxonomyService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *taxonomyService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) UpdateCategory(actor Actor, id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
		category.Slug = slugify(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory refuses to remove a category that still has articles.
func (s *taxonomyService) DeleteCategory(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return models.ErrorUnauthorized{Message: "admin access required"}
	}

	if _, err := s.GetCategory(id); err != nil {
		return err
	}

	count, err := s.articleRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrorConflict{Message: "category still has articles"}
	}

	return s.categoryRepo.Delete(id)
}

func (s *taxonomyService) CreateTag(actor Actor, req models.CreateTagRequest) (*models.Tag, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}

	_, err := s.tagRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.ErrorConflict{Message: "tag already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *taxonomyService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *taxonomyService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "tag not found"}
		}
		return nil, err
	}
	return tag, nil
}
