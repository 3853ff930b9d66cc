package repositories

import (
	"momslove/models"

	"gorm.io/gorm"
)

type StoryRepository interface {
	Create(story *models.Story) error
	GetByID(id string) (*models.Story, error)
	List(status models.StoryStatus) ([]models.Story, error)
	Update(story *models.Story) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(story *models.Story) error {
	return r.db.Create(story).Error
}

func (r *storyRepository) GetByID(id string) (*models.Story, error) {
	var story models.Story
	err := r.db.Where("id = ?", id).First(&story).Error
	return &story, err
}

func (r *storyRepository) List(status models.StoryStatus) ([]models.Story, error) {
	var stories []models.Story
	query := r.db.Order("submitted_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&stories).Error
	return stories, err
}

func (r *storyRepository) Update(story *models.Story) error {
	return r.db.Save(story).Error
}
