package repositories

import (
	"momslove/models"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	Create(sub *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetByToken(token string) (*models.Subscriber, error)
	ListActive() ([]models.Subscriber, error)
	Update(sub *models.Subscriber) error
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(sub *models.Subscriber) error {
	return r.db.Create(sub).Error
}

func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.Where("email = ?", email).First(&sub).Error
	return &sub, err
}

func (r *subscriberRepository) GetByToken(token string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.Where("token = ?", token).First(&sub).Error
	return &sub, err
}

func (r *subscriberRepository) ListActive() ([]models.Subscriber, error) {
	var subs []models.Subscriber
	err := r.db.Where("active = ?", true).Order("subscribed_at asc").Find(&subs).Error
	return subs, err
}

func (r *subscriberRepository) Update(sub *models.Subscriber) error {
	return r.db.Save(sub).Error
}
