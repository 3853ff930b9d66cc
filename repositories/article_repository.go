package repositories

import (
	"momslove/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	GetRecent(limit int) ([]models.Article, error)
	GetByCategory(categoryID uint) ([]models.Article, error)
	GetByTag(tagID uint) ([]models.Article, error)
	Update(article *models.Article) error
	UpdateFields(id uint, fields map[string]interface{}) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	Delete(id uint) error
	Count() (int64, error)
	CountByCategory(categoryID uint) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Tags").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	// Preload batches category and tag lookups by the fetched article ids.
	query := r.db.Model(&models.Article{}).Preload("Category").Preload("Tags")

	if isPublic {
		query = query.Where("status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	if params.TagID > 0 {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Where("article_tags.tag_id = ?", params.TagID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetRecent(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Tags").
		Where("status = ?", models.StatusPublished).
		Order("published_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByCategory(categoryID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Tags").
		Where("status = ? AND category_id = ?", models.StatusPublished, categoryID).
		Order("published_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByTag(tagID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Tags").
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("articles.status = ? AND article_tags.tag_id = ?", models.StatusPublished, tagID).
		Order("articles.published_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

func (r *articleRepository) Delete(id uint) error {
	article := models.Article{ID: id}
	if err := r.db.Model(&article).Association("Tags").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&article).Error
}

func (r *articleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
