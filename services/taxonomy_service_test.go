package services

import (
	"testing"

	"momslove/models"
	"momslove/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type TaxonomyServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service TaxonomyService
	admin   Actor
	member  Actor
}

func (suite *TaxonomyServiceTestSuite) SetupSuite() {
	suite.db = newTestDB(suite.T(), "taxonomy_service")
	suite.service = NewTaxonomyService(
		repositories.NewCategoryRepository(suite.db),
		repositories.NewTagRepository(suite.db),
		repositories.NewArticleRepository(suite.db),
	)
	suite.admin = Actor{ID: 1, Name: "Admin", Email: "admin@example.com", Role: "admin"}
	suite.member = Actor{ID: 2, Name: "Dana", Email: "dana@example.com", Role: "member"}
}

func (suite *TaxonomyServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM article_tags")
	suite.db.Exec("DELETE FROM articles")
	suite.db.Exec("DELETE FROM tags")
	suite.db.Exec("DELETE FROM categories")
}

func (suite *TaxonomyServiceTestSuite) TestCreateCategory() {
	category, err := suite.service.CreateCategory(suite.admin, models.CreateCategoryRequest{
		Name:        "Postpartum",
		Description: "The fourth trimester",
	})
	suite.Require().NoError(err)
	suite.Equal("postpartum", category.Slug)

	_, err = suite.service.CreateCategory(suite.admin, models.CreateCategoryRequest{Name: "Postpartum"})
	suite.IsType(models.ErrorConflict{}, err)

	_, err = suite.service.CreateCategory(suite.member, models.CreateCategoryRequest{Name: "Nope"})
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *TaxonomyServiceTestSuite) TestDeleteCategoryBlockedWhileInUse() {
	category, err := suite.service.CreateCategory(suite.admin, models.CreateCategoryRequest{Name: "Health"})
	suite.Require().NoError(err)

	article := models.Article{
		Title:      "Flu Season Survival",
		Slug:       "flu-season-survival",
		Content:    "Wash everything. Twice.",
		Status:     models.StatusPublished,
		CategoryID: &category.ID,
	}
	suite.Require().NoError(suite.db.Create(&article).Error)

	err = suite.service.DeleteCategory(suite.admin, category.ID)
	suite.IsType(models.ErrorConflict{}, err)

	suite.Require().NoError(suite.db.Delete(&article).Error)
	suite.Require().NoError(suite.service.DeleteCategory(suite.admin, category.ID))

	_, err = suite.service.GetCategory(category.ID)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *TaxonomyServiceTestSuite) TestTags() {
	tag, err := suite.service.CreateTag(suite.admin, models.CreateTagRequest{Name: "newborn"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateTag(suite.admin, models.CreateTagRequest{Name: "newborn"})
	suite.IsType(models.ErrorConflict{}, err)

	got, err := suite.service.GetTag(tag.ID)
	suite.Require().NoError(err)
	suite.Equal("newborn", got.Name)

	tags, err := suite.service.GetTags()
	suite.Require().NoError(err)
	suite.Len(tags, 1)
}

func TestTaxonomyServiceSuite(t *testing.T) {
	suite.Run(t, new(TaxonomyServiceTestSuite))
}
