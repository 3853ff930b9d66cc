package services

import (
	"testing"
	"time"

	"momslove/models"
	"momslove/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service ArticleService
	admin   Actor
	member  Actor
}

func (suite *ArticleServiceTestSuite) SetupSuite() {
	suite.db = newTestDB(suite.T(), "article_service")
	clock := fixedClock{now: time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC)}
	suite.service = NewArticleService(
		repositories.NewArticleRepository(suite.db),
		repositories.NewCategoryRepository(suite.db),
		repositories.NewTagRepository(suite.db),
		clock,
	)
	suite.admin = Actor{ID: 1, Name: "Admin", Email: "admin@example.com", Role: "admin"}
	suite.member = Actor{ID: 2, Name: "Dana", Email: "dana@example.com", Role: "member"}
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM article_tags")
	suite.db.Exec("DELETE FROM articles")
	suite.db.Exec("DELETE FROM tags")
	suite.db.Exec("DELETE FROM categories")
}

func (suite *ArticleServiceTestSuite) TestCreateFillsDerivedFields() {
	article, err := suite.service.Create(suite.admin, models.CreateArticleRequest{
		Title:   "Packing the Hospital Bag",
		Content: "Pack it at thirty six weeks, then repack it twice because you will.",
		Tags:    []string{"pregnancy", "checklists"},
		Publish: true,
	})
	suite.Require().NoError(err)

	suite.Equal("packing-the-hospital-bag", article.Slug)
	suite.Equal(defaultCoverImage, article.CoverImage)
	suite.NotEmpty(article.Excerpt)
	suite.Equal(1, article.ReadingTime)
	suite.Equal(models.StatusPublished, article.Status)
	suite.NotNil(article.PublishedAt)
	suite.Len(article.Tags, 2)
}

func (suite *ArticleServiceTestSuite) TestCreateReusesExistingTags() {
	suite.Require().NoError(suite.db.Create(&models.Tag{Name: "pregnancy"}).Error)

	_, err := suite.service.Create(suite.admin, models.CreateArticleRequest{
		Title:   "Tag Reuse",
		Content: "content",
		Tags:    []string{"pregnancy", "newborn"},
	})
	suite.Require().NoError(err)

	var count int64
	suite.db.Model(&models.Tag{}).Count(&count)
	suite.Equal(int64(2), count)
}

func (suite *ArticleServiceTestSuite) TestCreateRequiresAdmin() {
	_, err := suite.service.Create(suite.member, models.CreateArticleRequest{
		Title:   "Nope",
		Content: "content",
	})
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *ArticleServiceTestSuite) TestSlugCollisionGetsSuffix() {
	first, err := suite.service.Create(suite.admin, models.CreateArticleRequest{Title: "Same Title", Content: "one"})
	suite.Require().NoError(err)
	second, err := suite.service.Create(suite.admin, models.CreateArticleRequest{Title: "Same Title", Content: "two"})
	suite.Require().NoError(err)
	third, err := suite.service.Create(suite.admin, models.CreateArticleRequest{Title: "Same Title", Content: "three"})
	suite.Require().NoError(err)

	suite.Equal("same-title", first.Slug)
	suite.Equal("same-title-2", second.Slug)
	suite.Equal("same-title-3", third.Slug)
}

func (suite *ArticleServiceTestSuite) TestGetBySlugHidesDraftsFromPublic() {
	draft, err := suite.service.Create(suite.admin, models.CreateArticleRequest{Title: "Hidden Draft", Content: "content"})
	suite.Require().NoError(err)

	_, err = suite.service.GetBySlug(draft.Slug, true)
	suite.IsType(models.ErrorNotFound{}, err)

	got, err := suite.service.GetBySlug(draft.Slug, false)
	suite.Require().NoError(err)
	suite.Equal(draft.ID, got.ID)
}

func (suite *ArticleServiceTestSuite) TestUpdatePartialFields() {
	article, err := suite.service.Create(suite.admin, models.CreateArticleRequest{
		Title:   "Original Title",
		Content: "original content",
	})
	suite.Require().NoError(err)

	newTitle := "Fresh Title"
	updated, err := suite.service.Update(suite.admin, article.ID, models.UpdateArticleRequest{Title: &newTitle})
	suite.Require().NoError(err)
	suite.Equal("Fresh Title", updated.Title)
	suite.Equal("fresh-title", updated.Slug)
	suite.Equal("original content", updated.Content)

	published := string(models.StatusPublished)
	updated, err = suite.service.Update(suite.admin, article.ID, models.UpdateArticleRequest{Status: &published})
	suite.Require().NoError(err)
	suite.Equal(models.StatusPublished, updated.Status)
	suite.NotNil(updated.PublishedAt)

	draft := string(models.StatusDraft)
	updated, err = suite.service.Update(suite.admin, article.ID, models.UpdateArticleRequest{Status: &draft})
	suite.Require().NoError(err)
	suite.Equal(models.StatusDraft, updated.Status)
	suite.Nil(updated.PublishedAt)

	bogus := "archived"
	_, err = suite.service.Update(suite.admin, article.ID, models.UpdateArticleRequest{Status: &bogus})
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *ArticleServiceTestSuite) TestGetByCategoryValidatesCategory() {
	_, err := suite.service.GetByCategory(12345)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *ArticleServiceTestSuite) TestDeleteFreesSlugForReuse() {
	first, err := suite.service.Create(suite.admin, models.CreateArticleRequest{
		Title:   "Back To School Checklist",
		Content: "Label everything, including the labels.",
	})
	suite.Require().NoError(err)
	suite.Equal("back-to-school-checklist", first.Slug)

	suite.Require().NoError(suite.service.Delete(suite.admin, first.ID))

	// the row is gone, so the slug is free again with no suffix
	second, err := suite.service.Create(suite.admin, models.CreateArticleRequest{
		Title:   "Back To School Checklist",
		Content: "This year we label the lunchbox too.",
	})
	suite.Require().NoError(err)
	suite.Equal("back-to-school-checklist", second.Slug)

	var count int64
	suite.db.Model(&models.Article{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *ArticleServiceTestSuite) TestDeleteRequiresAdmin() {
	article, err := suite.service.Create(suite.admin, models.CreateArticleRequest{Title: "Short Lived", Content: "content"})
	suite.Require().NoError(err)

	err = suite.service.Delete(suite.member, article.ID)
	suite.IsType(models.ErrorUnauthorized{}, err)

	suite.Require().NoError(suite.service.Delete(suite.admin, article.ID))

	_, err = suite.service.GetBySlug(article.Slug, false)
	suite.IsType(models.ErrorNotFound{}, err)
}

func TestArticleServiceSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
