package services

import (
	"testing"
	"time"

	"momslove/models"
	"momslove/repositories"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SeedServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service SeedService
}

func (suite *SeedServiceTestSuite) SetupSuite() {
	suite.db = newTestDB(suite.T(), "seed_service")
	clock := fixedClock{now: time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)}
	suite.service = NewSeedService(
		repositories.NewArticleRepository(suite.db),
		repositories.NewCategoryRepository(suite.db),
		repositories.NewTagRepository(suite.db),
		clock,
		zerolog.Nop(),
	)
}

func (suite *SeedServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM article_tags")
	suite.db.Exec("DELETE FROM articles")
	suite.db.Exec("DELETE FROM tags")
	suite.db.Exec("DELETE FROM categories")
}

func (suite *SeedServiceTestSuite) TestSeedPopulatesEmptyDatabase() {
	report, err := suite.service.MigrateAllData(1)
	suite.Require().NoError(err)

	suite.False(report.Skipped)
	suite.Equal(len(seedCategories), report.Categories)
	suite.Equal(len(seedTags), report.Tags)
	suite.Equal(len(seedArticles), report.Articles)

	var articles []models.Article
	suite.Require().NoError(suite.db.Find(&articles).Error)
	suite.Len(articles, len(seedArticles))
	for _, article := range articles {
		suite.Equal(models.StatusPublished, article.Status)
		suite.NotNil(article.PublishedAt)
		suite.Equal("MomsLove Editorial", article.AuthorName)
		suite.Equal(uint(1), article.UserID)
		suite.NotEmpty(article.Slug)
		suite.NotEmpty(article.Excerpt)
		suite.Positive(article.ReadingTime)
		suite.NotNil(article.CategoryID)
	}
}

func (suite *SeedServiceTestSuite) TestSeedSkipsWhenArticlesExist() {
	report, err := suite.service.MigrateAllData(1)
	suite.Require().NoError(err)
	suite.False(report.Skipped)

	again, err := suite.service.MigrateAllData(1)
	suite.Require().NoError(err)
	suite.True(again.Skipped)
	suite.Zero(again.Categories)
	suite.Zero(again.Tags)
	suite.Zero(again.Articles)

	var count int64
	suite.db.Model(&models.Article{}).Count(&count)
	suite.Equal(int64(len(seedArticles)), count)
}

func (suite *SeedServiceTestSuite) TestSeedReusesExistingTaxonomy() {
	category := &models.Category{Name: seedCategories[0].Name, Slug: slugify(seedCategories[0].Name)}
	suite.Require().NoError(suite.db.Create(category).Error)

	report, err := suite.service.MigrateAllData(1)
	suite.Require().NoError(err)
	suite.Equal(len(seedCategories)-1, report.Categories)

	var count int64
	suite.db.Model(&models.Category{}).Count(&count)
	suite.Equal(int64(len(seedCategories)), count)
}

func TestSeedServiceSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}
