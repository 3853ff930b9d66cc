package services

import (
	"testing"

	"momslove/models"
	"momslove/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CommentServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service CommentService
	article models.Article

	owner  Actor
	other  Actor
	admin  Actor
}

func (suite *CommentServiceTestSuite) SetupSuite() {
	suite.db = newTestDB(suite.T(), "comment_service")
	suite.service = NewCommentService(
		repositories.NewCommentRepository(suite.db),
		repositories.NewArticleRepository(suite.db),
	)
	suite.owner = Actor{ID: 1, Name: "Dana", Email: "dana@example.com", Role: "member"}
	suite.other = Actor{ID: 2, Name: "Mia", Email: "mia@example.com", Role: "member"}
	suite.admin = Actor{ID: 3, Name: "Admin", Email: "admin@example.com", Role: "admin"}
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM comments")
	suite.db.Exec("DELETE FROM articles")

	suite.article = models.Article{
		Title:   "Sleep Training Without Tears",
		Slug:    "sleep-training-without-tears",
		Content: "There is no single right way to do this.",
		Status:  models.StatusPublished,
	}
	suite.Require().NoError(suite.db.Create(&suite.article).Error)
}

func (suite *CommentServiceTestSuite) TestCreateComment() {
	comment, err := suite.service.Create(suite.owner, suite.article.ID, models.CreateCommentRequest{Content: "This helped so much."})
	suite.Require().NoError(err)
	suite.Equal(suite.article.ID, comment.ArticleID)
	suite.Equal(suite.owner.ID, comment.UserID)
	suite.Equal("Dana", comment.UserName)
	suite.False(comment.Hidden)
}

func (suite *CommentServiceTestSuite) TestCreateValidation() {
	_, err := suite.service.Create(Actor{}, suite.article.ID, models.CreateCommentRequest{Content: "hi"})
	suite.IsType(models.ErrorUnauthorized{}, err)

	_, err = suite.service.Create(suite.owner, suite.article.ID, models.CreateCommentRequest{Content: "  "})
	suite.IsType(models.ErrorValidation{}, err)

	_, err = suite.service.Create(suite.owner, suite.article.ID+999, models.CreateCommentRequest{Content: "hi"})
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *CommentServiceTestSuite) TestUpdateOwnedOnly() {
	comment, err := suite.service.Create(suite.owner, suite.article.ID, models.CreateCommentRequest{Content: "original"})
	suite.Require().NoError(err)

	_, err = suite.service.Update(suite.other, comment.ID, models.UpdateCommentRequest{Content: "hijacked"})
	suite.IsType(models.ErrorUnauthorized{}, err)

	updated, err := suite.service.Update(suite.owner, comment.ID, models.UpdateCommentRequest{Content: "edited"})
	suite.Require().NoError(err)
	suite.Equal("edited", updated.Content)

	byAdmin, err := suite.service.Update(suite.admin, comment.ID, models.UpdateCommentRequest{Content: "moderated"})
	suite.Require().NoError(err)
	suite.Equal("moderated", byAdmin.Content)
}

func (suite *CommentServiceTestSuite) TestHideIsAdminOnlyAndFiltersList() {
	comment, err := suite.service.Create(suite.owner, suite.article.ID, models.CreateCommentRequest{Content: "visible"})
	suite.Require().NoError(err)
	_, err = suite.service.Create(suite.other, suite.article.ID, models.CreateCommentRequest{Content: "spam"})
	suite.Require().NoError(err)

	_, err = suite.service.Hide(suite.owner, comment.ID)
	suite.IsType(models.ErrorUnauthorized{}, err)

	hidden, err := suite.service.Hide(suite.admin, comment.ID)
	suite.Require().NoError(err)
	suite.True(hidden.Hidden)

	public, err := suite.service.ListByArticle(suite.article.ID, false)
	suite.Require().NoError(err)
	suite.Require().Len(public, 1)
	suite.Equal("spam", public[0].Content)

	all, err := suite.service.ListByArticle(suite.article.ID, true)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *CommentServiceTestSuite) TestDelete() {
	comment, err := suite.service.Create(suite.owner, suite.article.ID, models.CreateCommentRequest{Content: "bye"})
	suite.Require().NoError(err)

	err = suite.service.Delete(suite.other, comment.ID)
	suite.IsType(models.ErrorUnauthorized{}, err)

	suite.Require().NoError(suite.service.Delete(suite.owner, comment.ID))

	remaining, err := suite.service.ListByArticle(suite.article.ID, true)
	suite.Require().NoError(err)
	suite.Empty(remaining)
}

func TestCommentServiceSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
