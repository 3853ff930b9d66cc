package services

import (
	"errors"
	"testing"
	"time"

	"momslove/mailer"
	"momslove/models"
	"momslove/repositories"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type NewsletterServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	sender  *mailer.MemorySender
	service NewsletterService
	admin   Actor
	member  Actor
}

func (suite *NewsletterServiceTestSuite) SetupSuite() {
	suite.db = newTestDB(suite.T(), "newsletter_service")
	suite.admin = Actor{ID: 1, Name: "Admin", Email: "admin@example.com", Role: "admin"}
	suite.member = Actor{ID: 2, Name: "Dana", Email: "dana@example.com", Role: "member"}
}

func (suite *NewsletterServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM subscribers")
	suite.sender = mailer.NewMemorySender()
	clock := fixedClock{now: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)}
	suite.service = NewNewsletterService(
		repositories.NewSubscriberRepository(suite.db),
		mailer.NewTemplateStore(),
		suite.sender,
		clock,
		zerolog.Nop(),
	)
}

func (suite *NewsletterServiceTestSuite) TestSubscribeNormalizesEmail() {
	sub, err := suite.service.Subscribe("  Dana@Example.COM ")
	suite.Require().NoError(err)
	suite.Equal("dana@example.com", sub.Email)
	suite.True(sub.Active)
	suite.NotEmpty(sub.Token)

	_, err = suite.service.Subscribe("   ")
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *NewsletterServiceTestSuite) TestSubscribeIsIdempotentWhileActive() {
	first, err := suite.service.Subscribe("dana@example.com")
	suite.Require().NoError(err)

	second, err := suite.service.Subscribe("dana@example.com")
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.Equal(first.Token, second.Token)

	var count int64
	suite.db.Model(&models.Subscriber{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *NewsletterServiceTestSuite) TestResubscribeReactivatesRow() {
	sub, err := suite.service.Subscribe("dana@example.com")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Unsubscribe(sub.Token))

	again, err := suite.service.Subscribe("dana@example.com")
	suite.Require().NoError(err)
	suite.Equal(sub.ID, again.ID)
	suite.True(again.Active)
	suite.Nil(again.UnsubscribedAt)
}

func (suite *NewsletterServiceTestSuite) TestUnsubscribeUnknownToken() {
	err := suite.service.Unsubscribe("no-such-token")
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *NewsletterServiceTestSuite) TestListActiveExcludesUnsubscribed() {
	a, err := suite.service.Subscribe("a@example.com")
	suite.Require().NoError(err)
	_, err = suite.service.Subscribe("b@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Unsubscribe(a.Token))

	active, err := suite.service.ListActive(suite.admin)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal("b@example.com", active[0].Email)

	_, err = suite.service.ListActive(suite.member)
	suite.IsType(models.ErrorUnauthorized{}, err)
}

func (suite *NewsletterServiceTestSuite) TestSendToAllCountsPartialFailures() {
	_, err := suite.service.Subscribe("ok1@example.com")
	suite.Require().NoError(err)
	_, err = suite.service.Subscribe("broken@example.com")
	suite.Require().NoError(err)
	_, err = suite.service.Subscribe("ok2@example.com")
	suite.Require().NoError(err)

	suite.sender.FailFor = map[string]error{
		"broken@example.com": errors.New("mailbox unavailable"),
	}

	report, err := suite.service.SendToAll(suite.admin, "Weekly digest", "digest", map[string]any{"Body": "Three new articles this week."})
	suite.Require().NoError(err)
	suite.Equal(2, report.SuccessCount)
	suite.Equal(1, report.FailCount)
	suite.Len(report.Results, 3)

	for _, result := range report.Results {
		if result.Email == "broken@example.com" {
			suite.False(result.Sent)
			suite.Equal("mailbox unavailable", result.Error)
		} else {
			suite.True(result.Sent)
			suite.Empty(result.Error)
		}
	}

	suite.Len(suite.sender.Deliveries(), 2)
}

func (suite *NewsletterServiceTestSuite) TestSendToAllIncludesUnsubscribeLink() {
	sub, err := suite.service.Subscribe("dana@example.com")
	suite.Require().NoError(err)

	_, err = suite.service.SendToAll(suite.admin, "Weekly digest", "digest", map[string]any{"Body": "News."})
	suite.Require().NoError(err)

	deliveries := suite.sender.Deliveries()
	suite.Require().Len(deliveries, 1)
	suite.Contains(deliveries[0].Body, "/api/newsletter/unsubscribe?token="+sub.Token)
}

func (suite *NewsletterServiceTestSuite) TestSendToAllValidation() {
	_, err := suite.service.SendToAll(suite.member, "subject", "digest", nil)
	suite.IsType(models.ErrorUnauthorized{}, err)

	_, err = suite.service.SendToAll(suite.admin, " ", "digest", nil)
	suite.IsType(models.ErrorValidation{}, err)

	_, err = suite.service.Subscribe("dana@example.com")
	suite.Require().NoError(err)

	_, err = suite.service.SendToAll(suite.admin, "subject", "missing-template", nil)
	suite.IsType(models.ErrorValidation{}, err)
}

func TestNewsletterServiceSuite(t *testing.T) {
	suite.Run(t, new(NewsletterServiceTestSuite))
}
