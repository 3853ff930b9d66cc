package services

import (
	"errors"
	"strings"

	"momslove/mailer"
	"momslove/models"
	"momslove/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SendResult records the outcome for one recipient.
type SendResult struct {
	Email string `json:"email"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// SendReport summarizes a bulk dispatch. Failures never abort the batch.
type SendReport struct {
	SuccessCount int          `json:"success_count"`
	FailCount    int          `json:"fail_count"`
	Results      []SendResult `json:"results"`
}

type NewsletterService interface {
	Subscribe(email string) (*models.Subscriber, error)
	Unsubscribe(token string) error
	ListActive(actor Actor) ([]models.Subscriber, error)
	SendToAll(actor Actor, subject, templateName string, data map[string]any) (*SendReport, error)
}

type newsletterService struct {
	subscriberRepo repositories.SubscriberRepository
	templates      *mailer.TemplateStore
	sender         mailer.Sender
	clock          Clock
	log            zerolog.Logger
}

func NewNewsletterService(subscriberRepo repositories.SubscriberRepository, templates *mailer.TemplateStore, sender mailer.Sender, clock Clock, log zerolog.Logger) NewsletterService {
	if clock == nil {
		clock = systemClock{}
	}
	return &newsletterService{
		subscriberRepo: subscriberRepo,
		templates:      templates,
		sender:         sender,
		clock:          clock,
		log:            log,
	}
}

// Subscribe creates a subscription, reactivating the row when the address
// unsubscribed earlier.
func (s *newsletterService) Subscribe(email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, models.ErrorValidation{Message: "email is required"}
	}

	existing, err := s.subscriberRepo.GetByEmail(email)
	if err == nil {
		if existing.Active {
			return existing, nil
		}
		existing.Active = true
		existing.SubscribedAt = s.clock.Now()
		existing.UnsubscribedAt = nil
		if err := s.subscriberRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &models.Subscriber{
		Email:        email,
		Token:        uuid.NewString(),
		Active:       true,
		SubscribedAt: s.clock.Now(),
	}
	if err := s.subscriberRepo.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *newsletterService) Unsubscribe(token string) error {
	sub, err := s.subscriberRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "subscription not found"}
		}
		return err
	}

	now := s.clock.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	return s.subscriberRepo.Update(sub)
}

func (s *newsletterService) ListActive(actor Actor) ([]models.Subscriber, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}
	return s.subscriberRepo.ListActive()
}

// SendToAll renders the template once per subscriber and dispatches
// sequentially, collecting per-recipient failures into the report.
func (s *newsletterService) SendToAll(actor Actor, subject, templateName string, data map[string]any) (*SendReport, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrorUnauthorized{Message: "admin access required"}
	}
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(templateName) == "" {
		return nil, models.ErrorValidation{Message: "subject and template are required"}
	}

	subs, err := s.subscriberRepo.ListActive()
	if err != nil {
		return nil, err
	}

	report := &SendReport{Results: make([]SendResult, 0, len(subs))}
	for _, sub := range subs {
		payload := map[string]any{"UnsubscribeURL": "/api/newsletter/unsubscribe?token=" + sub.Token}
		for k, v := range data {
			payload[k] = v
		}

		body, err := s.templates.Render(templateName, payload)
		if err != nil {
			return nil, models.ErrorValidation{Message: err.Error()}
		}

		delivery := mailer.Delivery{
			Recipient: sub.Email,
			Subject:   subject,
			Body:      body,
			SentAt:    s.clock.Now(),
		}

		if err := s.sender.Send(delivery); err != nil {
			s.log.Error().Err(err).Str("recipient", sub.Email).Msg("newsletter delivery failed")
			report.FailCount++
			report.Results = append(report.Results, SendResult{Email: sub.Email, Sent: false, Error: err.Error()})
			continue
		}

		report.SuccessCount++
		report.Results = append(report.Results, SendResult{Email: sub.Email, Sent: true})
	}

	s.log.Info().
		Int("success", report.SuccessCount).
		Int("failed", report.FailCount).
		Str("template", templateName).
		Msg("newsletter batch finished")

	return report, nil
}
