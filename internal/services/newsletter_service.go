package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"langnghe/internal/models"
	"langnghe/internal/repositories"
	"langnghe/pkg/logger"
)

const SubscriberCreatedEvent = "subscriber.created"

// EventPublisher delivers a message to a named queue. *rabbitmq.Client
// satisfies it.
type EventPublisher interface {
	Publish(queue string, body []byte) error
}

// WelcomeMailer is satisfied by *mailer.Mailer.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, name, email string) error
}

// SubscriberEvent is the message published after a signup.
type SubscriberEvent struct {
	Type       string            `json:"type"`
	Subscriber models.Subscriber `json:"subscriber"`
}

// NewsletterService stores newsletter signups and announces them on a queue.
type NewsletterService struct {
	repo      repositories.SubscriberRepository
	publisher EventPublisher
	queue     string
	mailer    WelcomeMailer
}

// NewNewsletterService wires the service. publisher and mailer may be nil:
// without a publisher no events are emitted, without a mailer consumed
// events are only logged.
func NewNewsletterService(repo repositories.SubscriberRepository, publisher EventPublisher, queue string, mailer WelcomeMailer) *NewsletterService {
	return &NewsletterService{
		repo:      repo,
		publisher: publisher,
		queue:     queue,
		mailer:    mailer,
	}
}

// Subscribe stores the subscriber and publishes a subscriber.created event.
// A publish failure is logged and does not fail the signup.
func (s *NewsletterService) Subscribe(subscriber *models.Subscriber) error {
	subscriber.ID = 0
	subscriber.Email = strings.ToLower(strings.TrimSpace(subscriber.Email))
	if err := s.repo.CreateSubscriber(subscriber); err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", subscriber.Email, err)
	}

	if s.publisher == nil {
		logger.Debug().Str("email", subscriber.Email).Msg("No event publisher configured, skipping subscriber event")
		return nil
	}

	body, err := json.Marshal(SubscriberEvent{Type: SubscriberCreatedEvent, Subscriber: *subscriber})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal subscriber event")
		return nil
	}
	if err := s.publisher.Publish(s.queue, body); err != nil {
		logger.Warn().Err(err).Uint("subscriberId", subscriber.ID).Msg("Failed to publish subscriber event")
	}
	return nil
}

// HandleSubscriberEvent consumes one queued event and sends the welcome email.
func (s *NewsletterService) HandleSubscriberEvent(ctx context.Context, body []byte) error {
	var event SubscriberEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode subscriber event: %w", err)
	}
	if event.Type != SubscriberCreatedEvent {
		logger.Warn().Str("type", event.Type).Msg("Ignoring unknown newsletter event")
		return nil
	}
	if s.mailer == nil {
		logger.Info().Str("email", event.Subscriber.Email).Msg("No mailer configured, welcome email skipped")
		return nil
	}
	return s.mailer.SendWelcome(ctx, event.Subscriber.Name, event.Subscriber.Email)
}
