package repositories

import "langnghe/internal/models"

type SubscriberRepository interface {
	// CreateSubscriber fails with ErrDuplicate when the email is taken.
	CreateSubscriber(subscriber *models.Subscriber) error
}
