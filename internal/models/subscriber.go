package models

import "time"

// Subscriber is a newsletter signup. Emails are unique.
type Subscriber struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	CreatedAt time.Time `json:"createdAt"`
}
