package models

// DefaultTestimonialRating applies when a testimonial is posted without a rating.
const DefaultTestimonialRating = 5

type Testimonial struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null" validate:"required,min=2,max=100"`
	Location string `json:"location" validate:"max=100"`
	Image    string `json:"image" validate:"omitempty,url"`
	Rating   int    `json:"rating" gorm:"not null;default:5" validate:"omitempty,min=1,max=5"`
	Comment  string `json:"comment" gorm:"not null" validate:"required,max=2000"`
}
