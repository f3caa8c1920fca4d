package repositories

import "langnghe/internal/models"

type TestimonialRepository interface {
	ListTestimonials() ([]models.Testimonial, error)
	CreateTestimonial(testimonial *models.Testimonial) error
}
