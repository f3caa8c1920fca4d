package models

// Artisan is a craftsperson credited on products.
type Artisan struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null" validate:"required,min=2,max=100"`
	Image       string `json:"image" validate:"omitempty,url"`
	Village     string `json:"village" gorm:"not null" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}
