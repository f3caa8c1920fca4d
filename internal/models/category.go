package models

// Category groups products by craft (ceramics, rattan, silk...).
type Category struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null" validate:"required,min=2,max=100"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null" validate:"required,slug,max=120"`
	Image        string `json:"image" validate:"omitempty,url"`
	ProductCount int    `json:"productCount" gorm:"not null;default:0" validate:"gte=0"`
}
