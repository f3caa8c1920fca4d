package models

// User is the legacy account entity. No route exposes it.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=3,max=100"`
	Password string `json:"-" gorm:"type:varchar(255);not null" validate:"required,min=6"`
}
