package models

import "time"

// Product represents a handcrafted item in the catalog.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	SalePrice    *float64  `json:"salePrice"`
	Image        string    `json:"image" gorm:"not null"`
	Images       []string  `json:"images" gorm:"type:text;serializer:json"`
	CategoryID   uint      `json:"categoryId" gorm:"not null;index"`
	ArtisanID    *uint     `json:"artisanId" gorm:"index"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	InStock      bool      `json:"inStock"`
	IsNew        bool      `json:"isNew"`
	IsFeatured   bool      `json:"isFeatured" gorm:"index"`
	IsBestseller bool      `json:"isBestseller"`
	Village      string    `json:"village"`
	CreatedAt    time.Time `json:"createdAt"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Artisan  *Artisan  `json:"-" gorm:"foreignKey:ArtisanID"`
}

// EffectivePrice is the sale price when one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// ProductInput is the request body for creating a product. Pointer fields
// distinguish "absent" from the zero value so defaults can be applied.
type ProductInput struct {
	Name         string   `json:"name" validate:"required,min=2,max=200"`
	Slug         string   `json:"slug" validate:"required,product_slug,max=200"`
	Description  string   `json:"description" validate:"max=2000"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	SalePrice    *float64 `json:"salePrice" validate:"omitempty,gt=0"`
	Image        string   `json:"image" validate:"required"`
	Images       []string `json:"images" validate:"omitempty,dive,required"`
	CategoryID   uint     `json:"categoryId" validate:"required"`
	ArtisanID    *uint    `json:"artisanId" validate:"omitempty,gt=0"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount  *int     `json:"reviewCount" validate:"omitempty,gte=0"`
	InStock      *bool    `json:"inStock"`
	IsNew        *bool    `json:"isNew"`
	IsFeatured   *bool    `json:"isFeatured"`
	IsBestseller *bool    `json:"isBestseller"`
	Village      string   `json:"village" validate:"max=200"`
}

// Product converts the input into a Product. inStock defaults to true,
// every other flag and counter to its zero value.
func (in ProductInput) Product() Product {
	p := Product{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Price:       in.Price,
		SalePrice:   in.SalePrice,
		Image:       in.Image,
		Images:      in.Images,
		CategoryID:  in.CategoryID,
		ArtisanID:   in.ArtisanID,
		InStock:     true,
		Village:     in.Village,
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.ReviewCount != nil {
		p.ReviewCount = *in.ReviewCount
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.IsNew != nil {
		p.IsNew = *in.IsNew
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.IsBestseller != nil {
		p.IsBestseller = *in.IsBestseller
	}
	return p
}
