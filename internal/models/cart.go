package models

import "time"

// MaxCartQuantity caps the quantity of a single cart line, including the
// result of merging repeat adds.
const MaxCartQuantity = 10000

// CartItem is one product line of an anonymous shopping session. A session
// holds at most one row per product.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"sessionId" gorm:"type:varchar(128);not null;uniqueIndex:idx_cart_session_product"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_cart_session_product"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// CartItemInput is the request body of "add to cart". Quantity defaults to 1.
type CartItemInput struct {
	ProductID uint   `json:"productId" validate:"required"`
	SessionID string `json:"sessionId" validate:"required,max=128"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1,max=10000"`
}

// CartItem converts the input into a row ready for upsert.
func (in CartItemInput) CartItem() CartItem {
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	return CartItem{
		SessionID: in.SessionID,
		ProductID: in.ProductID,
		Quantity:  quantity,
	}
}
