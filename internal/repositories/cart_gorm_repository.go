package repositories

import (
	"fmt"
	"time"

	"langnghe/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *GORMStorage) ListCartItems(sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, translate(err, "list cart items of session %s", sessionID)
	}

	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product != nil {
			out = append(out, item)
		}
	}
	return out, nil
}

// AddToCart upserts on the (session_id, product_id) unique index so two
// concurrent adds for the same pair still end up as one row.
func (r *GORMStorage) AddToCart(item *models.CartItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).Count(&n).Error; err != nil {
			return translate(err, "look up product %d", item.ProductID)
		}
		if n == 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrUnknownProduct)
		}
		if item.Quantity > models.MaxCartQuantity {
			return fmt.Errorf("quantity %d: %w", item.Quantity, ErrQuantityLimit)
		}

		var existing models.CartItem
		err := tx.Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).
			Limit(1).
			Find(&existing).Error
		if err != nil {
			return translate(err, "look up cart item")
		}
		if existing.ID != 0 && existing.Quantity > models.MaxCartQuantity-item.Quantity {
			return fmt.Errorf("cart item %d holds %d, adding %d: %w", existing.ID, existing.Quantity, item.Quantity, ErrQuantityLimit)
		}

		row := models.CartItem{
			SessionID: item.SessionID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		err = tx.Omit("Product").Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
		}).Create(&row).Error
		if err != nil {
			return translate(err, "add product %d to cart", item.ProductID)
		}

		var stored models.CartItem
		err = tx.Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).First(&stored).Error
		if err != nil {
			return translate(err, "reload cart item")
		}
		*item = stored
		return nil
	})
}

func (r *GORMStorage) UpdateCartItem(id uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		if err := r.db.Delete(&models.CartItem{}, id).Error; err != nil {
			return nil, translate(err, "delete cart item %d", id)
		}
		return nil, nil
	}
	if quantity > models.MaxCartQuantity {
		return nil, fmt.Errorf("quantity %d: %w", quantity, ErrQuantityLimit)
	}

	res := r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return nil, translate(res.Error, "update cart item %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "cart item with ID %d", id)
	}

	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, translate(err, "reload cart item %d", id)
	}
	return &item, nil
}

func (r *GORMStorage) RemoveFromCart(id uint) error {
	if err := r.db.Delete(&models.CartItem{}, id).Error; err != nil {
		return translate(err, "delete cart item %d", id)
	}
	return nil
}

func (r *GORMStorage) ClearCart(sessionID string) error {
	if err := r.db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
		return translate(err, "clear cart of session %s", sessionID)
	}
	return nil
}

func (r *GORMStorage) DeleteStaleCartItems(before time.Time) (int64, error) {
	res := r.db.Where("updated_at < ?", before).Delete(&models.CartItem{})
	if res.Error != nil {
		return 0, translate(res.Error, "delete stale cart items")
	}
	return res.RowsAffected, nil
}
