// Package catalog filters and orders product listings. It is shared by the
// GET /products handler and the storefront client.
package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"langnghe/internal/models"
)

// SortKey selects the ordering applied by Apply.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a query value to a SortKey. Empty means featured.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// Filter narrows a product list. Zero values disable each criterion.
type Filter struct {
	// CategorySlug keeps products of the category with this slug. A slug
	// that matches no category does not filter.
	CategorySlug string
	// MinPrice and MaxPrice are inclusive bounds on the effective price.
	MinPrice *float64
	MaxPrice *float64
	// IsNew and IsBestseller, when true, require the flag on the product.
	IsNew        bool
	IsBestseller bool
}

func (f Filter) match(p models.Product, categoryID uint, byCategory bool) bool {
	if byCategory && p.CategoryID != categoryID {
		return false
	}
	price := p.EffectivePrice()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	if f.IsNew && !p.IsNew {
		return false
	}
	if f.IsBestseller && !p.IsBestseller {
		return false
	}
	return true
}

// Apply returns a new slice holding the products that pass filter, ordered
// by key. The input slice is not modified. Sorting is stable, so products
// that compare equal keep their input order.
func Apply(products []models.Product, categories []models.Category, filter Filter, key SortKey) []models.Product {
	var (
		categoryID uint
		byCategory bool
	)
	if filter.CategorySlug != "" {
		for _, c := range categories {
			if c.Slug == filter.CategorySlug {
				categoryID, byCategory = c.ID, true
				break
			}
		}
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.match(p, categoryID, byCategory) {
			out = append(out, p)
		}
	}

	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key SortKey) func(a, b models.Product) int {
	switch key {
	case SortPriceAsc:
		return func(a, b models.Product) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		}
	case SortPriceDesc:
		return func(a, b models.Product) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		}
	case SortNewest:
		return func(a, b models.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	case SortRating:
		return func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	default:
		// featured products first
		return func(a, b models.Product) int {
			switch {
			case a.IsFeatured == b.IsFeatured:
				return 0
			case a.IsFeatured:
				return -1
			default:
				return 1
			}
		}
	}
}
