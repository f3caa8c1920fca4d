package repositories

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"langnghe/internal/models"
)

// MemoryStorage is an in-memory implementation of Storage backed by maps.
// It is the fallback when no database is configured; data lives for the
// lifetime of the process.
type MemoryStorage struct {
	mu sync.RWMutex

	categories   map[uint]models.Category
	products     map[uint]models.Product
	artisans     map[uint]models.Artisan
	testimonials map[uint]models.Testimonial
	cartItems    map[uint]models.CartItem
	subscribers  map[uint]models.Subscriber
	users        map[uint]models.User

	lastCategoryID    uint
	lastProductID     uint
	lastArtisanID     uint
	lastTestimonialID uint
	lastCartItemID    uint
	lastSubscriberID  uint
	lastUserID        uint

	now func() time.Time
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		categories:   make(map[uint]models.Category),
		products:     make(map[uint]models.Product),
		artisans:     make(map[uint]models.Artisan),
		testimonials: make(map[uint]models.Testimonial),
		cartItems:    make(map[uint]models.CartItem),
		subscribers:  make(map[uint]models.Subscriber),
		users:        make(map[uint]models.User),
		now:          time.Now,
	}
}

func (s *MemoryStorage) Name() string { return "memory" }

func (s *MemoryStorage) Close() error { return nil }

// sortedValues returns the map values ordered by id so listings are stable.
func sortedValues[T any](m map[uint]T) []T {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// --- Categories ---

func (s *MemoryStorage) ListCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.categories), nil
}

func (s *MemoryStorage) GetCategoryBySlug(slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category with slug %s: %w", slug, ErrNotFound)
}

func (s *MemoryStorage) CreateCategory(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("category slug %s: %w", category.Slug, ErrDuplicate)
		}
	}
	s.lastCategoryID++
	category.ID = s.lastCategoryID
	s.categories[category.ID] = *category
	return nil
}

// --- Products ---

func (s *MemoryStorage) ListProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.products), nil
}

func (s *MemoryStorage) GetProductByID(id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return &p, nil
}

func (s *MemoryStorage) GetProductBySlug(slug string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with slug %s: %w", slug, ErrNotFound)
}

func (s *MemoryStorage) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	return s.filterProducts(func(p models.Product) bool { return p.CategoryID == categoryID }), nil
}

func (s *MemoryStorage) ListFeaturedProducts() ([]models.Product, error) {
	return s.filterProducts(func(p models.Product) bool { return p.IsFeatured }), nil
}

func (s *MemoryStorage) filterProducts(keep func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range sortedValues(s.products) {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemoryStorage) CreateProduct(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[product.CategoryID]
	if !ok {
		return fmt.Errorf("category %d: %w", product.CategoryID, ErrUnknownCategory)
	}
	if product.ArtisanID != nil {
		if _, ok := s.artisans[*product.ArtisanID]; !ok {
			return fmt.Errorf("artisan %d: %w", *product.ArtisanID, ErrUnknownArtisan)
		}
	}
	for _, p := range s.products {
		if p.Slug == product.Slug {
			return fmt.Errorf("product slug %s: %w", product.Slug, ErrDuplicate)
		}
	}

	s.lastProductID++
	product.ID = s.lastProductID
	product.CreatedAt = s.now()
	product.Images = slices.Clone(product.Images)
	s.products[product.ID] = *product

	category.ProductCount++
	s.categories[category.ID] = category
	return nil
}

func (s *MemoryStorage) RecountCategoryProducts() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[uint]int, len(s.categories))
	for _, p := range s.products {
		counts[p.CategoryID]++
	}
	for id, c := range s.categories {
		c.ProductCount = counts[id]
		s.categories[id] = c
	}
	return nil
}

// --- Artisans ---

func (s *MemoryStorage) ListArtisans() ([]models.Artisan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.artisans), nil
}

func (s *MemoryStorage) GetArtisanByID(id uint) (*models.Artisan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artisans[id]
	if !ok {
		return nil, fmt.Errorf("artisan with ID %d: %w", id, ErrNotFound)
	}
	return &a, nil
}

func (s *MemoryStorage) CreateArtisan(artisan *models.Artisan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastArtisanID++
	artisan.ID = s.lastArtisanID
	s.artisans[artisan.ID] = *artisan
	return nil
}

// --- Testimonials ---

func (s *MemoryStorage) ListTestimonials() ([]models.Testimonial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.testimonials), nil
}

func (s *MemoryStorage) CreateTestimonial(testimonial *models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if testimonial.Rating == 0 {
		testimonial.Rating = models.DefaultTestimonialRating
	}
	s.lastTestimonialID++
	testimonial.ID = s.lastTestimonialID
	s.testimonials[testimonial.ID] = *testimonial
	return nil
}

// --- Cart ---

func (s *MemoryStorage) ListCartItems(sessionID string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, 0)
	for _, item := range sortedValues(s.cartItems) {
		if item.SessionID != sessionID {
			continue
		}
		product, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		item.Product = &product
		items = append(items, item)
	}
	return items, nil
}

func (s *MemoryStorage) AddToCart(item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[item.ProductID]; !ok {
		return fmt.Errorf("product %d: %w", item.ProductID, ErrUnknownProduct)
	}
	if item.Quantity > models.MaxCartQuantity {
		return fmt.Errorf("quantity %d: %w", item.Quantity, ErrQuantityLimit)
	}

	now := s.now()
	for id, existing := range s.cartItems {
		if existing.SessionID == item.SessionID && existing.ProductID == item.ProductID {
			if existing.Quantity > models.MaxCartQuantity-item.Quantity {
				return fmt.Errorf("cart item %d holds %d, adding %d: %w", id, existing.Quantity, item.Quantity, ErrQuantityLimit)
			}
			existing.Quantity += item.Quantity
			existing.UpdatedAt = now
			s.cartItems[id] = existing
			*item = existing
			return nil
		}
	}

	s.lastCartItemID++
	item.ID = s.lastCartItemID
	item.CreatedAt = now
	item.UpdatedAt = now
	item.Product = nil
	s.cartItems[item.ID] = *item
	return nil
}

func (s *MemoryStorage) UpdateCartItem(id uint, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		delete(s.cartItems, id)
		return nil, nil
	}
	if quantity > models.MaxCartQuantity {
		return nil, fmt.Errorf("quantity %d: %w", quantity, ErrQuantityLimit)
	}

	item, ok := s.cartItems[id]
	if !ok {
		return nil, fmt.Errorf("cart item with ID %d: %w", id, ErrNotFound)
	}
	item.Quantity = quantity
	item.UpdatedAt = s.now()
	s.cartItems[id] = item
	return &item, nil
}

func (s *MemoryStorage) RemoveFromCart(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cartItems, id)
	return nil
}

func (s *MemoryStorage) ClearCart(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	maps.DeleteFunc(s.cartItems, func(_ uint, item models.CartItem) bool {
		return item.SessionID == sessionID
	})
	return nil
}

func (s *MemoryStorage) DeleteStaleCartItems(before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	maps.DeleteFunc(s.cartItems, func(_ uint, item models.CartItem) bool {
		stale := item.UpdatedAt.Before(before)
		if stale {
			removed++
		}
		return stale
	})
	return removed, nil
}

// --- Subscribers ---

func (s *MemoryStorage) CreateSubscriber(subscriber *models.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subscribers {
		if existing.Email == subscriber.Email {
			return fmt.Errorf("subscriber email %s: %w", subscriber.Email, ErrDuplicate)
		}
	}
	s.lastSubscriberID++
	subscriber.ID = s.lastSubscriberID
	subscriber.CreatedAt = s.now()
	s.subscribers[subscriber.ID] = *subscriber
	return nil
}

// --- Users ---

func (s *MemoryStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username %s: %w", user.Username, ErrDuplicate)
		}
	}
	s.lastUserID++
	user.ID = s.lastUserID
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStorage) GetUserByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return &u, nil
}

func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
}
