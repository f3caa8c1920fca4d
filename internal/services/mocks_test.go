package services_test

import (
	"context"
	"time"

	"langnghe/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of repositories.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCategories() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogRepository) GetCategoryBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCatalogRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListProducts() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProductByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProductBySlug(slug string) (*models.Product, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListFeaturedProducts() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) RecountCategoryProducts() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCatalogRepository) ListArtisans() ([]models.Artisan, error) {
	args := m.Called()
	return args.Get(0).([]models.Artisan), args.Error(1)
}

func (m *MockCatalogRepository) GetArtisanByID(id uint) (*models.Artisan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artisan), args.Error(1)
}

func (m *MockCatalogRepository) CreateArtisan(artisan *models.Artisan) error {
	args := m.Called(artisan)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListTestimonials() ([]models.Testimonial, error) {
	args := m.Called()
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *MockCatalogRepository) CreateTestimonial(testimonial *models.Testimonial) error {
	args := m.Called(testimonial)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListCartItems(sessionID string) ([]models.CartItem, error) {
	args := m.Called(sessionID)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) AddToCart(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateCartItem(id uint, quantity int) (*models.CartItem, error) {
	args := m.Called(id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) RemoveFromCart(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCartRepository) ClearCart(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteStaleCartItems(before time.Time) (int64, error) {
	args := m.Called(before)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubscriberRepository is a mock implementation of repositories.SubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) CreateSubscriber(subscriber *models.Subscriber) error {
	args := m.Called(subscriber)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(queue string, body []byte) error {
	args := m.Called(queue, body)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(ctx context.Context, name, email string) error {
	args := m.Called(ctx, name, email)
	return args.Error(0)
}
