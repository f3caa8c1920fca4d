package services_test

import (
	"fmt"
	"testing"

	"langnghe/internal/catalog"
	"langnghe/internal/models"
	"langnghe/internal/repositories"
	"langnghe/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	products := []models.Product{
		{ID: 1, Name: "Bình gốm", Price: 580000, CategoryID: 1},
		{ID: 2, Name: "Giỏ mây", Price: 245000, CategoryID: 2},
		{ID: 3, Name: "Chén gốm", Price: 120000, CategoryID: 1},
	}
	mockRepo.On("ListProducts").Return(products, nil).Once()

	got, err := service.ListProducts(catalog.Filter{}, catalog.SortPriceAsc)

	assert.NoError(t, err)
	assert.Equal(t, []uint{3, 2, 1}, []uint{got[0].ID, got[1].ID, got[2].ID})
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ListCategories")
}

func TestProductService_ListProductsByCategorySlug(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("ListProducts").Return([]models.Product{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 2},
	}, nil).Once()
	mockRepo.On("ListCategories").Return([]models.Category{
		{ID: 1, Slug: "gom-su"},
		{ID: 2, Slug: "may-tre-dan"},
	}, nil).Once()

	got, err := service.ListProducts(catalog.Filter{CategorySlug: "may-tre-dan"}, catalog.SortFeatured)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductBySlug(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: 1, Slug: "binh-gom"}

	// Test successful retrieval
	mockRepo.On("GetProductBySlug", "binh-gom").Return(expected, nil).Once()
	product, err := service.GetProductBySlug("binh-gom")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// Test product not found
	mockRepo.On("GetProductBySlug", "nope").Return(nil, fmt.Errorf("product with slug nope: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductBySlug("nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	input := models.ProductInput{
		Name:       "Khăn lụa",
		Slug:       "khan-lua",
		Price:      350000,
		Image:      "https://example.com/khan.jpg",
		CategoryID: 3,
	}

	mockRepo.On("CreateProduct", mock.MatchedBy(func(p *models.Product) bool {
		return p.Slug == "khan-lua" && p.InStock && !p.IsFeatured && p.CategoryID == 3
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 9
	}).Return(nil).Once()

	product, err := service.CreateProduct(input)

	assert.NoError(t, err)
	assert.Equal(t, uint(9), product.ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductUnknownCategory(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("CreateProduct", mock.AnythingOfType("*models.Product")).
		Return(fmt.Errorf("category 42: %w", repositories.ErrUnknownCategory)).Once()

	product, err := service.CreateProduct(models.ProductInput{Slug: "x", CategoryID: 42})

	assert.ErrorIs(t, err, repositories.ErrUnknownCategory)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateTestimonialDefaultsRating(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockRepo)

	mockRepo.On("CreateTestimonial", mock.MatchedBy(func(tm *models.Testimonial) bool {
		return tm.Rating == models.DefaultTestimonialRating
	})).Return(nil).Once()

	err := service.CreateTestimonial(&models.Testimonial{Name: "Hà", Comment: "Đẹp"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateCategoryResetsCount(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewCatalogService(mockRepo)

	mockRepo.On("CreateCategory", mock.MatchedBy(func(c *models.Category) bool {
		return c.ProductCount == 0 && c.ID == 0
	})).Return(nil).Once()

	err := service.CreateCategory(&models.Category{ID: 7, Name: "Gốm", Slug: "gom", ProductCount: 12})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
