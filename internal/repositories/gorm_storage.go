package repositories

import (
	"errors"
	"fmt"

	"langnghe/internal/models"

	"gorm.io/gorm"
)

// GORMStorage is a GORM implementation of Storage. It works with any
// dialector; production uses PostgreSQL and tests use a SQLite file.
type GORMStorage struct {
	db   *gorm.DB
	name string
}

// NewGORMStorage creates a new instance of GORMStorage. The *gorm.DB should be
// opened with TranslateError enabled so unique violations map to ErrDuplicate.
func NewGORMStorage(db *gorm.DB, name string) *GORMStorage {
	return &GORMStorage{
		db:   db,
		name: name,
	}
}

// tables lists every model in dependency order (referenced tables first).
func tables() []any {
	return []any{
		&models.Category{},
		&models.Artisan{},
		&models.Product{},
		&models.Testimonial{},
		&models.CartItem{},
		&models.Subscriber{},
		&models.User{},
	}
}

func (r *GORMStorage) Name() string { return r.name }

// DB exposes the underlying handle for maintenance commands.
func (r *GORMStorage) DB() *gorm.DB { return r.db }

// Migrate creates or updates the schema.
func (r *GORMStorage) Migrate() error {
	if err := r.db.AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

// Reset drops every table and recreates the schema, which also restarts the
// id sequences.
func (r *GORMStorage) Reset() error {
	all := tables()
	for i := len(all) - 1; i >= 0; i-- {
		if err := r.db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", all[i], err)
		}
	}
	return r.Migrate()
}

func (r *GORMStorage) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate maps GORM errors onto the package sentinels.
func translate(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	default:
		return fmt.Errorf("failed to %s: %w", what, err)
	}
}

// --- Categories ---

func (r *GORMStorage) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, translate(err, "list categories")
	}
	return categories, nil
}

func (r *GORMStorage) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		return nil, translate(err, "get category with slug %s", slug)
	}
	return &category, nil
}

func (r *GORMStorage) CreateCategory(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return translate(err, "create category %s", category.Slug)
	}
	return nil
}

// --- Artisans ---

func (r *GORMStorage) ListArtisans() ([]models.Artisan, error) {
	var artisans []models.Artisan
	if err := r.db.Order("id").Find(&artisans).Error; err != nil {
		return nil, translate(err, "list artisans")
	}
	return artisans, nil
}

func (r *GORMStorage) GetArtisanByID(id uint) (*models.Artisan, error) {
	var artisan models.Artisan
	if err := r.db.First(&artisan, id).Error; err != nil {
		return nil, translate(err, "get artisan with ID %d", id)
	}
	return &artisan, nil
}

func (r *GORMStorage) CreateArtisan(artisan *models.Artisan) error {
	if err := r.db.Create(artisan).Error; err != nil {
		return translate(err, "create artisan")
	}
	return nil
}

// --- Testimonials ---

func (r *GORMStorage) ListTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := r.db.Order("id").Find(&testimonials).Error; err != nil {
		return nil, translate(err, "list testimonials")
	}
	return testimonials, nil
}

func (r *GORMStorage) CreateTestimonial(testimonial *models.Testimonial) error {
	if testimonial.Rating == 0 {
		testimonial.Rating = models.DefaultTestimonialRating
	}
	if err := r.db.Create(testimonial).Error; err != nil {
		return translate(err, "create testimonial")
	}
	return nil
}

// --- Subscribers ---

func (r *GORMStorage) CreateSubscriber(subscriber *models.Subscriber) error {
	if err := r.db.Create(subscriber).Error; err != nil {
		return translate(err, "create subscriber %s", subscriber.Email)
	}
	return nil
}
