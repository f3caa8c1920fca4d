package repositories

import "langnghe/internal/models"

// ArtisanRepository defines the interface for artisan data access.
type ArtisanRepository interface {
	ListArtisans() ([]models.Artisan, error)
	GetArtisanByID(id uint) (*models.Artisan, error)
	CreateArtisan(artisan *models.Artisan) error
}
