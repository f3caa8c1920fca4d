// Package seed loads the demo catalog into an empty store.
package seed

import (
	"fmt"
	"slices"

	"langnghe/internal/repositories"
	"langnghe/pkg/logger"
)

// Run inserts the fixture catalog. It does nothing when the store already
// holds categories, so it is safe to call on every start.
func Run(store repositories.Storage) error {
	existing, err := store.ListCategories()
	if err != nil {
		return fmt.Errorf("failed to check existing categories: %w", err)
	}
	if len(existing) > 0 {
		logger.Info().Int("categories", len(existing)).Msg("Database already has data, skipping seed")
		return nil
	}

	categoryIDs := make(map[string]uint, len(categories))
	for _, c := range categories {
		if err := store.CreateCategory(&c); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = c.ID
	}

	artisanIDs := make([]uint, 0, len(artisans))
	for _, a := range artisans {
		if err := store.CreateArtisan(&a); err != nil {
			return fmt.Errorf("failed to seed artisan %s: %w", a.Name, err)
		}
		artisanIDs = append(artisanIDs, a.ID)
	}

	for _, f := range products {
		p := f.product
		p.Images = slices.Clone(p.Images)
		p.CategoryID = categoryIDs[f.categorySlug]
		if f.artisan >= 0 {
			id := artisanIDs[f.artisan]
			p.ArtisanID = &id
		}
		if err := store.CreateProduct(&p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Slug, err)
		}
	}

	for _, t := range testimonials {
		if err := store.CreateTestimonial(&t); err != nil {
			return fmt.Errorf("failed to seed testimonial from %s: %w", t.Name, err)
		}
	}

	if err := store.RecountCategoryProducts(); err != nil {
		return err
	}

	logger.Info().
		Str("storage", store.Name()).
		Int("categories", len(categories)).
		Int("artisans", len(artisans)).
		Int("products", len(products)).
		Int("testimonials", len(testimonials)).
		Msg("Seeding complete")
	return nil
}
