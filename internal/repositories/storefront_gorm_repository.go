package repositories

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/apperror"
	"marketplace/internal/models"

	"gorm.io/gorm"
)

// GORMStorefrontRepository is a GORM implementation of StorefrontRepository.
type GORMStorefrontRepository struct {
	db *gorm.DB
}

// NewGORMStorefrontRepository creates a new instance of GORMStorefrontRepository.
func NewGORMStorefrontRepository(db *gorm.DB) *GORMStorefrontRepository {
	return &GORMStorefrontRepository{
		db: db,
	}
}

func (r *GORMStorefrontRepository) Create(ctx context.Context, storefront *models.Storefront) error {
	if err := r.db.WithContext(ctx).Create(storefront).Error; err != nil {
		return fmt.Errorf("failed to create storefront: %w", err)
	}
	return nil
}

func (r *GORMStorefrontRepository) GetByID(ctx context.Context, id uint) (*models.Storefront, error) {
	var storefront models.Storefront
	if err := r.db.WithContext(ctx).First(&storefront, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("storefront with ID %d: %w", id, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get storefront by ID %d: %w", id, err)
	}
	return &storefront, nil
}

func (r *GORMStorefrontRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Storefront{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check storefront %d: %w", id, err)
	}
	return count > 0, nil
}
