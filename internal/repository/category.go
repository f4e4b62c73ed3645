package repository

import (
	"context"

	"gamerforum/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines interface for category operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type categoryRepository struct {
	store *Store[models.Category]
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{store: NewStore[models.Category](db, "category")}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.store.Add(ctx, category)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return r.store.GetByID(ctx, id)
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return r.store.AllReadonly(ctx)
}

func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}
