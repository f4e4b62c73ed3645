package repository

import (
	"context"
	"errors"

	"gamerforum/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines interface for user operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type userRepository struct {
	db    *gorm.DB
	store *Store[models.User]
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, store: NewStore[models.User](db, "user")}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.store.Add(ctx, user)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.store.Update(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.store.GetByID(ctx, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user", username)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no user matches; signup probes for
// existing accounts without treating absence as an error.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewPersistenceError(err)
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}
