// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"gamerforum/internal/database"
	"gamerforum/internal/models"

	"gorm.io/gorm"
)

// readDB routes projection-only queries to the read replica when one is
// configured, falling back to the primary connection.
func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}

// Store is the generic persistence contract shared by every entity family.
// Reads that miss translate to NotFound errors; write failures (constraint
// violations, connectivity) translate to Persistence errors. Callers must
// not assume partial success after a Persistence error.
type Store[T any] struct {
	db   *gorm.DB
	name string
}

// NewStore returns a Store for one entity type. name labels NotFound errors
// ("game", "comment", ...).
func NewStore[T any](db *gorm.DB, name string) *Store[T] {
	return &Store[T]{db: db, name: name}
}

// WithTx returns a Store bound to the given transaction, so multi-entity
// mutations can share one unit of work.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] {
	return &Store[T]{db: tx, name: s.name}
}

// Add inserts the entity, stamping creation timestamps.
func (s *Store[T]) Add(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

// Update persists all fields of the entity, stamping UpdatedAt.
func (s *Store[T]) Update(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Save(entity).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

// DeleteByID removes the row with the given id. NotFound when no row matches.
func (s *Store[T]) DeleteByID(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return models.NewPersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(s.name, id)
	}
	return nil
}

// GetByID fetches one entity by primary key.
func (s *Store[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(s.name, id)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &entity, nil
}

// All returns entities matching the optional conditions, via the primary
// connection (rows may be mutated and saved back).
func (s *Store[T]) All(ctx context.Context, conds ...any) ([]T, error) {
	var entities []T
	if err := s.db.WithContext(ctx).Find(&entities, conds...).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return entities, nil
}

// AllReadonly returns entities matching the optional conditions via the
// read path. Use for projection-only queries that never write back.
func (s *Store[T]) AllReadonly(ctx context.Context, conds ...any) ([]T, error) {
	var entities []T
	if err := readDB(s.db).WithContext(ctx).Find(&entities, conds...).Error; err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return entities, nil
}

// Count returns the number of live rows for the entity type.
func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, models.NewPersistenceError(err)
	}
	return count, nil
}

// Exists reports whether a row with the given id exists.
func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewPersistenceError(err)
	}
	return count > 0, nil
}
