package repository

import (
	"context"
	"errors"
	"time"

	"gamerforum/internal/cache"
	"gamerforum/internal/models"
	"gamerforum/internal/observability"

	"gorm.io/gorm"
)

// GameRepository defines the interface for game data operations.
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	ListProjected(ctx context.Context) ([]models.GameQueryModel, error)
	ListTop(ctx context.Context, n int) ([]models.GameQueryModel, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.GameQueryModel, error)
	FindByTitle(ctx context.Context, title string) (*models.GameQueryModel, error)
	DeleteCascade(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type gameRepository struct {
	db    *gorm.DB
	store *Store[models.Game]
}

// NewGameRepository creates a new game repository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db, store: NewStore[models.Game](db, "game")}
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	if err := r.store.Add(ctx, game); err != nil {
		return err
	}
	cache.InvalidateGameListings(ctx)
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	return r.store.GetByID(ctx, id)
}

func (r *gameRepository) Update(ctx context.Context, game *models.Game) error {
	if err := r.store.Update(ctx, game); err != nil {
		return err
	}
	cache.InvalidateGame(ctx, game.ID)
	return nil
}

// projection selects the flattened game listing shape with the joined
// category name. Soft-deleted games are excluded by the model scope.
func (r *gameRepository) projection(ctx context.Context) *gorm.DB {
	return readDB(r.db).WithContext(ctx).
		Model(&models.Game{}).
		Select("games.id, games.title, games.studio, games.description, games.rating, games.image_url, categories.name AS category").
		Joins("JOIN categories ON categories.id = games.category_id")
}

func (r *gameRepository) ListProjected(ctx context.Context) ([]models.GameQueryModel, error) {
	var games []models.GameQueryModel
	err := r.projection(ctx).
		Order("games.rating DESC, games.title DESC").
		Scan(&games).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return games, nil
}

func (r *gameRepository) ListTop(ctx context.Context, n int) ([]models.GameQueryModel, error) {
	var games []models.GameQueryModel
	err := r.projection(ctx).
		Order("games.rating DESC, games.title DESC").
		Limit(n).
		Scan(&games).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return games, nil
}

func (r *gameRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.GameQueryModel, error) {
	var games []models.GameQueryModel
	err := r.projection(ctx).
		Where("games.category_id = ?", categoryID).
		Scan(&games).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return games, nil
}

func (r *gameRepository) FindByTitle(ctx context.Context, title string) (*models.GameQueryModel, error) {
	var games []models.GameQueryModel
	err := r.projection(ctx).
		Where("games.title = ?", title).
		Limit(1).
		Scan(&games).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	if len(games) == 0 {
		return nil, models.NewNotFoundError("game", title)
	}
	return &games[0], nil
}

// DeleteCascade removes a game together with every post, comment, and vote
// beneath it. The whole cascade runs inside one transaction with batched,
// strictly bottom-up deletes: votes, then comments, then posts, then the
// game itself. A failure at any level rolls back the entire operation.
func (r *gameRepository) DeleteCascade(ctx context.Context, id uint) error {
	start := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("game", id)
			}
			return models.NewPersistenceError(err)
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("game_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return models.NewPersistenceError(err)
		}

		var commentIDs []uint
		if len(postIDs) > 0 {
			if err := tx.Model(&models.Comment{}).Where("post_id IN ?", postIDs).Pluck("id", &commentIDs).Error; err != nil {
				return models.NewPersistenceError(err)
			}
		}

		if len(commentIDs) > 0 {
			res := tx.Where("comment_id IN ?", commentIDs).Delete(&models.Vote{})
			if res.Error != nil {
				return models.NewPersistenceError(res.Error)
			}
			observability.CascadeDeletedRows.WithLabelValues("vote").Add(float64(res.RowsAffected))

			res = tx.Where("id IN ?", commentIDs).Delete(&models.Comment{})
			if res.Error != nil {
				return models.NewPersistenceError(res.Error)
			}
			observability.CascadeDeletedRows.WithLabelValues("comment").Add(float64(res.RowsAffected))
		}

		if len(postIDs) > 0 {
			res := tx.Where("id IN ?", postIDs).Delete(&models.Post{})
			if res.Error != nil {
				return models.NewPersistenceError(res.Error)
			}
			observability.CascadeDeletedRows.WithLabelValues("post").Add(float64(res.RowsAffected))
		}

		if err := tx.Delete(&models.Game{}, id).Error; err != nil {
			return models.NewPersistenceError(err)
		}
		observability.CascadeDeletedRows.WithLabelValues("game").Inc()
		return nil
	})
	if err != nil {
		return err
	}

	observability.ObserveCascadeDelete("game", start)
	cache.InvalidateGame(ctx, id)
	return nil
}

func (r *gameRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx)
}

func (r *gameRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}
