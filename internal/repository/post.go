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

// commentsCountExpr computes the live comment count for a post row.
const commentsCountExpr = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL)"

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	ListByGame(ctx context.Context, gameID uint) ([]models.Post, error)
	DeleteCascade(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type postRepository struct {
	db    *gorm.DB
	store *Store[models.Post]
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, store: NewStore[models.Post](db, "post")}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.store.Add(ctx, post)
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Select("posts.*, " + commentsCountExpr + " AS comments_count").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.store.Update(ctx, post)
}

func (r *postRepository) ListByGame(ctx context.Context, gameID uint) ([]models.Post, error) {
	var posts []models.Post
	err := readDB(r.db).WithContext(ctx).
		Select("posts.*, "+commentsCountExpr+" AS comments_count").
		Where("posts.game_id = ?", gameID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return posts, nil
}

// DeleteCascade removes a post and everything beneath it: the votes on its
// comments, the comments, then the post, all inside one transaction.
func (r *postRepository) DeleteCascade(ctx context.Context, id uint) error {
	start := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return models.NewPersistenceError(err)
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

		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return models.NewPersistenceError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("post", id)
		}
		observability.CascadeDeletedRows.WithLabelValues("post").Inc()
		return nil
	})
	if err != nil {
		return err
	}

	observability.ObserveCascadeDelete("post", start)
	cache.InvalidateComments(ctx, id)
	return nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}
