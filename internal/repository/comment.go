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

// likesCountExpr computes up votes minus down votes for a comment row.
const likesCountExpr = "COALESCE((SELECT SUM(CASE WHEN votes.type = 'up' THEN 1 ELSE -1 END) FROM votes WHERE votes.comment_id = comments.id), 0)"

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]models.CommentQueryModel, error)
	ListByUser(ctx context.Context, userID uint) ([]models.CommentQueryModel, error)
	DeleteWithVotes(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type commentRepository struct {
	db    *gorm.DB
	store *Store[models.Comment]
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db, store: NewStore[models.Comment](db, "comment")}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.store.Add(ctx, comment); err != nil {
		return err
	}
	cache.InvalidateComments(ctx, comment.PostID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Select("comments.*, " + likesCountExpr + " AS likes_count").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("comment", id)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.store.Update(ctx, comment); err != nil {
		return err
	}
	cache.InvalidateComments(ctx, comment.PostID)
	return nil
}

// projection is the flattened comment listing with the author username and
// the computed like balance.
func (r *commentRepository) projection(ctx context.Context) *gorm.DB {
	return readDB(r.db).WithContext(ctx).
		Model(&models.Comment{}).
		Select("comments.id, comments.content, comments.post_id, comments.user_id, users.username AS username, " + likesCountExpr + " AS likes_count, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id")
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.CommentQueryModel, error) {
	var comments []models.CommentQueryModel
	err := r.projection(ctx).
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return comments, nil
}

func (r *commentRepository) ListByUser(ctx context.Context, userID uint) ([]models.CommentQueryModel, error) {
	var comments []models.CommentQueryModel
	err := r.projection(ctx).
		Where("comments.user_id = ?", userID).
		Order("comments.created_at DESC").
		Scan(&comments).Error
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return comments, nil
}

// DeleteWithVotes removes a comment and its votes in one transaction, so a
// deleted comment never leaves dangling votes behind.
func (r *commentRepository) DeleteWithVotes(ctx context.Context, id uint) error {
	start := time.Now()
	var postID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("comment", id)
			}
			return models.NewPersistenceError(err)
		}
		postID = comment.PostID

		res := tx.Where("comment_id = ?", id).Delete(&models.Vote{})
		if res.Error != nil {
			return models.NewPersistenceError(res.Error)
		}
		observability.CascadeDeletedRows.WithLabelValues("vote").Add(float64(res.RowsAffected))

		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return models.NewPersistenceError(err)
		}
		observability.CascadeDeletedRows.WithLabelValues("comment").Inc()
		return nil
	})
	if err != nil {
		return err
	}

	observability.ObserveCascadeDelete("comment", start)
	cache.InvalidateComments(ctx, postID)
	return nil
}

func (r *commentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}
