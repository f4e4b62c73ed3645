package repository

import (
	"context"
	"errors"

	"gamerforum/internal/models"
	"gamerforum/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteRepository defines the interface for vote data operations.
type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) error
	GetByUserAndComment(ctx context.Context, userID, commentID uint) (*models.Vote, error)
	Retract(ctx context.Context, userID, commentID uint) error
	CountByComment(ctx context.Context, commentID uint) (int64, error)
}

type voteRepository struct {
	db    *gorm.DB
	store *Store[models.Vote]
}

// NewVoteRepository creates a new vote repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db, store: NewStore[models.Vote](db, "vote")}
}

// Upsert inserts the vote, or flips the type of the user's existing vote on
// the same comment. At most one vote row per (user, comment) ever exists.
func (r *voteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "comment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type"}),
	}).Create(vote).Error
	if err != nil {
		return models.NewPersistenceError(err)
	}
	observability.VoteUpserts.WithLabelValues(string(vote.Type)).Inc()
	return nil
}

func (r *voteRepository) GetByUserAndComment(ctx context.Context, userID, commentID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("vote", commentID)
		}
		return nil, models.NewPersistenceError(err)
	}
	return &vote, nil
}

// Retract removes the user's vote on a comment, if any.
func (r *voteRepository) Retract(ctx context.Context, userID, commentID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&models.Vote{})
	if res.Error != nil {
		return models.NewPersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("vote", commentID)
	}
	return nil
}

func (r *voteRepository) CountByComment(ctx context.Context, commentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewPersistenceError(err)
	}
	return count, nil
}
