package service

import (
	"context"

	"gamerforum/internal/models"
	"gamerforum/internal/repository"
)

// VoteService provides comment-voting business logic.
type VoteService struct {
	voteRepo    repository.VoteRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

// CastVoteInput is the payload accepted when voting on a comment.
type CastVoteInput struct {
	UserID    uint
	CommentID uint
	Type      models.VoteType
}

// NewVoteService returns a new VoteService.
func NewVoteService(
	voteRepo repository.VoteRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *VoteService {
	return &VoteService{
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

// CastVote records the user's vote on a comment. Voting again on the same
// comment replaces the previous vote's direction; a user never holds more
// than one vote per comment.
func (s *VoteService) CastVote(ctx context.Context, in CastVoteInput) error {
	if !in.Type.Valid() {
		return models.NewValidationError("Vote type must be 'up' or 'down'")
	}

	ok, err := s.commentRepo.Exists(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewInvalidReferenceError("comment", in.CommentID)
	}

	ok, err = s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewInvalidReferenceError("user", in.UserID)
	}

	return s.voteRepo.Upsert(ctx, &models.Vote{
		Type:      in.Type,
		UserID:    in.UserID,
		CommentID: in.CommentID,
	})
}

// RetractVote withdraws the user's vote on a comment, if one exists.
func (s *VoteService) RetractVote(ctx context.Context, userID, commentID uint) error {
	return s.voteRepo.Retract(ctx, userID, commentID)
}
