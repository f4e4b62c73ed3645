package service

import (
	"context"
	"fmt"

	"gamerforum/internal/cache"
	"gamerforum/internal/models"
	"gamerforum/internal/repository"
	"gamerforum/internal/sanitize"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	sanitizer   sanitize.Sanitizer
}

// CreateCommentInput is the payload accepted when replying to a post.
type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// UpdateCommentInput is the payload accepted when editing a comment.
type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

// DeleteCommentInput identifies a comment to remove and who asked.
type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
	IsAdmin   bool
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	sanitizer sanitize.Sanitizer,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
	}
}

func (s *CommentService) cleanContent(content *string) error {
	*content = s.sanitizer.Sanitize(*content)
	if *content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(*content) > models.MaxCommentContentLen {
		return models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", models.MaxCommentContentLen))
	}
	return nil
}

// CreateComment replies to a post. The post and the author must both exist
// before any write happens; a dangling reference aborts the create.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := s.cleanContent(&in.Content); err != nil {
		return nil, err
	}

	ok, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewInvalidReferenceError("post", in.PostID)
	}

	ok, err = s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewInvalidReferenceError("user", in.UserID)
	}

	comment := &models.Comment{
		Content: in.Content,
		PostID:  in.PostID,
		UserID:  in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments with author usernames and live
// like balances, oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.CommentQueryModel, error) {
	ok, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("post", postID)
	}

	var comments []models.CommentQueryModel
	err = cache.Aside(ctx, cache.CommentsKey(postID), &comments, cache.ListTTL, func() error {
		var err error
		comments, err = s.commentRepo.ListByPost(ctx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListCommentsByUser returns everything one user has written, newest first.
func (s *CommentService) ListCommentsByUser(ctx context.Context, userID uint) ([]models.CommentQueryModel, error) {
	ok, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("user", userID)
	}
	return s.commentRepo.ListByUser(ctx, userID)
}

// GetComment returns one comment by id, for edit forms.
func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// UpdateComment edits a comment. Only the author may edit.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}

	if err := s.cleanContent(&in.Content); err != nil {
		return nil, err
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment together with its votes. The author or an
// admin may delete.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment.UserID != in.UserID && !in.IsAdmin {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return s.commentRepo.DeleteWithVotes(ctx, in.CommentID)
}
