package service

import (
	"context"
	"fmt"

	"gamerforum/internal/models"
	"gamerforum/internal/repository"
	"gamerforum/internal/sanitize"
)

// PostService provides discussion-thread business logic.
type PostService struct {
	postRepo  repository.PostRepository
	gameRepo  repository.GameRepository
	userRepo  repository.UserRepository
	sanitizer sanitize.Sanitizer
}

// CreatePostInput is the payload accepted when opening a thread.
type CreatePostInput struct {
	UserID  uint
	GameID  uint
	Title   string
	Content string
}

// UpdatePostInput is the payload accepted when editing a thread.
type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

// DeletePostInput identifies a thread to remove and who asked.
type DeletePostInput struct {
	UserID  uint
	PostID  uint
	IsAdmin bool
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
	sanitizer sanitize.Sanitizer,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		sanitizer: sanitizer,
	}
}

func (s *PostService) cleanPostInput(title, content *string) error {
	*title = s.sanitizer.Sanitize(*title)
	*content = s.sanitizer.Sanitize(*content)

	switch {
	case *title == "":
		return models.NewValidationError("Title is required")
	case len(*title) > models.MaxPostTitleLen:
		return models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", models.MaxPostTitleLen))
	case *content == "":
		return models.NewValidationError("Content is required")
	}
	return nil
}

// CreatePost opens a thread under a game. Both the game and the author are
// checked before any write; a dangling reference aborts the create.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.cleanPostInput(&in.Title, &in.Content); err != nil {
		return nil, err
	}

	ok, err := s.gameRepo.Exists(ctx, in.GameID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewInvalidReferenceError("game", in.GameID)
	}

	ok, err = s.userRepo.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewInvalidReferenceError("user", in.UserID)
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		GameID:  in.GameID,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns one thread with its live comment count.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPostsByGame returns a game's threads, newest first.
func (s *PostService) ListPostsByGame(ctx context.Context, gameID uint) ([]models.Post, error) {
	ok, err := s.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("game", gameID)
	}
	return s.postRepo.ListByGame(ctx, gameID)
}

// UpdatePost edits a thread. Only the author may edit.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if err := s.cleanPostInput(&in.Title, &in.Content); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a thread and everything beneath it. The author or an
// admin may delete.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID && !in.IsAdmin {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.DeleteCascade(ctx, in.PostID)
}
