package service

import (
	"context"
	"fmt"

	"gamerforum/internal/cache"
	"gamerforum/internal/models"
	"gamerforum/internal/repository"
	"gamerforum/internal/sanitize"
)

const topGamesCount = 3

// GameService provides game catalog business logic.
type GameService struct {
	gameRepo     repository.GameRepository
	categoryRepo repository.CategoryRepository
	sanitizer    sanitize.Sanitizer
}

// GameInput is the payload accepted on game create and update.
type GameInput struct {
	Title       string  `json:"title"`
	Studio      string  `json:"studio"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image_url"`
	CategoryID  uint    `json:"category_id"`
}

// NewGameService returns a new GameService.
func NewGameService(
	gameRepo repository.GameRepository,
	categoryRepo repository.CategoryRepository,
	sanitizer sanitize.Sanitizer,
) *GameService {
	return &GameService{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		sanitizer:    sanitizer,
	}
}

func (s *GameService) cleanGameInput(in *GameInput) error {
	in.Title = s.sanitizer.Sanitize(in.Title)
	in.Studio = s.sanitizer.Sanitize(in.Studio)
	in.Description = s.sanitizer.Sanitize(in.Description)
	in.ImageURL = s.sanitizer.Sanitize(in.ImageURL)

	switch {
	case in.Title == "":
		return models.NewValidationError("Title is required")
	case len(in.Title) > models.MaxGameTitleLen:
		return models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", models.MaxGameTitleLen))
	case in.Studio == "":
		return models.NewValidationError("Studio is required")
	case len(in.Studio) > models.MaxGameStudioLen:
		return models.NewValidationError(fmt.Sprintf("Studio too long (max %d characters)", models.MaxGameStudioLen))
	case in.Description == "":
		return models.NewValidationError("Description is required")
	case len(in.Description) > models.MaxGameDescriptionLen:
		return models.NewValidationError(fmt.Sprintf("Description too long (max %d characters)", models.MaxGameDescriptionLen))
	case in.Rating < 0 || in.Rating > 10:
		return models.NewValidationError("Rating must be between 0 and 10")
	}
	return nil
}

// CreateGame validates, sanitizes, and persists a new game. The category
// reference is checked before any write.
func (s *GameService) CreateGame(ctx context.Context, in GameInput) (*models.Game, error) {
	if err := s.cleanGameInput(&in); err != nil {
		return nil, err
	}

	ok, err := s.categoryRepo.Exists(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewInvalidReferenceError("category", in.CategoryID)
	}

	game := &models.Game{
		Title:       in.Title,
		Studio:      in.Studio,
		Description: in.Description,
		Rating:      in.Rating,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// ListGames returns the flattened catalog, best rated first, ties broken by
// title descending.
func (s *GameService) ListGames(ctx context.Context) ([]models.GameQueryModel, error) {
	var games []models.GameQueryModel
	err := cache.Aside(ctx, cache.GamesListKey, &games, cache.ListTTL, func() error {
		var err error
		games, err = s.gameRepo.ListProjected(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ListTopGames returns the three best rated games, a prefix of ListGames.
func (s *GameService) ListTopGames(ctx context.Context) ([]models.GameQueryModel, error) {
	var games []models.GameQueryModel
	err := cache.Aside(ctx, cache.TopGamesKey, &games, cache.TopGamesTTL, func() error {
		var err error
		games, err = s.gameRepo.ListTop(ctx, topGamesCount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ListGamesByCategory returns the flattened games in one category.
func (s *GameService) ListGamesByCategory(ctx context.Context, categoryID uint) ([]models.GameQueryModel, error) {
	ok, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("category", categoryID)
	}
	return s.gameRepo.ListByCategory(ctx, categoryID)
}

// FindGameByName looks a game up by exact title. Missing titles are a
// NotFound error, never a nil result.
func (s *GameService) FindGameByName(ctx context.Context, title string) (*models.GameQueryModel, error) {
	title = s.sanitizer.Sanitize(title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	return s.gameRepo.FindByTitle(ctx, title)
}

// GetGame returns one game row by id.
func (s *GameService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	return s.gameRepo.GetByID(ctx, id)
}

// GetGameModel returns the editable shape of a game together with all
// selectable categories, for edit forms.
func (s *GameService) GetGameModel(ctx context.Context, id uint) (*models.GameModel, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.GameModel{
		Title:       game.Title,
		Studio:      game.Studio,
		Description: game.Description,
		Rating:      game.Rating,
		ImageURL:    game.ImageURL,
		CategoryID:  game.CategoryID,
		Categories:  categories,
	}, nil
}

// UpdateGame re-validates and overwrites all editable fields of the game.
func (s *GameService) UpdateGame(ctx context.Context, id uint, in GameInput) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cleanGameInput(&in); err != nil {
		return nil, err
	}

	if in.CategoryID != game.CategoryID {
		ok, err := s.categoryRepo.Exists(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.NewInvalidReferenceError("category", in.CategoryID)
		}
	}

	game.Title = in.Title
	game.Studio = in.Studio
	game.Description = in.Description
	game.Rating = in.Rating
	game.ImageURL = in.ImageURL
	game.CategoryID = in.CategoryID

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes the game and, transitively, all its posts, their
// comments, and those comments' votes in a single transaction.
func (s *GameService) DeleteGame(ctx context.Context, id uint) error {
	return s.gameRepo.DeleteCascade(ctx, id)
}

// ListCategories returns every category.
func (s *GameService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory adds a new category.
func (s *GameService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = s.sanitizer.Sanitize(name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
