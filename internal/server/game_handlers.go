package server

import (
	"gamerforum/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGames handles GET /api/games
// @Summary List the game catalog
// @Description Flattened listing with category names, best rated first
// @Tags games
// @Produce json
// @Success 200 {array} models.GameQueryModel
// @Router /games [get]
func (s *Server) GetGames(c *fiber.Ctx) error {
	games, err := s.gameService.ListGames(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(games)
}

// GetTopGames handles GET /api/games/top
// @Summary Three best rated games
// @Tags games
// @Produce json
// @Success 200 {array} models.GameQueryModel
// @Router /games/top [get]
func (s *Server) GetTopGames(c *fiber.Ctx) error {
	games, err := s.gameService.ListTopGames(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(games)
}

// SearchGameByName handles GET /api/games/search?title=...
// @Summary Find a game by exact title
// @Tags games
// @Produce json
// @Param title query string true "Game title"
// @Success 200 {object} models.GameQueryModel
// @Failure 404 {object} models.ErrorResponse
// @Router /games/search [get]
func (s *Server) SearchGameByName(c *fiber.Ctx) error {
	game, err := s.gameService.FindGameByName(c.Context(), c.Query("title"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(game)
}

// GetGame handles GET /api/games/:id
// @Summary Get one game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} models.ErrorResponse
// @Router /games/{id} [get]
func (s *Server) GetGame(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	game, err := s.gameService.GetGame(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(game)
}

// GetGameModel handles GET /api/games/:id/edit
// @Summary Editable game shape with selectable categories
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.GameModel
// @Failure 404 {object} models.ErrorResponse
// @Router /games/{id}/edit [get]
func (s *Server) GetGameModel(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	model, err := s.gameService.GetGameModel(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(model)
}

// CreateGame handles POST /api/games
// @Summary Add a game to the catalog
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GameInput true "Game"
// @Success 201 {object} models.Game
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /games [post]
func (s *Server) CreateGame(c *fiber.Ctx) error {
	var in service.GameInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody())
	}
	game, err := s.gameService.CreateGame(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// UpdateGame handles PUT /api/games/:id
// @Summary Edit a game
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body service.GameInput true "Game"
// @Success 200 {object} models.Game
// @Failure 404 {object} models.ErrorResponse
// @Router /games/{id} [put]
func (s *Server) UpdateGame(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var in service.GameInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody())
	}
	game, err := s.gameService.UpdateGame(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(game)
}

// DeleteGame handles DELETE /api/games/:id
// @Summary Delete a game and everything beneath it
// @Description Removes the game with all its posts, their comments, and those comments' votes
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /games/{id} [delete]
func (s *Server) DeleteGame(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.gameService.DeleteGame(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetCategories handles GET /api/categories
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.gameService.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// GetGamesByCategory handles GET /api/categories/:id/games
// @Summary Games in one category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.GameQueryModel
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id}/games [get]
func (s *Server) GetGamesByCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	games, err := s.gameService.ListGamesByCategory(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(games)
}

// CreateCategory handles POST /api/categories
// @Summary Add a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string} true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.ErrorResponse
// @Router /categories [post]
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errInvalidBody())
	}
	category, err := s.gameService.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
