package server

import (
	"gamerforum/internal/models"
	"gamerforum/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CastVote handles POST /api/comments/:id/votes
// @Summary Vote on a comment
// @Description Casting again on the same comment replaces the previous vote's direction
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body object{type=string} true "Vote ('up' or 'down')"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /comments/{id}/votes [post]
func (s *Server) CastVote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errInvalidBody())
	}

	if err := s.voteService.CastVote(c.Context(), service.CastVoteInput{
		UserID:    userID,
		CommentID: commentID,
		Type:      models.VoteType(req.Type),
	}); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RetractVote handles DELETE /api/comments/:id/votes
// @Summary Withdraw a vote on a comment
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id}/votes [delete]
func (s *Server) RetractVote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.voteService.RetractVote(c.Context(), userID, commentID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
