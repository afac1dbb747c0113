package server

import (
	"fritter/internal/models"

	"github.com/gofiber/fiber/v2"
)

type reactionRequest struct {
	ID uint `json:"id"`
}

func parseReactionRequest(c *fiber.Ctx) (uint, bool) {
	var req reactionRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A freet id is required"))
		return 0, false
	}
	return req.ID, true
}

// AddReaction returns the handler for POST /api/reactions/like and
// POST /api/reactions/dislike.
// @Summary React to a freet
// @Tags reactions
// @Accept json
// @Produce json
// @Param request body object{id=int} true "Freet ID"
// @Success 201 {object} object{message=string,reaction=object}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reactions/like [post]
func (s *Server) AddReaction(liked bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)
		freetID, ok := parseReactionRequest(c)
		if !ok {
			return nil
		}

		reaction, _, err := s.reactionService.React(c.Context(), userID, freetID, liked)
		if err != nil {
			return respondServiceError(c, err)
		}

		username, _ := c.Locals("username").(string)
		view := reactionToView(username, reaction)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Your " + view.Kind + " was recorded",
			"reaction": view,
		})
	}
}

// RemoveReaction returns the handler for DELETE /api/reactions/like and
// DELETE /api/reactions/dislike. Success is 201, matching the add path.
// @Summary Withdraw a reaction
// @Tags reactions
// @Accept json
// @Produce json
// @Param request body object{id=int} true "Freet ID"
// @Success 201 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reactions/like [delete]
func (s *Server) RemoveReaction(liked bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)
		freetID, ok := parseReactionRequest(c)
		if !ok {
			return nil
		}

		if _, err := s.reactionService.Unreact(c.Context(), userID, freetID, liked); err != nil {
			return respondServiceError(c, err)
		}

		kind := "dislike"
		if liked {
			kind = "like"
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Your " + kind + " was removed",
		})
	}
}
