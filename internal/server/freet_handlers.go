package server

import (
	"fritter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFreets handles GET /api/freets and GET /api/freets?author=username.
// The route is public; what the response contains depends on who is asking.
// @Summary List freets
// @Description List all visible freets, optionally restricted to one author
// @Tags freets
// @Produce json
// @Param author query string false "Author username"
// @Success 200 {object} object{message=string,freets=[]object}
// @Failure 404 {object} models.ErrorResponse
// @Router /freets [get]
func (s *Server) GetFreets(c *fiber.Ctx) error {
	viewer := s.viewer(c)

	author := c.Query("author")
	if author != "" {
		freets, err := s.freetService.FeedByAuthor(c.Context(), author, viewer)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Freets by " + author,
			"freets":  freetsToViews(freets),
		})
	}

	freets, err := s.freetService.Feed(c.Context(), viewer)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "All freets",
		"freets":  freetsToViews(freets),
	})
}

// GetFollowingFeed handles GET /api/freets/feed
// @Summary Freets from followed accounts
// @Tags freets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,freets=[]object}
// @Failure 401 {object} models.ErrorResponse
// @Router /freets/feed [get]
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	viewer := s.viewer(c)

	freets, err := s.freetService.FollowingFeed(c.Context(), userID, viewer)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Freets from accounts you follow",
		"freets":  freetsToViews(freets),
	})
}

// CreateFreet handles POST /api/freets
// @Summary Publish a freet
// @Tags freets
// @Accept json
// @Produce json
// @Param request body object{content=string} true "Freet content"
// @Success 201 {object} object{message=string,freet=object}
// @Failure 400 {object} models.ErrorResponse
// @Router /freets [post]
func (s *Server) CreateFreet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	freet, err := s.freetService.Publish(c.Context(), userID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your freet was created successfully",
		"freet":   freetToView(freet),
	})
}

// EditFreet handles PUT /api/freets/:freetId
// @Summary Edit a freet
// @Tags freets
// @Accept json
// @Produce json
// @Param freetId path int true "Freet ID"
// @Param request body object{content=string} true "New content"
// @Success 200 {object} object{message=string,freet=object}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /freets/{freetId} [put]
func (s *Server) EditFreet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	freetID, err := s.parseID(c, "freetId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	freet, editErr := s.freetService.Edit(c.Context(), freetID, userID, req.Content)
	if editErr != nil {
		return respondServiceError(c, editErr)
	}

	return c.JSON(fiber.Map{
		"message": "Your freet was updated successfully",
		"freet":   freetToView(freet),
	})
}

// DeleteFreet handles DELETE /api/freets/:freetId
// @Summary Delete a freet
// @Tags freets
// @Produce json
// @Param freetId path int true "Freet ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /freets/{freetId} [delete]
func (s *Server) DeleteFreet(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	freetID, err := s.parseID(c, "freetId")
	if err != nil {
		return nil
	}

	if err := s.freetService.Remove(c.Context(), freetID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Your freet was deleted successfully",
	})
}

// RestrictFreetAge handles POST /api/freets/:freetId/age-restrict
// @Summary Mark a freet as age-restricted
// @Tags freets
// @Produce json
// @Param freetId path int true "Freet ID"
// @Success 200 {object} object{message=string,freet=object}
// @Failure 404 {object} models.ErrorResponse
// @Router /freets/{freetId}/age-restrict [post]
func (s *Server) RestrictFreetAge(c *fiber.Ctx) error {
	freetID, err := s.parseID(c, "freetId")
	if err != nil {
		return nil
	}

	freet, restrictErr := s.freetService.RestrictAge(c.Context(), freetID)
	if restrictErr != nil {
		return respondServiceError(c, restrictErr)
	}

	return c.JSON(fiber.Map{
		"message": "The freet is now age-restricted",
		"freet":   freetToView(freet),
	})
}
