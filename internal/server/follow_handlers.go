package server

import (
	"fritter/internal/models"

	"github.com/gofiber/fiber/v2"
)

type followRequest struct {
	Username string `json:"username"`
}

// GetFollowers handles GET /api/follows/followers
// @Summary List accounts following the authenticated user
// @Tags follows
// @Produce json
// @Success 200 {object} object{message=string,followers=[]object}
// @Failure 401 {object} models.ErrorResponse
// @Router /follows/followers [get]
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username, _ := c.Locals("username").(string)

	follows, err := s.followService.Followers(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	views := followsToViews(follows)
	for i := range views {
		views[i].Following = username
	}
	return c.JSON(fiber.Map{
		"message":   "Accounts following you",
		"followers": views,
	})
}

// GetFollowing handles GET /api/follows/following
// @Summary List accounts the authenticated user follows
// @Tags follows
// @Produce json
// @Success 200 {object} object{message=string,following=[]object}
// @Failure 401 {object} models.ErrorResponse
// @Router /follows/following [get]
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username, _ := c.Locals("username").(string)

	follows, err := s.followService.Following(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	views := followsToViews(follows)
	for i := range views {
		views[i].Follower = username
	}
	return c.JSON(fiber.Map{
		"message":   "Accounts you follow",
		"following": views,
	})
}

// CreateFollow handles POST /api/follows
// @Summary Follow a user
// @Tags follows
// @Accept json
// @Produce json
// @Param request body object{username=string} true "Target username"
// @Success 201 {object} object{message=string,follow=object}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /follows [post]
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username, _ := c.Locals("username").(string)

	var req followRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	follow, err := s.followService.Follow(c.Context(), userID, req.Username)
	if err != nil {
		// The only conflict that reaches here is a self-follow; duplicate
		// edges surface as not-found.
		if models.IsCode(err, "CONFLICT") {
			return models.RespondWithError(c, fiber.StatusConflict, err)
		}
		return respondServiceError(c, err)
	}

	view := followToView(follow)
	view.Follower = username
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "You are now following " + req.Username,
		"follow":  view,
	})
}

// DeleteFollow handles DELETE /api/follows
// @Summary Unfollow a user
// @Tags follows
// @Accept json
// @Produce json
// @Param request body object{username=string} true "Target username"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /follows [delete]
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req followRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.followService.Unfollow(c.Context(), userID, req.Username); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "You are no longer following " + req.Username,
	})
}

// RemoveFollower handles DELETE /api/follows/remove
// @Summary Remove a follower
// @Tags follows
// @Accept json
// @Produce json
// @Param request body object{username=string} true "Follower username"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /follows/remove [delete]
func (s *Server) RemoveFollower(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req followRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.followService.RemoveFollower(c.Context(), userID, req.Username); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": req.Username + " is no longer following you",
	})
}
