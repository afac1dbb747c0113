package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:username
// @Summary Public profile lookup
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} object{user=object}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": profileToView(user),
	})
}

// GetMyProfile handles GET /api/users/me/profile
// @Summary Authenticated user's own record
// @Tags users
// @Produce json
// @Success 200 {object} object{user=models.User}
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me/profile [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// ListUsers handles GET /api/users with limit/offset paging.
// @Summary List registered users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} object{users=[]object}
// @Failure 401 {object} models.ErrorResponse
// @Router /users [get]
func (s *Server) ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userService.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": profilesToViews(users),
	})
}

// DeleteMyAccount handles DELETE /api/users/me. Everything hanging off the
// account goes with it: freets, follow edges, reactions, verification
// records.
// @Summary Delete the authenticated account
// @Tags users
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [delete]
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.userService.DeleteAccount(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Your account was deleted successfully",
	})
}
