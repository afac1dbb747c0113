package server

import (
	"fritter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetVerification handles GET /api/verify and GET /api/verify?username=.
// Without a username it reports the authenticated user's own status.
// @Summary Look up verification status
// @Tags verify
// @Produce json
// @Param username query string false "Username to look up"
// @Success 200 {object} object{message=string,verification=object}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /verify [get]
func (s *Server) GetVerification(c *fiber.Ctx) error {
	username := c.Query("username")
	if username != "" {
		user, err := s.verificationService.StatusByUsername(c.Context(), username)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":      "Verification status for " + username,
			"verification": verificationToView(user),
		})
	}

	userID, ok := s.optionalUserID(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}
	user, err := s.verificationService.Status(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Your verification status",
		"verification": verificationToView(user),
	})
}

// DeclareVerification handles PUT /api/verify
// @Summary Declare identity and become verified
// @Tags verify
// @Accept json
// @Produce json
// @Param request body object{name=string,age=string} true "Declared identity"
// @Success 200 {object} object{message=string,user=object}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /verify [put]
func (s *Server) DeclareVerification(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name string `json:"name"`
		Age  string `json:"age"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.verificationService.Declare(c.Context(), userID, req.Name, req.Age)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "You are now verified",
		"user":    verificationToView(user),
	})
}

// GetVerificationHistory handles GET /api/verify/history. Declarations stay
// on record after a revoke, so the history can outlive the current status.
// @Summary List the authenticated user's past declarations
// @Tags verify
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,declarations=[]object}
// @Failure 401 {object} models.ErrorResponse
// @Router /verify/history [get]
func (s *Server) GetVerificationHistory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	records, err := s.verificationService.History(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Your verification history",
		"declarations": declarationsToViews(records),
	})
}

// RevokeVerification handles DELETE /api/verify
// @Summary Withdraw verification records
// @Tags verify
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /verify [delete]
func (s *Server) RevokeVerification(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.verificationService.Revoke(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Your verification records were removed",
	})
}
