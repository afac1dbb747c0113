package server

import (
	"errors"
	"strings"
	"unicode"

	"fritter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "freetId" -> "freet ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// respondServiceError maps AppError codes onto the default statuses for this
// API. Routes whose contract deviates handle the deviating code before
// falling back here.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsCode(err, "VALIDATION_ERROR"):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case models.IsCode(err, "NOT_FOUND"):
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case models.IsCode(err, "CONFLICT"):
		return models.RespondWithError(c, fiber.StatusForbidden, err)
	case models.IsCode(err, "UNAUTHORIZED"):
		return models.RespondWithError(c, fiber.StatusForbidden, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}
