package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookapi/internal/service"
)

// BookSummary godoc
// @Summary Book synopsis, rating statistics and review digest
// @Tags summaries
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} service.BookSummary
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /books/{id}/summary [get]
func BookSummary(svc service.SummaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		s, err := svc.BookSummary(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(s)
	}
}

// GenerateSummary godoc
// @Summary Summarize arbitrary book content
// @Tags summaries
// @Accept json
// @Produce json
// @Param body body service.GenerateInput true "Content"
// @Success 200 {object} service.GenerateResult
// @Failure 422 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /generate-summary [post]
func GenerateSummary(svc service.SummaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GenerateInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Generate(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
