package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookapi/internal/http/middleware"
	"bookapi/internal/service"
)

// CreateReview godoc
// @Summary Review a book
// @Description The author is always the authenticated user.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param body body service.ReviewInput true "Review"
// @Success 201 {object} model.Review
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /books/{id}/reviews [post]
func CreateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		u := middleware.Principal(c)
		if u == nil {
			return unauthorized(c, "Not authenticated")
		}

		var in service.ReviewInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		r, err := svc.Create(c.UserContext(), id, u.ID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// ListReviews godoc
// @Summary List a book's reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {array} model.Review
// @Failure 404 {object} errorPayload
// @Router /books/{id}/reviews [get]
func ListReviews(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		reviews, err := svc.List(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(reviews)
	}
}
