package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bookapi/internal/service"
)

// Recommendations godoc
// @Summary Recommend books
// @Description Falls back to the top rated books when nothing matches.
// @Tags recommendations
// @Produce json
// @Param user_id query int false "Exclude books this user reviewed"
// @Param preferred_genres query string false "Comma separated genres"
// @Param min_rating query number false "Minimum average rating (0-5)"
// @Success 200 {object} service.Recommendations
// @Failure 422 {object} errorPayload
// @Router /recommendations [get]
func Recommendations(svc service.RecommendationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.RecommendationInput{
			Genres: service.ParseGenres(c.Query("preferred_genres")),
		}

		// A malformed user_id disables the filter instead of failing the request.
		if raw := c.Query("user_id"); raw != "" {
			if uid, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				in.UserID = &uid
			}
		}

		if raw := c.Query("min_rating"); raw != "" {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return writeErrorFields(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "request validation failed",
					map[string]string{"min_rating": "must be a number"})
			}
			in.MinRating = &v
		}

		res, err := svc.Recommend(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
