package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bookapi/internal/service"
)

// parseID reads a positive integer :id path parameter.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// CreateBook godoc
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.BookInput true "Book"
// @Success 201 {object} model.Book
// @Failure 403 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /books [post]
func CreateBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BookInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		b, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// ListBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (default 100, max 1000)"
// @Param genre query string false "Genre substring"
// @Param author query string false "Author substring"
// @Success 200 {array} model.Book
// @Router /books [get]
func ListBooks(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q service.BookQuery
		if err := c.QueryParser(&q); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "invalid query parameters")
		}

		books, err := svc.List(c.UserContext(), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(books)
	}
}

// GetBook godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} model.Book
// @Failure 404 {object} errorPayload
// @Router /books/{id} [get]
func GetBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

// UpdateBook godoc
// @Summary Update a book
// @Description Only the provided fields change.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param body body service.BookPatch true "Fields to change"
// @Success 200 {object} model.Book
// @Failure 404 {object} errorPayload
// @Router /books/{id} [put]
func UpdateBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		var patch service.BookPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		b, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

// DeleteBook godoc
// @Summary Delete a book and its reviews
// @Tags books
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /books/{id} [delete]
func DeleteBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadCover godoc
// @Summary Upload a cover image (multipart/form-data, field name: file)
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param file formData file true "Image"
// @Success 200 {object} model.Book
// @Failure 415 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /books/{id}/cover [put]
func UploadCover(svc service.CoverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		b, err := svc.Upload(c.UserContext(), id, service.CoverUpload{
			Body:        f,
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

// GetCover godoc
// @Summary Redirect to the cover image
// @Tags books
// @Param id path int true "Book ID"
// @Success 307
// @Failure 404 {object} errorPayload
// @Router /books/{id}/cover [get]
func GetCover(svc service.CoverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}

		url, err := svc.URL(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.Redirect(url, fiber.StatusTemporaryRedirect)
	}
}
