package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"bookapi/internal/http/middleware"
	"bookapi/internal/service"
	"bookapi/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorFields(c, status, code, message, nil)
}

func writeErrorFields(c *fiber.Ctx, status int, code, message string, fields map[string]string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	}
	return c.Status(status).JSON(res)
}

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", message)
}

// respondError translates service errors into the response envelope.
// Anything unrecognised is logged and reported as a 500.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *validation.Error
	var fErr *fiber.Error

	switch {
	case errors.As(err, &vErr):
		return writeErrorFields(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "request validation failed", vErr.Fields)
	case errors.Is(err, service.ErrBookNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", bookNotFoundMessage(c))
	case errors.Is(err, service.ErrCoverNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "book has no cover")
	case errors.Is(err, service.ErrUsernameTaken):
		return writeError(c, fiber.StatusBadRequest, "USERNAME_TAKEN", "Username already registered")
	case errors.Is(err, service.ErrEmailTaken):
		return writeError(c, fiber.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return unauthorized(c, "Incorrect username or password")
	case errors.Is(err, service.ErrInvalidToken):
		return unauthorized(c, "Could not validate credentials")
	case errors.Is(err, service.ErrUnsupportedCover):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "cover must be an image")
	case errors.Is(err, service.ErrCompletionFailed):
		trace.SpanFromContext(c.UserContext()).RecordError(err)
		slog.Default().Warn("completion failed", "request_id", requestIDFromCtx(c), "error", err)
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "summary generation failed")
	case errors.Is(err, service.ErrStorageUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "cover storage unavailable")
	case errors.As(err, &fErr):
		return fiberError(c, fErr)
	default:
		trace.SpanFromContext(c.UserContext()).RecordError(err)
		slog.Default().Error("unhandled error", "request_id", requestIDFromCtx(c), "path", c.Path(), "error", err)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func bookNotFoundMessage(c *fiber.Ctx) string {
	if id := c.Params("id"); id != "" {
		return fmt.Sprintf("Book with id %s not found", id)
	}
	return "Book not found"
}

func fiberError(c *fiber.Ctx, e *fiber.Error) error {
	switch e.Code {
	case fiber.StatusBadRequest:
		return writeError(c, e.Code, "BAD_REQUEST", "bad request")
	case fiber.StatusUnauthorized:
		return unauthorized(c, e.Message)
	case fiber.StatusForbidden:
		return writeError(c, e.Code, "FORBIDDEN", e.Message)
	case fiber.StatusNotFound:
		return writeError(c, e.Code, "NOT_FOUND", "resource not found")
	case fiber.StatusMethodNotAllowed:
		return writeError(c, e.Code, "METHOD_NOT_ALLOWED", "method not allowed")
	case fiber.StatusRequestEntityTooLarge:
		return writeError(c, e.Code, "PAYLOAD_TOO_LARGE", "request body too large")
	case fiber.StatusUnsupportedMediaType:
		return writeError(c, e.Code, "UNSUPPORTED_MEDIA_TYPE", "unsupported media type")
	case fiber.StatusUnprocessableEntity:
		return writeError(c, e.Code, "VALIDATION_ERROR", e.Message)
	case fiber.StatusTooManyRequests:
		return writeError(c, e.Code, "TOO_MANY_REQUESTS", "too many requests")
	case fiber.StatusServiceUnavailable:
		return writeError(c, e.Code, "SERVICE_UNAVAILABLE", "dependency unavailable")
	default:
		if e.Code < fiber.StatusInternalServerError {
			return writeError(c, e.Code, "BAD_REQUEST", e.Message)
		}
		return writeError(c, e.Code, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return respondError(c, err)
	}
}
