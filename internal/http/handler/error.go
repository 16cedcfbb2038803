package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"libraryapi/internal/criteria"
	"libraryapi/internal/http/middleware"
	"libraryapi/internal/service"
	"libraryapi/internal/specification"
	"libraryapi/internal/validator"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                     `json:"code"`
	Message string                     `json:"message"`
	Details []validator.ValidationError `json:"details,omitempty"`
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
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

func writeValidationError(c *fiber.Ctx, details validator.ValidationErrors) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "request body failed validation",
			Details: details,
		},
	}
	return c.Status(fiber.StatusBadRequest).JSON(res)
}

// writeInternalError hides err from the client and hands it to the request logger.
func writeInternalError(c *fiber.Ctx, err error) error {
	c.Locals(middleware.ErrorLocalKey, err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// writeServiceError maps an error returned by an entity service to a response.
func writeServiceError(c *fiber.Ctx, entity string, err error) error {
	var verrs validator.ValidationErrors
	var cerr *criteria.Error
	switch {
	case errors.As(err, &verrs):
		return writeValidationError(c, verrs)
	case errors.As(err, &cerr):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CRITERIA", cerr.Error())
	case errors.Is(err, specification.ErrUnknownField):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CRITERIA", err.Error())
	case errors.Is(err, service.ErrInvalidPage):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE", "page is out of range")
	case errors.Is(err, service.ErrIDNotAllowed):
		return writeError(c, fiber.StatusBadRequest, "ID_NOT_ALLOWED", "a new "+entity+" cannot already have an id")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "id is required")
	case errors.Is(err, service.ErrIDMismatch):
		return writeError(c, fiber.StatusBadRequest, "ID_MISMATCH", "id in body does not match id in path")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", entity+" not found")
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", entity+" conflicts with an existing one")
	default:
		return writeInternalError(c, err)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusUnsupportedMediaType:
			return writeError(c, status, "UNSUPPORTED_MEDIA_TYPE", "unsupported media type")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
