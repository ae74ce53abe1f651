package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pdfsummarizer/internal/http/middleware"
)

// Client-facing error messages.
const (
	msgNoFile        = "No PDF file uploaded"
	hintNoFile       = "Send the PDF file with field name 'pdf' in form-data"
	msgUploadError   = "File upload error"
	detailsUpload    = "Make sure you're sending the PDF file with field name 'pdf'"
	msgOnlyPDF       = "Only PDF files are allowed"
	msgInvalidPDF    = "Uploaded file is not a valid PDF"
	msgInvalidStyle  = "Invalid summaryStyle"
	msgSummaryFailed = "Failed to process PDF or generate summary"
	msgQuizFailed    = "Failed to process PDF or generate quiz"
	msgTooLarge      = "File too large"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Error     string `json:"error"`
	Hint      string `json:"hint,omitempty"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// apiError is returned by upload parsing and rendered by writeAPIError.
type apiError struct {
	status  int
	message string
	hint    string
	details string
}

func (e *apiError) Error() string { return e.message }

func badRequest(message string) *apiError {
	return &apiError{status: fiber.StatusBadRequest, message: message}
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     message,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

func writeAPIError(c *fiber.Ctx, e *apiError) error {
	return c.Status(e.status).JSON(errorPayload{
		Error:     e.message,
		Hint:      e.hint,
		Details:   e.details,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if middleware.RequestIDFromCtx(c) == "" {
			middleware.AssignRequestID(c)
		}

		var ae *apiError
		if errors.As(err, &ae) {
			return writeAPIError(c, ae)
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, msgTooLarge)
		default:
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}
}
