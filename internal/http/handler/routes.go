package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"pdfsummarizer/internal/http/middleware"
	"pdfsummarizer/internal/providers"
	"pdfsummarizer/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.SummarizerService, info providers.ProviderInfo, log logrus.FieldLogger) {
	app.Get("/health", HealthCheck(info))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/summarize-pdf", SummarizePDF(svc, log))
	api.Post("/quiz-pdf", QuizPDF(svc, log))
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service health and the configured model
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(info providers.ProviderInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"provider": info.Name,
			"model":    info.Model,
		})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// SummarizePDF godoc
// @Summary Summarize a PDF
// @Description Extracts the text of the uploaded PDF and returns a bullet-point summary and a quiz built from it
// @Tags pdf
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Param summaryStyle formData string false "Summary length" Enums(brief, normal, detailed)
// @Success 200 {object} model.SummaryResult
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/summarize-pdf [post]
func SummarizePDF(svc service.SummarizerService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseUpload(c)
		if err != nil {
			return renderUploadError(c, err)
		}

		res, err := svc.Summarize(c.UserContext(), in)
		if err != nil {
			logFailure(c, log, in, err)
			return writeError(c, fiber.StatusInternalServerError, msgSummaryFailed)
		}
		return c.JSON(res)
	}
}

// QuizPDF godoc
// @Summary Generate a quiz from a PDF
// @Description Summarizes the uploaded PDF and returns only the multiple-choice quiz
// @Tags pdf
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Param summaryStyle formData string false "Summary length" Enums(brief, normal, detailed)
// @Success 200 {object} model.QuizResult
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/quiz-pdf [post]
func QuizPDF(svc service.SummarizerService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseUpload(c)
		if err != nil {
			return renderUploadError(c, err)
		}

		res, err := svc.Quiz(c.UserContext(), in)
		if err != nil {
			logFailure(c, log, in, err)
			return writeError(c, fiber.StatusInternalServerError, msgQuizFailed)
		}
		return c.JSON(res)
	}
}

func renderUploadError(c *fiber.Ctx, err error) error {
	var ae *apiError
	if errors.As(err, &ae) {
		return writeAPIError(c, ae)
	}
	return err
}

func logFailure(c *fiber.Ctx, log logrus.FieldLogger, in service.SummarizeInput, err error) {
	log.WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFromCtx(c),
		"filename":   in.Upload.Filename,
		"size":       in.Upload.Size,
		"style":      string(in.Style),
	}).WithError(err).Error("error processing PDF")
}
