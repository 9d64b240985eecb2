package spreader

import (
	"errors"
	"fmt"
	"mime/multipart"

	"spreader-detector/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for spreader analyses.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the analysis routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/analysis")
	group.Post("/", h.HandleAnalyze)
	group.Get("/:id", h.HandleGetRun)
	group.Get("/:id/report", h.HandleGetReport)
}

// HandleAnalyze runs the pipeline on uploaded files.
// @Summary Analyze Meetings
// @Description Propagates infection probability from the origin through the uploaded meetings and classifies every person.
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param people formData file true "People file (<name> <id> <age> per line)"
// @Param meetings formData file true "Meetings file (origin id, then <infector> <infected> <distance> <duration> per line)"
// @Param publish query boolean false "Upload the report to storage"
// @Success 200 {object} Analysis "Analysis"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Invalid Input"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /analysis [post]
func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	people, err := openFormFile(c, "people")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer people.Close()

	meetings, err := openFormFile(c, "meetings")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer meetings.Close()

	analysis, err := h.service.Analyze(people, meetings)
	if err != nil {
		l.Warn("Analysis rejected", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	l.Info("Analysis completed", zap.String("run_id", analysis.RunID), zap.Int("people", len(analysis.Exposures)))

	if h.service.repo != nil {
		if err := h.service.Record(c.Context(), analysis); err != nil {
			l.Error("Failed to record analysis", zap.Error(err))
		}
	}

	if c.Query("publish") == "true" {
		if _, err := h.service.Publish(c.Context(), analysis); err != nil {
			l.Error("Failed to publish report", zap.Error(err))
			return c.Status(statusFor(err)).JSON(fiber.Map{
				"error":  "Failed to publish report",
				"run_id": analysis.RunID,
			})
		}
	}

	return c.JSON(analysis)
}

// HandleGetRun returns a recorded analysis.
// @Summary Get Analysis
// @Description Returns a previously recorded analysis.
// @Tags analysis
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} Analysis "Analysis"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Database Unavailable"
// @Router /analysis/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	analysis, err := h.service.Lookup(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Run lookup failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(analysis)
}

// HandleGetReport returns a published report.
// @Summary Get Report
// @Description Downloads the published report of a run from storage.
// @Tags analysis
// @Produce plain
// @Param id path string true "Run ID"
// @Success 200 {string} string "Report"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /analysis/{id}/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.FetchReport(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Report download failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(data)
}

func openFormFile(c *fiber.Ctx, field string) (multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %s file: %w", field, err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file: %w", field, err)
	}
	return f, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMalformedRecord),
		errors.Is(err, ErrUnknownIdentifier),
		errors.Is(err, ErrDuplicateIdentifier),
		errors.Is(err, ErrInvalidMeeting):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrInputFile):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrRunNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDatabaseUnavailable), errors.Is(err, ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

