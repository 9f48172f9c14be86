package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	decoders    *services.DecoderRegistry
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	decoders *services.DecoderRegistry,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		decoders:    decoders,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/v1/analyze. The resume and job
// description arrive either as multipart files ("resume",
// "job_description") or as a JSON body with raw text fields. Documents are
// processed entirely in memory; nothing is persisted.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeText, jobText, err := h.extractDocuments(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report, err := h.analyzer.Analyze(resumeText, jobText)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyDocument):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Please upload a non-empty document: " + err.Error(),
			})
		case errors.Is(err, models.ErrInsufficientKeywords):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Please upload a longer job description: " + err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to analyze documents",
			})
		}
	}

	return c.JSON(models.AnalyzeResponse{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Report:      report,
	})
}

func (h *AnalyzeHandler) extractDocuments(c *fiber.Ctx) (string, string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not a multipart request, fall back to JSON text fields.
		var req models.AnalyzeTextRequest
		if err := c.BodyParser(&req); err != nil {
			return "", "", fmt.Errorf("invalid request payload")
		}
		if req.ResumeText == "" {
			return "", "", fmt.Errorf("resume_text is required")
		}
		if req.JobDescriptionText == "" {
			return "", "", fmt.Errorf("job_description_text is required")
		}
		return req.ResumeText, req.JobDescriptionText, nil
	}

	resumeText, err := h.readFormFile(form, "resume")
	if err != nil {
		return "", "", err
	}

	jobText, err := h.readFormFile(form, "job_description")
	if err != nil {
		return "", "", err
	}

	return resumeText, jobText, nil
}

func (h *AnalyzeHandler) readFormFile(form *multipart.Form, field string) (string, error) {
	files, ok := form.File[field]
	if !ok || len(files) == 0 {
		return "", fmt.Errorf("missing %q file", field)
	}

	file := files[0]
	if file.Size > h.maxFileSize {
		return "", fmt.Errorf("%s file too large. Max size: %d bytes", field, h.maxFileSize)
	}

	decoder, err := h.decoders.DecoderFor(file.Filename)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s file: %w", field, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", field, err)
	}

	text, err := decoder.Decode(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s file: %w", field, err)
	}

	return text, nil
}
