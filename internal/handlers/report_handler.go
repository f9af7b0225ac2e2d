package handlers

import (
	"errors"
	"strconv"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/middleware"
	"github.com/asddataking/shittter/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) SubmitReport(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	reportID, err := h.reportService.Submit(&req, middleware.GetFingerprint(c))
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Error: true, Message: "Invalid report submission", Fields: validationErr.Fields,
			})
		}
		var rateErr *services.RateLimitError
		if errors.As(err, &rateErr) {
			c.Set("Retry-After", strconv.Itoa(rateErr.RetryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.RateLimitResponse{
				Error: true, Message: "Too many reports. Try again later.", RetryAfter: rateErr.RetryAfter,
			})
		}
		if errors.Is(err, services.ErrPlaceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Place not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to submit report"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitReportResponse{Success: true, ReportID: reportID})
}
