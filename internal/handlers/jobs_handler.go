package handlers

import (
	"log/slog"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/services"
	"github.com/gofiber/fiber/v2"
)

type JobsHandler struct {
	jobService *services.JobService
}

func NewJobsHandler(jobService *services.JobService) *JobsHandler {
	return &JobsHandler{jobService: jobService}
}

// RunJobs triggers one batch-claim cycle. The route is guarded by the cron
// secret middleware; scheduling lives outside the process.
func (h *JobsHandler) RunJobs(c *fiber.Ctx) error {
	processed, err := h.jobService.RunBatch()
	if err != nil {
		slog.Error("job batch aborted", "action", "run_jobs", "error", err.Error(), "processed", processed)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Job batch failed"})
	}
	return c.JSON(dto.RunJobsResponse{Processed: processed})
}
