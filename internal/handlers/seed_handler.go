package handlers

import (
	"log/slog"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	inserted, err := h.seedService.Seed()
	if err != nil {
		slog.Error("seeding failed", "action", "admin_seed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Seeding failed"})
	}
	return c.JSON(dto.SeedResponse{Success: true, Inserted: inserted})
}
