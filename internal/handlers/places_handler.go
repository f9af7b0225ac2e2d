package handlers

import (
	"errors"
	"strconv"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PlacesHandler struct {
	placeService  *services.PlaceService
	nearbyService *services.NearbyService
}

func NewPlacesHandler(placeService *services.PlaceService, nearbyService *services.NearbyService) *PlacesHandler {
	return &PlacesHandler{placeService: placeService, nearbyService: nearbyService}
}

func (h *PlacesHandler) Nearby(c *fiber.Ctx) error {
	params, fields := parseNearbyQuery(c)
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: true, Message: "Invalid query", Fields: fields,
		})
	}

	results, err := h.nearbyService.Search(params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to search nearby places"})
	}
	return c.JSON(results)
}

func (h *PlacesHandler) GetPlace(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid place ID"})
	}

	detail, err := h.placeService.Detail(id)
	if err != nil {
		if errors.Is(err, services.ErrPlaceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Place not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch place"})
	}
	return c.JSON(detail)
}

func parseNearbyQuery(c *fiber.Ctx) (services.NearbyParams, map[string]string) {
	fields := make(map[string]string)
	params := services.NearbyParams{RadiusM: services.DefaultRadiusM}

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		fields["lat"] = "must be a number between -90 and 90"
	}
	params.Lat = lat

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		fields["lng"] = "must be a number between -180 and 180"
	}
	params.Lng = lng

	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius < services.MinRadiusM || radius > services.MaxRadiusM {
			fields["radius"] = "must be a number between 100 and 50000"
		} else {
			params.RadiusM = radius
		}
	}

	if raw := c.Query("minScore"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil || minScore < 0 || minScore > 100 {
			fields["minScore"] = "must be an integer between 0 and 100"
		} else {
			params.MinScore = &minScore
		}
	}

	params.HasLock = boolQuery(c.Query("hasLock"))
	params.HasTP = boolQuery(c.Query("hasTp"))

	return params, fields
}

func boolQuery(v string) bool {
	return v == "true" || v == "1"
}
