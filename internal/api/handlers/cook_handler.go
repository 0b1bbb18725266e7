package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/domain"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/internal/api/presenters"
	"github.com/jkrishnancp/KeralaKitchen-SmartPantryApp/pkg/cook"
)

type (
	CookHandler interface {
		GetSuggestions(c *fiber.Ctx) error
		GetPairings(c *fiber.Ctx) error
		GetCompleteMeal(c *fiber.Ctx) error
	}

	cookHandler struct {
		cookService cook.CookService
	}
)

func NewCookHandler(cookService cook.CookService) CookHandler {
	return &cookHandler{cookService: cookService}
}

// GetSuggestions accepts an optional ?threshold= query for the near-match
// cut; zero means the default.
func (h *cookHandler) GetSuggestions(c *fiber.Ctx) error {
	threshold, err := strconv.ParseFloat(c.Query("threshold", "0"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, domain.ErrInvalidThreshold)
	}

	res, err := h.cookService.GetSuggestions(c.Context(), threshold)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidThreshold) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}

func (h *cookHandler) GetPairings(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	suggestions, err := h.cookService.GetPairings(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPairings, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPairings, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"suggestions": suggestions}, fiber.StatusOK, domain.MessageSuccessGetPairings)
}

func (h *cookHandler) GetCompleteMeal(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	meal, err := h.cookService.GetCompleteMeal(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCompleteMeal, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCompleteMeal, err)
	}

	return presenters.SuccessResponse(c, meal, fiber.StatusOK, domain.MessageSuccessGetCompleteMeal)
}
