package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/soratabi/travel-assistant-backend/internal/models"
	"github.com/soratabi/travel-assistant-backend/internal/services"
	"github.com/soratabi/travel-assistant-backend/utils"
)

func (h *Handler) Translate(c *fiber.Ctx) error {
	var req models.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.translator.Translate(c.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) || errors.Is(err, services.ErrMissingTargetLanguage) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Text and target language are required")
		}
		return utils.ErrorDetailResponse(c, fiber.StatusInternalServerError, "Failed to translate", err.Error())
	}

	// Failures are folded into the response with the original text kept as a
	// usable translation, so this is always 200 once input is valid.
	return c.JSON(resp)
}
