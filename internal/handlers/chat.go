package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/soratabi/travel-assistant-backend/internal/models"
	"github.com/soratabi/travel-assistant-backend/internal/services"
	"github.com/soratabi/travel-assistant-backend/utils"
)

func (h *Handler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.chat.Respond(c.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Message is required")
		}
		return utils.ErrorDetailResponse(c, fiber.StatusInternalServerError, "Failed to generate response", err.Error())
	}

	return c.JSON(resp)
}
