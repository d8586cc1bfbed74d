package handlers

import (
	"cardpay/internal/services/recharge"
	"cardpay/internal/utils/response"
	"cardpay/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	rechargeService recharge.Service
	validator       *validation.Validator
	log             zerolog.Logger
}

func NewAdminHandler(rechargeService recharge.Service, v *validation.Validator, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		rechargeService: rechargeService,
		validator:       v,
		log:             log,
	}
}

type rechargeInput struct {
	Amount decimal.Decimal `json:"amount" validate:"money"`
}

// RechargeCard credits a physical card (Admin only).
func (h *AdminHandler) RechargeCard(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID <= 0 {
		return response.BadRequest(c, "Invalid card ID")
	}

	var input rechargeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.validator.Struct(input); err != nil {
		return writeError(c, h.log, err)
	}

	r, err := h.rechargeService.Recharge(c.UserContext(), uint(cardID), input.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Card recharged",
		"recharge": r,
	})
}
