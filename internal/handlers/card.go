package handlers

import (
	"cardpay/internal/services/balance"
	"cardpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type CardHandler struct {
	balanceService balance.Service
	log            zerolog.Logger
}

func NewCardHandler(balanceService balance.Service, log zerolog.Logger) *CardHandler {
	return &CardHandler{
		balanceService: balanceService,
		log:            log,
	}
}

// GetBalance returns the balance with payment and recharge history.
func (h *CardHandler) GetBalance(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID <= 0 {
		return response.BadRequest(c, "Invalid card ID")
	}

	statement, err := h.balanceService.Statement(c.UserContext(), uint(cardID))
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(statement)
}
