package handlers

import (
	"cardpay/internal/services/payment"
	"cardpay/internal/utils/response"
	"cardpay/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	paymentService payment.Service
	validator      *validation.Validator
	log            zerolog.Logger
}

func NewPaymentHandler(paymentService payment.Service, v *validation.Validator, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      v,
		log:            log,
	}
}

// PointOfSale handles card-present purchases.
func (h *PaymentHandler) PointOfSale(c *fiber.Ctx) error {
	var input payment.PointOfSaleRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.validator.Struct(input); err != nil {
		return writeError(c, h.log, err)
	}

	if err := h.paymentService.AuthorizePointOfSale(c.UserContext(), input); err != nil {
		return writeError(c, h.log, err)
	}

	return response.Created(c, "Payment authorized")
}

// Online handles card-not-present purchases.
func (h *PaymentHandler) Online(c *fiber.Ctx) error {
	var input payment.OnlineRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.validator.Struct(input); err != nil {
		return writeError(c, h.log, err)
	}

	if err := h.paymentService.AuthorizeOnline(c.UserContext(), input); err != nil {
		return writeError(c, h.log, err)
	}

	return response.Created(c, "Payment authorized")
}
