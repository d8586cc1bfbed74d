package payment

import "github.com/shopspring/decimal"

// PointOfSaleRequest is a card-present purchase. The card is known by id and
// the holder proves possession with the account password.
type PointOfSaleRequest struct {
	CardID     uint            `json:"cardId" validate:"required"`
	AmountPaid decimal.Decimal `json:"amountPaid" validate:"money"`
	Password   string          `json:"password" validate:"required,len=4,numeric"`
	BusinessID uint            `json:"businessId" validate:"required"`
}

// OnlineRequest is a card-not-present purchase. The card is resolved by the
// printed details and the holder proves possession with the security code.
type OnlineRequest struct {
	CardNumber     string          `json:"cardNumber" validate:"required"`
	HolderName     string          `json:"holderName" validate:"required"`
	ExpirationDate string          `json:"expirationDate" validate:"required,len=5"`
	SecurityCode   string          `json:"securityCode" validate:"required,len=3,numeric"`
	AmountPaid     decimal.Decimal `json:"amountPaid" validate:"money"`
	BusinessID     uint            `json:"businessId" validate:"required"`
}
