package payment

import (
	"context"

	"cardpay/internal/models"

	"github.com/shopspring/decimal"
)

// Service authorizes card payments and records each approved one exactly once.
type Service interface {
	AuthorizePointOfSale(ctx context.Context, req PointOfSaleRequest) error
	AuthorizeOnline(ctx context.Context, req OnlineRequest) error
}

// Dependencies required by the payment service
type CardRepository interface {
	FindByID(ctx context.Context, cardID uint) (*models.Card, error)
	FindByDetails(ctx context.Context, number, holderName, expirationDate string) (*models.Card, error)
}

type BusinessRepository interface {
	FindByID(ctx context.Context, businessID uint) (*models.Business, error)
}

type BalanceService interface {
	GetBalance(ctx context.Context, cardID uint) (decimal.Decimal, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
}

type CredentialVerifier interface {
	Verify(plain, stored string) bool
}

// CardLocker serialises settlement on one card. The returned lease is done
// once the lock can no longer be relied on; unlock must be called once.
type CardLocker interface {
	Lock(ctx context.Context, cardID uint) (lease context.Context, unlock func(), err error)
}
