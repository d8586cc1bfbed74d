package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is the immutable record of an authorized purchase. CardID is the
// effective card: the backing physical card when a virtual card was used.
type Payment struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	Reference  uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"reference"`
	CardID     uint            `gorm:"not null;index" json:"cardId"`
	BusinessID uint            `gorm:"not null;index" json:"businessId"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	CreatedAt  time.Time       `json:"timestamp"`

	Business *Business `gorm:"foreignKey:BusinessID" json:"-"`
}

// BeforeCreate assigns the public reference.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Reference == uuid.Nil {
		p.Reference = uuid.New()
	}
	return nil
}

// AmountScale is the number of decimal places stored for money.
const AmountScale = 2

// ValidAmount reports whether d is positive and representable at AmountScale
// without rounding.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(AmountScale))
}

// PaymentView is a payment as listed on a card statement.
type PaymentView struct {
	ID           uint            `json:"id"`
	CardID       uint            `json:"cardId"`
	BusinessID   uint            `json:"businessId"`
	BusinessName string          `json:"businessName"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
}
