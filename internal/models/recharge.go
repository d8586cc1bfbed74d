package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recharge credits a physical card. Balance is recharges minus payments.
type Recharge struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	CardID    uint            `gorm:"not null;index" json:"cardId"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"timestamp"`
}

// Statement is the balance of a card together with its history.
type Statement struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []PaymentView   `json:"transactions"`
	Recharges    []Recharge      `json:"recharges"`
}
