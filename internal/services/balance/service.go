// Package balance derives card balances from recharges and payments.
package balance

import (
	"context"
	"errors"
	"fmt"

	apperrors "cardpay/internal/errors"
	"cardpay/internal/models"
	"cardpay/internal/repositories"

	"github.com/shopspring/decimal"
)

type Service interface {
	// GetBalance returns recharges minus payments for a physical card id.
	GetBalance(ctx context.Context, cardID uint) (decimal.Decimal, error)
	// Statement returns balance and history. Virtual cards report their backing card.
	Statement(ctx context.Context, cardID uint) (*models.Statement, error)
}

type CardFinder interface {
	FindByID(ctx context.Context, cardID uint) (*models.Card, error)
}

type PaymentLedger interface {
	SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error)
	ListByCard(ctx context.Context, cardID uint) ([]models.PaymentView, error)
}

type RechargeLedger interface {
	SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error)
	ListByCard(ctx context.Context, cardID uint) ([]models.Recharge, error)
}

type service struct {
	cards     CardFinder
	payments  PaymentLedger
	recharges RechargeLedger
}

func NewService(cards CardFinder, payments PaymentLedger, recharges RechargeLedger) Service {
	return &service{
		cards:     cards,
		payments:  payments,
		recharges: recharges,
	}
}

func (s *service) GetBalance(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	credited, err := s.recharges.SumByCard(ctx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	debited, err := s.payments.SumByCard(ctx, cardID)
	if err != nil {
		return decimal.Zero, err
	}
	return credited.Sub(debited), nil
}

func (s *service) Statement(ctx context.Context, cardID uint) (*models.Statement, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, err
	}

	effectiveID, ok := card.EffectiveCardID()
	if !ok {
		return nil, fmt.Errorf("virtual card %d has no backing card", card.ID)
	}

	bal, err := s.GetBalance(ctx, effectiveID)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByCard(ctx, effectiveID)
	if err != nil {
		return nil, err
	}
	recharges, err := s.recharges.ListByCard(ctx, effectiveID)
	if err != nil {
		return nil, err
	}

	if payments == nil {
		payments = []models.PaymentView{}
	}
	if recharges == nil {
		recharges = []models.Recharge{}
	}

	return &models.Statement{
		Balance:      bal,
		Transactions: payments,
		Recharges:    recharges,
	}, nil
}
