// Package recharge credits physical cards. It is the only way balance grows.
package recharge

import (
	"context"
	"errors"
	"time"

	apperrors "cardpay/internal/errors"
	"cardpay/internal/expiry"
	"cardpay/internal/models"
	"cardpay/internal/repositories"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero with at most two decimal places")

type Service interface {
	Recharge(ctx context.Context, cardID uint, amount decimal.Decimal) (*models.Recharge, error)
}

type CardFinder interface {
	FindByID(ctx context.Context, cardID uint) (*models.Card, error)
}

type RechargeStore interface {
	Create(ctx context.Context, recharge *models.Recharge) error
}

type service struct {
	cards     CardFinder
	recharges RechargeStore
	now       func() time.Time
	log       zerolog.Logger
}

func NewService(cards CardFinder, recharges RechargeStore, log zerolog.Logger) Service {
	return &service{
		cards:     cards,
		recharges: recharges,
		now:       time.Now,
		log:       log.With().Str("component", "recharge").Logger(),
	}
}

func (s *service) Recharge(ctx context.Context, cardID uint, amount decimal.Decimal) (*models.Recharge, error) {
	if !models.ValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, err
	}

	if card.IsVirtual {
		return nil, apperrors.ErrVirtualCardRecharge
	}
	if card.Password == "" {
		return nil, apperrors.ErrCardNotActivated
	}
	expired, err := expiry.IsExpired(card.ExpirationDate, s.now(), nil)
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, apperrors.ErrCardExpired
	}

	r := &models.Recharge{CardID: card.ID, Amount: amount}
	if err := s.recharges.Create(ctx, r); err != nil {
		return nil, err
	}

	s.log.Info().Uint("card_id", card.ID).Str("amount", amount.String()).Msg("card recharged")
	return r, nil
}
