package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "cardpay/internal/errors"
	"cardpay/internal/expiry"
	"cardpay/internal/models"
	"cardpay/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be greater than zero with at most two decimal places")

type service struct {
	cards      CardRepository
	businesses BusinessRepository
	balances   BalanceService
	payments   PaymentRepository
	verifier   CredentialVerifier
	locker     CardLocker
	now        func() time.Time
	log        zerolog.Logger
}

type Option func(*service)

// WithLocker replaces the in-process settlement lock.
func WithLocker(l CardLocker) Option {
	return func(s *service) { s.locker = l }
}

// WithClock sets the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new payment service
func NewService(
	cards CardRepository,
	businesses BusinessRepository,
	balances BalanceService,
	payments PaymentRepository,
	verifier CredentialVerifier,
	log zerolog.Logger,
	opts ...Option,
) Service {
	s := &service{
		cards:      cards,
		businesses: businesses,
		balances:   balances,
		payments:   payments,
		verifier:   verifier,
		locker:     NewLocalLocker(),
		now:        time.Now,
		log:        log.With().Str("component", "payment").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthorizePointOfSale charges a physical card identified by id.
// Virtual cards are never accepted at a point of sale.
func (s *service) AuthorizePointOfSale(ctx context.Context, req PointOfSaleRequest) error {
	log := s.log.With().
		Str("flow", "point_of_sale").
		Uint("card_id", req.CardID).
		Uint("business_id", req.BusinessID).
		Logger()

	if !models.ValidAmount(req.AmountPaid) {
		return ErrInvalidAmount
	}

	card, err := s.findCardByID(ctx, req.CardID)
	if err != nil {
		return rejected(log, err)
	}

	if card.IsVirtual {
		return rejected(log, apperrors.ErrVirtualCardAtPOS)
	}

	if err := s.ensureCardIsUsable(card); err != nil {
		return rejected(log, err)
	}

	if err := s.verifyCredential(req.Password, card.Password); err != nil {
		return rejected(log, err)
	}

	if err := s.ensureBusinessAccepts(ctx, req.BusinessID, card.Type); err != nil {
		return rejected(log, err)
	}

	p, err := s.settle(ctx, card, req.AmountPaid, req.BusinessID)
	if err != nil {
		return rejected(log, err)
	}

	log.Info().Str("reference", p.Reference.String()).Str("amount", p.Amount.String()).Msg("payment authorized")
	return nil
}

// AuthorizeOnline charges a card resolved by number, holder name and expiry.
// A virtual card is charged against its backing physical card.
func (s *service) AuthorizeOnline(ctx context.Context, req OnlineRequest) error {
	log := s.log.With().
		Str("flow", "online").
		Uint("business_id", req.BusinessID).
		Logger()

	if !models.ValidAmount(req.AmountPaid) {
		return ErrInvalidAmount
	}

	card, err := s.findCardByDetails(ctx, req.CardNumber, req.HolderName, req.ExpirationDate)
	if err != nil {
		return rejected(log, err)
	}
	log = log.With().Uint("card_id", card.ID).Bool("virtual", card.IsVirtual).Logger()

	if err := s.ensureCardIsUsable(card); err != nil {
		return rejected(log, err)
	}

	if err := s.verifyCredential(req.SecurityCode, card.SecurityCode); err != nil {
		return rejected(log, err)
	}

	if err := s.ensureBusinessAccepts(ctx, req.BusinessID, card.Type); err != nil {
		return rejected(log, err)
	}

	p, err := s.settle(ctx, card, req.AmountPaid, req.BusinessID)
	if err != nil {
		return rejected(log, err)
	}

	log.Info().
		Uint("charged_card_id", p.CardID).
		Str("reference", p.Reference.String()).
		Str("amount", p.Amount.String()).
		Msg("payment authorized")
	return nil
}

func (s *service) findCardByID(ctx context.Context, cardID uint) (*models.Card, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *service) findCardByDetails(ctx context.Context, number, holderName, expirationDate string) (*models.Card, error) {
	card, err := s.cards.FindByDetails(ctx, number, holderName, expirationDate)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// ensureCardIsUsable checks expiry before the blocked flag.
func (s *service) ensureCardIsUsable(card *models.Card) error {
	expired, err := expiry.IsExpired(card.ExpirationDate, s.now(), nil)
	if err != nil {
		return fmt.Errorf("card %d: %w", card.ID, err)
	}
	if expired {
		return apperrors.ErrCardExpired
	}

	if card.IsBlocked {
		return apperrors.ErrCardBlocked
	}
	return nil
}

func (s *service) verifyCredential(plain, stored string) error {
	if !s.verifier.Verify(plain, stored) {
		return apperrors.ErrInvalidCredential
	}
	return nil
}

func (s *service) ensureBusinessAccepts(ctx context.Context, businessID uint, cardType string) error {
	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrBusinessNotFound) {
			return apperrors.ErrBusinessNotFound
		}
		return err
	}

	if business.Type != cardType {
		return apperrors.ErrTypeMismatch
	}
	return nil
}

// settle checks the effective card's balance and writes the payment while
// holding that card's lock. Both run under the lock's lease. It is the only
// write in either flow.
func (s *service) settle(ctx context.Context, card *models.Card, amount decimal.Decimal, businessID uint) (*models.Payment, error) {
	cardID, ok := card.EffectiveCardID()
	if !ok {
		return nil, fmt.Errorf("virtual card %d has no backing card", card.ID)
	}

	lease, unlock, err := s.locker.Lock(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock card %d: %w", cardID, err)
	}
	defer unlock()

	balance, err := s.balances.GetBalance(lease, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance.LessThan(amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	// Another authorization may hold the card once the lease is gone.
	if err := lease.Err(); err != nil {
		return nil, fmt.Errorf("settlement lock on card %d lapsed: %w", cardID, err)
	}

	p := &models.Payment{
		Reference:  uuid.New(),
		CardID:     cardID,
		BusinessID: businessID,
		Amount:     amount,
	}
	if err := s.payments.Insert(lease, p); err != nil {
		return nil, err
	}
	return p, nil
}

func rejected(log zerolog.Logger, err error) error {
	if kind, ok := apperrors.KindOf(err); ok {
		log.Warn().Str("kind", string(kind)).Err(err).Msg("payment rejected")
	} else {
		log.Error().Err(err).Msg("payment failed")
	}
	return err
}
