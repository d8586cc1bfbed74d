package recharge

import (
	"context"
	"testing"
	"time"

	apperrors "cardpay/internal/errors"
	"cardpay/internal/models"
	"cardpay/internal/repositories"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCards struct {
	mock.Mock
}

func (m *MockCards) FindByID(ctx context.Context, cardID uint) (*models.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, recharge *models.Recharge) error {
	args := m.Called(ctx, recharge)
	return args.Error(0)
}

func TestService_Recharge(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	backing := uint(1)

	tests := []struct {
		name      string
		amount    decimal.Decimal
		card      *models.Card
		findErr   error
		wantErr   error
		wantWrite bool
	}{
		{
			name:      "credits active card",
			amount:    decimal.NewFromInt(100),
			card:      &models.Card{ID: 1, Password: "hash", ExpirationDate: "10/26"},
			wantWrite: true,
		},
		{
			name:    "rejects non positive amount",
			amount:  decimal.Zero,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "rejects sub-cent amount",
			amount:  decimal.RequireFromString("10.005"),
			wantErr: ErrInvalidAmount,
		},
		{
			name:      "accepts trailing zeros beyond cents",
			amount:    decimal.RequireFromString("25.500"),
			card:      &models.Card{ID: 1, Password: "hash", ExpirationDate: "10/26"},
			wantWrite: true,
		},
		{
			name:    "unknown card",
			amount:  decimal.NewFromInt(10),
			findErr: repositories.ErrCardNotFound,
			wantErr: apperrors.ErrCardNotFound,
		},
		{
			name:    "virtual card",
			amount:  decimal.NewFromInt(10),
			card:    &models.Card{ID: 2, IsVirtual: true, OriginalCardID: &backing, Password: "hash", ExpirationDate: "10/30"},
			wantErr: apperrors.ErrVirtualCardRecharge,
		},
		{
			name:    "card not activated",
			amount:  decimal.NewFromInt(10),
			card:    &models.Card{ID: 3, ExpirationDate: "10/30"},
			wantErr: apperrors.ErrCardNotActivated,
		},
		{
			name:    "expired card",
			amount:  decimal.NewFromInt(10),
			card:    &models.Card{ID: 4, Password: "hash", ExpirationDate: "09/26"},
			wantErr: apperrors.ErrCardExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := new(MockCards)
			store := new(MockStore)

			if tt.card != nil || tt.findErr != nil {
				var card interface{}
				if tt.card != nil {
					card = tt.card
				}
				cards.On("FindByID", mock.Anything, mock.Anything).Return(card, tt.findErr)
			}
			if tt.wantWrite {
				store.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Recharge) bool {
					return r.CardID == tt.card.ID && r.Amount.Equal(tt.amount)
				})).Return(nil)
			}

			s := NewService(cards, store, zerolog.Nop()).(*service)
			s.now = func() time.Time { return now }

			r, err := s.Recharge(context.Background(), 1, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, r)
			}
			cards.AssertExpectations(t)
			store.AssertExpectations(t)
		})
	}
}
