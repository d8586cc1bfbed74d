package balance

import (
	"context"
	"errors"
	"testing"

	apperrors "cardpay/internal/errors"
	"cardpay/internal/models"
	"cardpay/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockPayments struct {
	mock.Mock
}

func (m *MockPayments) SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPayments) ListByCard(ctx context.Context, cardID uint) ([]models.PaymentView, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentView), args.Error(1)
}

type MockRecharges struct {
	mock.Mock
}

func (m *MockRecharges) SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRecharges) ListByCard(ctx context.Context, cardID uint) ([]models.Recharge, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recharge), args.Error(1)
}

func TestService_GetBalance(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockPayments, *MockRecharges)
		want      decimal.Decimal
		wantErr   bool
	}{
		{
			name: "recharges minus payments",
			setupMock: func(p *MockPayments, r *MockRecharges) {
				r.On("SumByCard", mock.Anything, uint(1)).Return(decimal.NewFromInt(150), nil)
				p.On("SumByCard", mock.Anything, uint(1)).Return(decimal.NewFromInt(50), nil)
			},
			want: decimal.NewFromInt(100),
		},
		{
			name: "no history",
			setupMock: func(p *MockPayments, r *MockRecharges) {
				r.On("SumByCard", mock.Anything, uint(1)).Return(decimal.Zero, nil)
				p.On("SumByCard", mock.Anything, uint(1)).Return(decimal.Zero, nil)
			},
			want: decimal.Zero,
		},
		{
			name: "recharge sum fails",
			setupMock: func(p *MockPayments, r *MockRecharges) {
				r.On("SumByCard", mock.Anything, uint(1)).Return(decimal.Zero, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := new(MockPayments)
			recharges := new(MockRecharges)
			tt.setupMock(payments, recharges)

			s := NewService(new(MockCards), payments, recharges)
			got, err := s.GetBalance(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			}
			payments.AssertExpectations(t)
			recharges.AssertExpectations(t)
		})
	}
}

func TestService_Statement(t *testing.T) {
	backing := uint(1)

	t.Run("virtual card reports backing card", func(t *testing.T) {
		cards := new(MockCards)
		payments := new(MockPayments)
		recharges := new(MockRecharges)

		cards.On("FindByID", mock.Anything, uint(2)).Return(&models.Card{ID: 2, IsVirtual: true, OriginalCardID: &backing}, nil)
		recharges.On("SumByCard", mock.Anything, uint(1)).Return(decimal.NewFromInt(100), nil)
		payments.On("SumByCard", mock.Anything, uint(1)).Return(decimal.NewFromInt(30), nil)
		payments.On("ListByCard", mock.Anything, uint(1)).Return([]models.PaymentView{{ID: 7, CardID: 1, Amount: decimal.NewFromInt(30)}}, nil)
		recharges.On("ListByCard", mock.Anything, uint(1)).Return(nil, nil)

		st, err := NewService(cards, payments, recharges).Statement(context.Background(), 2)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(70).Equal(st.Balance))
		assert.Len(t, st.Transactions, 1)
		assert.NotNil(t, st.Recharges)
		assert.Empty(t, st.Recharges)
	})

	t.Run("unknown card", func(t *testing.T) {
		cards := new(MockCards)
		cards.On("FindByID", mock.Anything, uint(5)).Return(nil, repositories.ErrCardNotFound)

		_, err := NewService(cards, new(MockPayments), new(MockRecharges)).Statement(context.Background(), 5)
		assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
	})
}
