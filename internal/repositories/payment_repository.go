package repositories

import (
	"context"
	"fmt"

	"cardpay/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRepository stores payment records. Records are insert-only.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
	SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error)
	ListByCard(ctx context.Context, cardID uint) ([]models.PaymentView, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *models.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("card_id = ?", cardID).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}

func (r *paymentRepository) ListByCard(ctx context.Context, cardID uint) ([]models.PaymentView, error) {
	var views []models.PaymentView
	err := r.db.WithContext(ctx).
		Table("payments p").
		Select("p.id, p.card_id, p.business_id, b.name AS business_name, p.amount, p.created_at AS timestamp").
		Joins("JOIN businesses b ON b.id = p.business_id").
		Where("p.card_id = ?", cardID).
		Order("p.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return views, nil
}
