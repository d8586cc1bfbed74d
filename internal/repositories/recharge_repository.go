package repositories

import (
	"context"
	"fmt"

	"cardpay/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RechargeRepository interface {
	Create(ctx context.Context, recharge *models.Recharge) error
	SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error)
	ListByCard(ctx context.Context, cardID uint) ([]models.Recharge, error)
}

type rechargeRepository struct {
	db *gorm.DB
}

func NewRechargeRepository(db *gorm.DB) RechargeRepository {
	return &rechargeRepository{db: db}
}

func (r *rechargeRepository) Create(ctx context.Context, recharge *models.Recharge) error {
	if err := r.db.WithContext(ctx).Create(recharge).Error; err != nil {
		return fmt.Errorf("failed to create recharge: %w", err)
	}
	return nil
}

func (r *rechargeRepository) SumByCard(ctx context.Context, cardID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Recharge{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("card_id = ?", cardID).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum recharges: %w", err)
	}
	return total, nil
}

func (r *rechargeRepository) ListByCard(ctx context.Context, cardID uint) ([]models.Recharge, error) {
	var recharges []models.Recharge
	if err := r.db.WithContext(ctx).Where("card_id = ?", cardID).Order("created_at DESC").Find(&recharges).Error; err != nil {
		return nil, fmt.Errorf("failed to list recharges: %w", err)
	}
	return recharges, nil
}
