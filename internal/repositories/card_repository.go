package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardpay/internal/models"

	"gorm.io/gorm"
)

type CardRepository interface {
	FindByID(ctx context.Context, cardID uint) (*models.Card, error)
	FindByDetails(ctx context.Context, number, holderName, expirationDate string) (*models.Card, error)
	Create(ctx context.Context, card *models.Card) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) FindByID(ctx context.Context, cardID uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

// FindByDetails matches number, holder name and expiry exactly.
func (r *cardRepository) FindByDetails(ctx context.Context, number, holderName, expirationDate string) (*models.Card, error) {
	var card models.Card
	err := r.db.WithContext(ctx).
		Where("number = ? AND holder_name = ? AND expiration_date = ?", number, holderName, expirationDate).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card by details: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("card number %s: %w", card.Number, ErrConflict)
		}
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}
