package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardpay/internal/models"
	"cardpay/internal/repositories/cache"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	FindByID(ctx context.Context, businessID uint) (*models.Business, error)
	Create(ctx context.Context, business *models.Business) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) FindByID(ctx context.Context, businessID uint) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return &business, nil
}

func (r *businessRepository) Create(ctx context.Context, business *models.Business) error {
	if err := r.db.WithContext(ctx).Create(business).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("business %s: %w", business.Name, ErrConflict)
		}
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// BusinessCache is the subset of the cache service used for business lookups.
// Entries are written with the cache's default ttl.
type BusinessCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// cachedBusinessRepository serves lookups from redis. Businesses are read-only
// for the payment core, so only hits are cached; misses always reach the db.
type cachedBusinessRepository struct {
	next  BusinessRepository
	cache BusinessCache
	log   zerolog.Logger
}

func NewCachedBusinessRepository(next BusinessRepository, c BusinessCache, log zerolog.Logger) BusinessRepository {
	return &cachedBusinessRepository{
		next:  next,
		cache: c,
		log:   log.With().Str("component", "business_cache").Logger(),
	}
}

func (r *cachedBusinessRepository) FindByID(ctx context.Context, businessID uint) (*models.Business, error) {
	key := cache.GenerateKey("business", "id", businessID)

	var business models.Business
	found, err := r.cache.Get(ctx, key, &business)
	if err != nil {
		r.log.Warn().Err(err).Uint("business_id", businessID).Msg("cache read failed")
	} else if found {
		return &business, nil
	}

	b, err := r.next.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, b); err != nil {
		r.log.Warn().Err(err).Uint("business_id", businessID).Msg("cache write failed")
	}
	return b, nil
}

func (r *cachedBusinessRepository) Create(ctx context.Context, business *models.Business) error {
	if err := r.next.Create(ctx, business); err != nil {
		return err
	}
	return r.cache.Delete(ctx, cache.GenerateKey("business", "id", business.ID))
}
