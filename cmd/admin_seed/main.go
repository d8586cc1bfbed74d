// Command admin_seed creates demo businesses and cards, credits the physical
// card and prints an admin token for the recharge endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardpay/internal/config"
	"cardpay/internal/expiry"
	"cardpay/internal/logger"
	"cardpay/internal/models"
	"cardpay/internal/repositories"
	"cardpay/internal/services/credential"
	"cardpay/internal/utils"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	demoPassword     = "1234"
	demoSecurityCode = "123"
	virtualCode      = "321"
	holderName       = "FULANO R SILVA"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	log := logger.New(cfg.Log)

	loc, err := cfg.Cards.Location()
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Cards.Timezone).Msg("invalid card timezone")
	}
	expiry.SetDefaultLocation(loc)

	db, err := repositories.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			log.Warn().Err(err).Msg("failed to close database connection")
		}
	}()

	if err := repositories.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx := context.Background()
	businesses := repositories.NewBusinessRepository(db)
	cards := repositories.NewCardRepository(db)
	recharges := repositories.NewRechargeRepository(db)

	for _, b := range []*models.Business{
		{Name: "Mercado Central", Type: models.CardTypeGroceries},
		{Name: "Cantina Boa Mesa", Type: models.CardTypeRestaurant},
		{Name: "Farmacia Popular", Type: models.CardTypeHealth},
	} {
		if err := businesses.Create(ctx, b); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				log.Info().Str("business", b.Name).Msg("business already exists")
				continue
			}
			log.Fatal().Err(err).Str("business", b.Name).Msg("failed to create business")
		}
		log.Info().Uint("id", b.ID).Str("business", b.Name).Str("type", b.Type).Msg("business created")
	}

	face := expiry.CardFace(time.Now(), cfg.Cards.ValidityYears)

	physical, err := newCard(config.GetEnv("SEED_CARD_NUMBER", "5390123456789012"), face, demoSecurityCode)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash card secrets")
	}
	physical.Password, err = credential.Hash(demoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash card password")
	}
	if !createCard(ctx, log, cards, physical) {
		return
	}

	virtual, err := newCard(config.GetEnv("SEED_VIRTUAL_NUMBER", "5390000011112222"), face, virtualCode)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash card secrets")
	}
	virtual.IsVirtual = true
	virtual.OriginalCardID = &physical.ID
	virtual.Password = physical.Password
	if !createCard(ctx, log, cards, virtual) {
		return
	}

	initial := decimal.RequireFromString(config.GetEnv("SEED_RECHARGE", "500.00"))
	if err := recharges.Create(ctx, &models.Recharge{CardID: physical.ID, Amount: initial}); err != nil {
		log.Fatal().Err(err).Msg("failed to recharge card")
	}

	token, err := utils.GenerateAdminToken(cfg.Auth, "admin-seed")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign admin token")
	}

	fmt.Printf("physical card  id=%d number=%s holder=%q expires=%s password=%s cvc=%s balance=%s\n",
		physical.ID, physical.Number, physical.HolderName, physical.ExpirationDate, demoPassword, demoSecurityCode, initial)
	fmt.Printf("virtual card   id=%d number=%s holder=%q expires=%s cvc=%s backed_by=%d\n",
		virtual.ID, virtual.Number, virtual.HolderName, virtual.ExpirationDate, virtualCode, physical.ID)
	fmt.Printf("admin token    %s\n", token)
}

func newCard(number, face, securityCode string) (*models.Card, error) {
	hashed, err := credential.Hash(securityCode)
	if err != nil {
		return nil, err
	}
	return &models.Card{
		Number:         number,
		HolderName:     holderName,
		ExpirationDate: face,
		Type:           models.CardTypeGroceries,
		SecurityCode:   hashed,
	}, nil
}

// createCard reports false when the card already exists.
func createCard(ctx context.Context, log zerolog.Logger, repo repositories.CardRepository, card *models.Card) bool {
	if err := repo.Create(ctx, card); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			log.Info().Str("number", card.Number).Msg("demo cards already seeded")
			return false
		}
		log.Fatal().Err(err).Str("number", card.Number).Msg("failed to create card")
	}
	log.Info().Uint("id", card.ID).Bool("virtual", card.IsVirtual).Msg("card created")
	return true
}
