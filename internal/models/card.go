package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Card types. A card can only be used at a business accepting the same type.
const (
	CardTypeGroceries  = "groceries"
	CardTypeRestaurant = "restaurant"
	CardTypeTransport  = "transport"
	CardTypeEducation  = "education"
	CardTypeHealth     = "health"
)

// CardTypes lists every accepted card type.
var CardTypes = []string{
	CardTypeGroceries,
	CardTypeRestaurant,
	CardTypeTransport,
	CardTypeEducation,
	CardTypeHealth,
}

var ErrUnknownCardType = errors.New("unknown card type")

// IsCardType reports whether t is one of CardTypes.
func IsCardType(t string) bool {
	for _, ct := range CardTypes {
		if ct == t {
			return true
		}
	}
	return false
}

func checkCardType(t string) error {
	if !IsCardType(t) {
		return fmt.Errorf("%q: %w", t, ErrUnknownCardType)
	}
	return nil
}

// Card is a physical or virtual payment card. A virtual card has no balance
// of its own; OriginalCardID points at the physical card it charges.
type Card struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	Number         string `gorm:"not null;uniqueIndex;index:idx_card_details,priority:1" json:"number"`
	HolderName     string `gorm:"not null;index:idx_card_details,priority:2" json:"holderName"`
	ExpirationDate string `gorm:"size:5;not null;index:idx_card_details,priority:3" json:"expirationDate"`
	Type           string `gorm:"not null" json:"type"`
	IsVirtual      bool   `gorm:"default:false" json:"isVirtual"`
	IsBlocked      bool   `gorm:"default:false" json:"isBlocked"`
	OriginalCardID *uint  `gorm:"index" json:"originalCardId,omitempty"`
	Password       string `json:"-"` // bcrypt hash, empty until the card is activated
	SecurityCode   string `gorm:"not null" json:"-"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	return checkCardType(c.Type)
}

// EffectiveCardID returns the id of the card actually charged: the backing
// card for a virtual card, the card itself otherwise. ok is false for a
// virtual card with no backing card.
func (c *Card) EffectiveCardID() (id uint, ok bool) {
	if !c.IsVirtual {
		return c.ID, true
	}
	if c.OriginalCardID == nil {
		return 0, false
	}
	return *c.OriginalCardID, true
}
