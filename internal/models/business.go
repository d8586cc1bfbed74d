package models

import (
	"time"

	"gorm.io/gorm"
)

// Business accepts payments from cards of a single type.
type Business struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"not null;uniqueIndex" json:"name"`
	Type      string `gorm:"not null" json:"type"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate rejects a business whose type no card can carry.
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	return checkCardType(b.Type)
}
