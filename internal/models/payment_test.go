package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0.01", true},
		{"100", true},
		{"42.10", true},
		{"7.5000", true},
		{"0", false},
		{"-1.00", false},
		{"0.001", false},
		{"19.999", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(decimal.RequireFromString(tt.amount)))
		})
	}

	assert.False(t, ValidAmount(decimal.Decimal{}))
}
