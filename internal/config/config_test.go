package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CARDPAY_TEST_VALUE", "set")
	t.Setenv("CARDPAY_TEST_EMPTY", "")

	assert.Equal(t, "set", GetEnv("CARDPAY_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnv("CARDPAY_TEST_EMPTY", "default"))
	assert.Equal(t, "default", GetEnv("CARDPAY_TEST_MISSING", "default"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("CARDPAY_TEST_INT", "42")
	t.Setenv("CARDPAY_TEST_BAD_INT", "forty-two")

	assert.Equal(t, 42, GetIntEnv("CARDPAY_TEST_INT", 1))
	assert.Equal(t, 1, GetIntEnv("CARDPAY_TEST_BAD_INT", 1))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("CARDPAY_TEST_DURATION", "90s")
	t.Setenv("CARDPAY_TEST_BAD_DURATION", "soon")

	assert.Equal(t, 90*time.Second, GetDurationEnv("CARDPAY_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetDurationEnv("CARDPAY_TEST_BAD_DURATION", time.Second))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "")
	t.Setenv("SETTLEMENT_LOCK_TTL", "2s")

	cfg := Load()

	assert.Equal(t, "cardpay", cfg.Database.Name)
	assert.Equal(t, 2*time.Second, cfg.Redis.SettlementTTL)
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "UTC", cfg.Cards.Timezone)
	assert.Equal(t, 5, cfg.Cards.ValidityYears)
}

func TestCardConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{name: "utc", timezone: "UTC", want: "UTC"},
		{name: "iana zone", timezone: "America/Sao_Paulo", want: "America/Sao_Paulo"},
		{name: "unknown zone", timezone: "Mars/Olympus_Mons", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := CardConfig{Timezone: tt.timezone}.Location()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())
		})
	}
}

func TestLoad_Cards(t *testing.T) {
	t.Setenv("CARD_TIMEZONE", "Europe/Lisbon")
	t.Setenv("CARD_VALIDITY_YEARS", "3")

	cfg := Load()

	assert.Equal(t, CardConfig{Timezone: "Europe/Lisbon", ValidityYears: 3}, cfg.Cards)
}
