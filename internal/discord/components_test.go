package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GuildCoin_Go/internal/daily"
	"github.com/osse101/GuildCoin_Go/internal/domain"
)

func TestPurchaseCustomIDRoundTrip(t *testing.T) {
	id := confirmCustomID("123456789", 42)
	assert.Equal(t, "shop:confirm:123456789:42", id)

	userID, itemID, ok := parsePurchaseCustomID(id)
	assert.True(t, ok)
	assert.Equal(t, "123456789", userID)
	assert.Equal(t, 42, itemID)

	userID, itemID, ok = parsePurchaseCustomID(cancelCustomID("987", 7))
	assert.True(t, ok)
	assert.Equal(t, "987", userID)
	assert.Equal(t, 7, itemID)
}

func TestParsePurchaseCustomID_Malformed(t *testing.T) {
	tests := []string{
		"shop:confirm",
		"shop:confirm:123",
		"shop:confirm:123:notanumber",
		"shop:confirm:123:42:extra",
		"",
	}

	for _, id := range tests {
		_, _, ok := parsePurchaseCustomID(id)
		assert.False(t, ok, "expected %q not to parse", id)
	}
}

func TestFormatPurchasePrompt(t *testing.T) {
	item := domain.ShopItem{ID: 1, Name: "Champion", Price: 50000, RoleID: "role1"}
	prompt := formatPurchasePrompt(item, 60000)

	assert.Contains(t, prompt, "Champion")
	assert.Contains(t, prompt, "50000")
	assert.Contains(t, prompt, "60000")
}

func TestFormatDailyStatus(t *testing.T) {
	claimed := formatDailyStatus(daily.Status{ClaimedToday: true, Streak: 3})
	assert.Contains(t, claimed, "tomorrow")
	assert.Contains(t, claimed, "**3** day(s)")

	pending := formatDailyStatus(daily.Status{LastClaim: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), ActiveMinutes: 4, Streak: 3})
	assert.Contains(t, pending, "**6** more active minute(s)")

	first := formatDailyStatus(daily.Status{ActiveMinutes: 4})
	assert.Contains(t, first, "haven't claimed any daily rewards yet")
	assert.Contains(t, first, "**6** more active minute(s)")
}
