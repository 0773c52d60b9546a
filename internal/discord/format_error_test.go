package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, MsgInsufficientFunds},
		{"wrapped insufficient funds", fmt.Errorf("confirm: %w", domain.ErrInsufficientFunds), MsgInsufficientFunds},
		{"item not found", domain.ErrItemNotFound, MsgItemNotFound},
		{"ambiguous item", domain.ErrAmbiguousItem, MsgAmbiguousItem},
		{"session expired", domain.ErrSessionNotFound, MsgSessionExpired},
		{"role grant failed", domain.ErrRoleGrantFailed, MsgRoleGrantFailed},
		{"already claimed", domain.ErrAlreadyClaimed, MsgAlreadyClaimed},
		{"unauthorized", domain.ErrUnauthorized, MsgUnauthorized},
		{"unknown account", domain.ErrAccountNotFound, MsgAccountUnknown},
		{"unexpected error", errors.New("pq: connection refused"), MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}
