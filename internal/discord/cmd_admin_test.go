package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildCoin_Go/internal/admin"
	"github.com/osse101/GuildCoin_Go/internal/domain"
)

func TestRegistryMutation(t *testing.T) {
	tests := []struct {
		group string
		sub   string
		want  bool
	}{
		{"roles", "add", true},
		{"roles", "remove", true},
		{"roles", "list", false},
		{"coins", "add", false},
		{"shop", "removeitem", false},
		{"daily", "reset", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, registryMutation(tt.group, tt.sub), "%s %s", tt.group, tt.sub)
	}
}

// A member whose only authorization is a registered admin role can run admin
// commands but cannot change the role registry itself.
func TestRegisteredRoleCannotChangeRegistry(t *testing.T) {
	ctx := context.Background()
	repo := admin.NewFakeRepository()
	require.NoError(t, repo.AddRole(ctx, "mod-role"))

	b := &Bot{admin: admin.NewService(repo)}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{
			User:  &discordgo.User{ID: "u1"},
			Roles: []string{"mod-role"},
		},
	}}

	assert.NoError(t, b.authorizeAdmin(ctx, i))
	assert.ErrorIs(t, b.authorizeAdministrator(ctx, i), domain.ErrUnauthorized)

	i.Member.Permissions = discordgo.PermissionAdministrator
	assert.NoError(t, b.authorizeAdministrator(ctx, i))
}
