package discord

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GuildCoin_Go/internal/domain"
)

// ShopCommand returns the shop command definition and handler. The response
// lists the catalog with a select menu; picking an item opens a confirmable
// purchase prompt.
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "shop",
		Description: "Browse the role shop",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if b.cfg.ShopChannelID == "" || i.ChannelID != b.cfg.ShopChannelID {
			respondEphemeral(s, i, MsgShopChannelOnly)
			return
		}
		if !deferResponse(s, i) {
			return
		}

		items, err := b.shop.ListItems(interactionContext())
		if err != nil {
			slog.Error("Failed to list shop items", "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		if len(items) == 0 {
			respondError(s, i, "The shop is empty right now.")
			return
		}

		var sb strings.Builder
		options := make([]discordgo.SelectMenuOption, 0, len(items))
		for _, item := range items {
			fmt.Fprintf(&sb, "**%s** — %d coins (<@&%s>)\n", item.Name, item.Price, item.RoleID)
			options = append(options, discordgo.SelectMenuOption{
				Label:       item.Name,
				Value:       strconv.Itoa(item.ID),
				Description: fmt.Sprintf("%d coins", item.Price),
			})
		}

		embed := createEmbed("🏪 Role Shop", sb.String(), ColorBlue, "")
		components := []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    ComponentShopSelect,
						Placeholder: "Pick a role to buy",
						Options:     options,
					},
				},
			},
		}

		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds:     &[]*discordgo.MessageEmbed{embed},
			Components: &components,
		}); err != nil {
			slog.Error("Failed to send shop response", "error", err)
		}
	}

	return cmd, handler
}

// formatPurchasePrompt renders the confirm/cancel prompt body.
func formatPurchasePrompt(item domain.ShopItem, balance int64) string {
	return fmt.Sprintf("Buy **%s** for **%d** coins?\nYour balance: **%d**",
		item.Name, item.Price, balance)
}
