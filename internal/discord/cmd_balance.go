package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Check your coin balance",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !b.cfg.IsCommandChannel(i.ChannelID) {
			respondEphemeral(s, i, MsgWrongChannel)
			return
		}
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		balance, err := b.ledger.GetBalance(interactionContext(), user.ID)
		if err != nil {
			slog.Error("Failed to get balance", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("💰 Balance",
			fmt.Sprintf("%s, you have **%d** coins.", user.Mention(), balance),
			ColorGold, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
