package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GuildCoin_Go/internal/daily"
)

// DailyCommand returns the daily status command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Check your daily reward progress",
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
		status, err := b.daily.Status(interactionContext(), user.ID)
		if err != nil {
			slog.Error("Failed to get daily status", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed("☀️ Daily Reward", formatDailyStatus(status), ColorGold, ""))
	}

	return cmd, handler
}

func formatDailyStatus(status daily.Status) string {
	var sb strings.Builder

	switch {
	case status.ClaimedToday:
		sb.WriteString("✅ You've collected today's reward. Come back tomorrow!\n")
	case status.LastClaim.IsZero():
		sb.WriteString("🌱 You haven't claimed any daily rewards yet.\n")
		fmt.Fprintf(&sb, "Chat or hop in voice for **%d** more active minute(s) to earn your first one.\n", remainingMinutes(status))
	default:
		fmt.Fprintf(&sb, "Chat for **%d** more active minute(s) to earn today's reward.\n", remainingMinutes(status))
	}

	fmt.Fprintf(&sb, "Current streak: **%d** day(s)\n", status.Streak)

	// Best case: the next claim lands on a consecutive day.
	fmt.Fprintf(&sb, "Next reward: up to **%d** coins", daily.RewardAmount(status.Streak+1))

	return sb.String()
}

func remainingMinutes(status daily.Status) int {
	remaining := daily.ActivityMinutesRequired - status.ActiveMinutes
	if remaining < 0 {
		return 0
	}
	return remaining
}
