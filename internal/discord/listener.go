package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// messageCreate is the activity listener: every guild message from a human
// counts toward the daily reward, and messages in the points channel also
// roll the coin faucet.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	b.daily.MarkActive(m.Author.ID)

	if b.cfg.PointsChannelID == "" || m.ChannelID != b.cfg.PointsChannelID {
		return
	}

	ctx := interactionContext()
	if _, err := b.ledger.CreditActivity(ctx, m.Author.ID); err != nil {
		slog.Error("Failed to credit message activity", "user_id", m.Author.ID, "error", err)
	}
}

// voiceStateUpdate counts time spent in voice channels toward the daily
// reward. Joining or moving between channels marks the current minute;
// leaving (empty channel ID) does not.
func (b *Bot) voiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.ChannelID == "" || v.GuildID == "" {
		return
	}
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}

	b.daily.MarkActive(v.UserID)
}
