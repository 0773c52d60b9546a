package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/GuildCoin_Go/internal/config"
	"github.com/osse101/GuildCoin_Go/internal/daily"
)

// markRecorder records MarkActive calls and stubs the rest of daily.Service.
type markRecorder struct {
	marked []string
}

func (r *markRecorder) MarkActive(userID string) { r.marked = append(r.marked, userID) }

func (r *markRecorder) Sweep(ctx context.Context) []daily.Reward { return nil }

func (r *markRecorder) Status(ctx context.Context, userID string) (daily.Status, error) {
	return daily.Status{}, nil
}

func (r *markRecorder) Reset(ctx context.Context, userID string) error { return nil }

func TestMessageCreateMarksActivity(t *testing.T) {
	rec := &markRecorder{}
	b := &Bot{cfg: &config.Config{}, daily: rec}

	b.messageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID:   "g1",
		ChannelID: "general",
		Author:    &discordgo.User{ID: "u1"},
	}})
	b.messageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID:   "g1",
		ChannelID: "general",
		Author:    &discordgo.User{ID: "bot", Bot: true},
	}})

	assert.Equal(t, []string{"u1"}, rec.marked)
}

func TestVoiceStateUpdateMarksActivity(t *testing.T) {
	rec := &markRecorder{}
	b := &Bot{cfg: &config.Config{}, daily: rec}

	// Joining a voice channel counts as activity.
	b.voiceStateUpdate(nil, &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{
		GuildID:   "g1",
		ChannelID: "vc1",
		UserID:    "u1",
	}})

	// Leaving does not.
	b.voiceStateUpdate(nil, &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{
		GuildID: "g1",
		UserID:  "u1",
	}})

	// Bots never earn activity.
	b.voiceStateUpdate(nil, &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{
		GuildID:   "g1",
		ChannelID: "vc1",
		UserID:    "bot",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "bot", Bot: true}},
	}})

	assert.Equal(t, []string{"u1"}, rec.marked)
}
