package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GuildCoin_Go/internal/admin"
	"github.com/osse101/GuildCoin_Go/internal/config"
	"github.com/osse101/GuildCoin_Go/internal/daily"
	"github.com/osse101/GuildCoin_Go/internal/ledger"
	"github.com/osse101/GuildCoin_Go/internal/shop"
)

// Services bundles the domain services the bot depends on.
type Services struct {
	Ledger ledger.Service
	Shop   shop.Service
	Daily  daily.Service
	Admin  admin.Service
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry

	cfg       *config.Config
	ledger    ledger.Service
	shop      shop.Service
	daily     daily.Service
	admin     admin.Service
	purchaser shop.Purchaser
}

// New creates a new Discord bot
func New(cfg *config.Config, svcs Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates

	b := &Bot{
		Session:  s,
		AppID:    cfg.DiscordAppID,
		Registry: NewCommandRegistry(),
		cfg:      cfg,
		ledger:   svcs.Ledger,
		shop:     svcs.Shop,
		daily:    svcs.Daily,
		admin:    svcs.Admin,
	}
	b.purchaser = shop.NewPurchaser(svcs.Shop, svcs.Ledger, b)

	b.Registry.Register(BalanceCommand())
	b.Registry.Register(ShopCommand())
	b.Registry.Register(DailyCommand())
	b.Registry.Register(AdminCommand())

	return b, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.voiceStateUpdate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	b.Session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.Registry.Handle(s, i, b)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}

// GrantRole implements shop.RoleGranter.
func (b *Bot) GrantRole(_ context.Context, guildID, userID, roleID string) error {
	if err := b.Session.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
		return fmt.Errorf("failed to grant role %s to %s: %w", roleID, userID, err)
	}
	return nil
}

// NotifyReward implements worker.RewardNotifier by sending the user a DM.
// Users with closed DMs just miss the notice; the coins are already paid.
func (b *Bot) NotifyReward(_ context.Context, reward daily.Reward) error {
	channel, err := b.Session.UserChannelCreate(reward.UserID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	embed := createEmbed("☀️ Daily Reward",
		fmt.Sprintf("You earned **%d** coins for being active today!\nStreak: **%d** day(s)\nBalance: **%d**",
			reward.Amount, reward.Streak, reward.NewBalance),
		ColorGold, "")

	if _, err := b.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}
