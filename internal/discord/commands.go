package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GuildCoin_Go/internal/domain"
	"github.com/osse101/GuildCoin_Go/internal/logger"
	"github.com/osse101/GuildCoin_Go/internal/metrics"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes a slash command interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	name := i.ApplicationCommandData().Name
	if h, ok := r.Handlers[name]; ok {
		metrics.CommandsHandled.WithLabelValues(name).Inc()
		h(s, i, b)
	}
}

// RegisterCommands pushes the registry's command set to Discord with a bulk
// overwrite, which also removes commands no longer in the registry.
func (b *Bot) RegisterCommands(registry *CommandRegistry) error {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		cmds = append(cmds, cmd)
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", cmds); err != nil {
		return fmt.Errorf("failed to overwrite commands: %w", err)
	}

	slog.Info("Commands registered", "count", len(cmds))
	return nil
}

// interactionContext builds a request-scoped context for a handler.
func interactionContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondEphemeral replies immediately with a message only the caller sees.
// Used for channel gating and authorization rejections.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send ephemeral response", "error", err)
	}
}

// respondError edits a deferred response with a plain error message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError maps a domain error to a reader-friendly message and
// edits the deferred response with it.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError translates domain errors into user-facing messages.
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, domain.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, domain.ErrAmbiguousItem):
		return MsgAmbiguousItem
	case errors.Is(err, domain.ErrItemExists):
		return MsgItemExists
	case errors.Is(err, domain.ErrSessionNotFound):
		return MsgSessionExpired
	case errors.Is(err, domain.ErrNotSessionOwner):
		return MsgNotYourPurchase
	case errors.Is(err, domain.ErrRoleGrantFailed):
		return MsgRoleGrantFailed
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return MsgAlreadyClaimed
	case errors.Is(err, domain.ErrRoleExists):
		return MsgRoleExists
	case errors.Is(err, domain.ErrRoleNotFound):
		return MsgRoleNotFound
	case errors.Is(err, domain.ErrAccountNotFound):
		return MsgAccountUnknown
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgUnauthorized
	default:
		return MsgGenericError
	}
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// createEmbed creates a standard embed with optional footer customization.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterGuildCoin
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// sendEmbed edits a deferred response with an embed.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}
