package discord

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Component CustomID prefixes. Confirm and cancel IDs carry the requester
// and item so the prompt stays bound to whoever opened it:
// shop:confirm:<userID>:<itemID>
const (
	ComponentShopSelect  = "shop:select"
	ComponentShopConfirm = "shop:confirm"
	ComponentShopCancel  = "shop:cancel"
)

func confirmCustomID(userID string, itemID int) string {
	return fmt.Sprintf("%s:%s:%d", ComponentShopConfirm, userID, itemID)
}

func cancelCustomID(userID string, itemID int) string {
	return fmt.Sprintf("%s:%s:%d", ComponentShopCancel, userID, itemID)
}

// parsePurchaseCustomID splits "<prefix>:<userID>:<itemID>" into its owner
// and item parts.
func parsePurchaseCustomID(customID string) (userID string, itemID int, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 {
		return "", 0, false
	}
	itemID, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", 0, false
	}
	return parts[2], itemID, true
}

// handleComponent routes select menu and button interactions.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == ComponentShopSelect:
		b.handleShopSelect(s, i)
	case strings.HasPrefix(customID, ComponentShopConfirm+":"):
		b.handleShopConfirm(s, i, customID)
	case strings.HasPrefix(customID, ComponentShopCancel+":"):
		b.handleShopCancel(s, i, customID)
	}
}

// handleShopSelect opens a purchase session for the picked item and shows a
// confirm/cancel prompt only the requester can act on.
func (b *Bot) handleShopSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	itemID, err := strconv.Atoi(values[0])
	if err != nil {
		return
	}

	user := getInteractionUser(i)
	ctx := interactionContext()

	sess, err := b.purchaser.Begin(ctx, user.ID, i.GuildID, itemID)
	if err != nil {
		slog.Error("Failed to open purchase session", "user_id", user.ID, "item_id", itemID, "error", err)
		respondEphemeral(s, i, formatFriendlyError(err))
		return
	}

	balance, err := b.ledger.GetBalance(ctx, user.ID)
	if err != nil {
		slog.Error("Failed to get balance for purchase prompt", "user_id", user.ID, "error", err)
		respondEphemeral(s, i, MsgGenericError)
		return
	}

	embed := createEmbed("🛒 Confirm Purchase", formatPurchasePrompt(sess.Item, balance), ColorOrange, "")
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Confirm",
							Style:    discordgo.SuccessButton,
							CustomID: confirmCustomID(user.ID, sess.Item.ID),
						},
						discordgo.Button{
							Label:    "Cancel",
							Style:    discordgo.DangerButton,
							CustomID: cancelCustomID(user.ID, sess.Item.ID),
						},
					},
				},
			},
		},
	}); err != nil {
		slog.Error("Failed to send purchase prompt", "error", err)
	}
}

func (b *Bot) handleShopConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ownerID, itemID, ok := parsePurchaseCustomID(customID)
	if !ok {
		return
	}

	user := getInteractionUser(i)
	if user.ID != ownerID {
		respondEphemeral(s, i, MsgNotYourPurchase)
		return
	}

	result, err := b.purchaser.Confirm(interactionContext(), user.ID, itemID)
	if err != nil {
		b.updatePrompt(s, i, createEmbed("🛒 Purchase", formatFriendlyError(err), ColorRed, ""))
		return
	}

	b.updatePrompt(s, i, createEmbed("✅ Purchase Complete",
		fmt.Sprintf("You bought **%s** and received <@&%s>!\nNew balance: **%d** coins",
			result.Item.Name, result.Item.RoleID, result.NewBalance),
		ColorGreen, ""))
}

func (b *Bot) handleShopCancel(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ownerID, itemID, ok := parsePurchaseCustomID(customID)
	if !ok {
		return
	}

	user := getInteractionUser(i)
	if user.ID != ownerID {
		respondEphemeral(s, i, MsgNotYourPurchase)
		return
	}

	b.purchaser.Cancel(interactionContext(), user.ID, itemID)
	b.updatePrompt(s, i, createEmbed("🛒 Purchase Canceled", "No coins were spent.", ColorGray, ""))
}

// updatePrompt replaces the confirm/cancel prompt, dropping its buttons so
// it can't be acted on twice.
func (b *Bot) updatePrompt(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	}); err != nil {
		slog.Error("Failed to update purchase prompt", "error", err)
	}
}
