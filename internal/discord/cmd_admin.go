package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GuildCoin_Go/internal/admin"
)

// AdminCommand returns the admin command definition and handler. Everything
// administrative lives under one command as subcommand groups, and every
// branch goes through the same authorization check. Unlike the user-facing
// commands, /admin works in any channel.
func AdminCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	userOpt := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: desc,
			Required:    true,
		}
	}
	amountOpt := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: desc,
			Required:    true,
		}
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "admin",
		Description: "Economy administration",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "coins",
				Description: "Manage user balances",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "add",
						Description: "Add coins to a user",
						Options:     []*discordgo.ApplicationCommandOption{userOpt("User to credit"), amountOpt("Coins to add")},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "remove",
						Description: "Remove coins from a user (stops at zero)",
						Options:     []*discordgo.ApplicationCommandOption{userOpt("User to debit"), amountOpt("Coins to remove")},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "set",
						Description: "Set a user's balance",
						Options:     []*discordgo.ApplicationCommandOption{userOpt("User to update"), amountOpt("New balance")},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "view",
						Description: "View a user's balance",
						Options:     []*discordgo.ApplicationCommandOption{userOpt("User to inspect")},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "shop",
				Description: "Manage the role shop",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "additem",
						Description: "Add an item to the shop",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "name",
								Description: "Item name",
								Required:    true,
							},
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "price",
								Description: "Price in coins",
								Required:    true,
							},
							{
								Type:        discordgo.ApplicationCommandOptionRole,
								Name:        "role",
								Description: "Role granted on purchase",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "removeitem",
						Description: "Remove an item from the shop",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "name",
								Description: "Item name (partial names match)",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "updateprice",
						Description: "Change an item's price",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "name",
								Description: "Item name (partial names match)",
								Required:    true,
							},
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "price",
								Description: "New price in coins",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List shop items",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "roles",
				Description: "Manage the admin role registry",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "add",
						Description: "Register a role as admin",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionRole,
								Name:        "role",
								Description: "Role to register",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "remove",
						Description: "Unregister an admin role",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionRole,
								Name:        "role",
								Description: "Role to unregister",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List registered admin roles",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "daily",
				Description: "Manage daily rewards",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "reset",
						Description: "Reset a user's daily claim and streak",
						Options:     []*discordgo.ApplicationCommandOption{userOpt("User to reset")},
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		ctx := interactionContext()

		if err := b.authorizeAdmin(ctx, i); err != nil {
			respondEphemeral(s, i, MsgUnauthorized)
			return
		}
		options := getOptions(i)
		if len(options) == 0 || len(options[0].Options) == 0 {
			if !deferResponse(s, i) {
				return
			}
			sendEmbed(s, i, createEmbed("🛠️ Admin", adminHelp(), ColorGray, FooterGuildCoinAdmin))
			return
		}
		group := options[0]
		sub := group.Options[0]

		if registryMutation(group.Name, sub.Name) {
			if err := b.authorizeAdministrator(ctx, i); err != nil {
				respondEphemeral(s, i, MsgAdministratorOnly)
				return
			}
		}

		if !deferResponse(s, i) {
			return
		}

		var (
			msg string
			err error
		)
		switch group.Name {
		case "coins":
			msg, err = b.handleAdminCoins(ctx, s, sub)
		case "shop":
			msg, err = b.handleAdminShop(ctx, sub)
		case "roles":
			msg, err = b.handleAdminRoles(ctx, sub)
		case "daily":
			msg, err = b.handleAdminDaily(ctx, s, sub)
		default:
			msg = adminHelp()
		}

		if err != nil {
			slog.Error("Admin command failed", "group", group.Name, "subcommand", sub.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed("🛠️ Admin", msg, ColorGray, FooterGuildCoinAdmin))
	}

	return cmd, handler
}

// adminHelp lists the available admin operations. Shown when an interaction
// arrives without a recognizable subcommand.
func adminHelp() string {
	return strings.Join([]string{
		"**coins** — `add`, `remove`, `set`, `view`",
		"**shop** — `additem`, `removeitem`, `updateprice`, `list`",
		"**roles** — `add`, `remove`, `list`",
		"**daily** — `reset`",
	}, "\n")
}

// registryMutation reports whether the subcommand changes the admin role
// registry. Those branches are reserved for the Administrator permission
// itself, so a registered admin role cannot be used to register more.
func registryMutation(group, sub string) bool {
	return group == "roles" && (sub == "add" || sub == "remove")
}

// interactionActor converts the invoking member into an authorization actor.
func interactionActor(i *discordgo.InteractionCreate) admin.Actor {
	if i.Member == nil {
		return admin.Actor{UserID: getInteractionUser(i).ID}
	}
	return admin.Actor{
		UserID:             i.Member.User.ID,
		RoleIDs:            i.Member.Roles,
		HasAdminPermission: i.Member.Permissions&discordgo.PermissionAdministrator != 0,
	}
}

// authorizeAdmin checks the caller against the Administrator permission and
// the registered admin roles.
func (b *Bot) authorizeAdmin(ctx context.Context, i *discordgo.InteractionCreate) error {
	return b.admin.Authorize(ctx, interactionActor(i))
}

// authorizeAdministrator gates registry mutations on the Administrator
// permission alone.
func (b *Bot) authorizeAdministrator(ctx context.Context, i *discordgo.InteractionCreate) error {
	return b.admin.AuthorizeAdministrator(ctx, interactionActor(i))
}

func (b *Bot) handleAdminCoins(ctx context.Context, s *discordgo.Session, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	target := sub.Options[0].UserValue(s)

	switch sub.Name {
	case "add":
		amount := sub.Options[1].IntValue()
		balance, err := b.ledger.Credit(ctx, target.ID, amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added **%d** coins to %s. New balance: **%d**", amount, target.Mention(), balance), nil

	case "remove":
		amount := sub.Options[1].IntValue()
		balance, err := b.ledger.DeductUpTo(ctx, target.ID, amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed up to **%d** coins from %s. New balance: **%d**", amount, target.Mention(), balance), nil

	case "set":
		amount := sub.Options[1].IntValue()
		if err := b.ledger.SetBalance(ctx, target.ID, amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("Set %s's balance to **%d** coins.", target.Mention(), amount), nil

	case "view":
		balance, err := b.ledger.GetBalance(ctx, target.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s has **%d** coins.", target.Mention(), balance), nil
	}

	return MsgGenericError, nil
}

func (b *Bot) handleAdminShop(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	switch sub.Name {
	case "additem":
		name := sub.Options[0].StringValue()
		price := sub.Options[1].IntValue()
		role := sub.Options[2].RoleValue(nil, "")
		if err := b.shop.AddItem(ctx, name, price, role.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added **%s** to the shop for **%d** coins.", name, price), nil

	case "removeitem":
		item, err := b.shop.RemoveItem(ctx, sub.Options[0].StringValue())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Removed **%s** from the shop.", item.Name), nil

	case "updateprice":
		item, err := b.shop.UpdatePrice(ctx, sub.Options[0].StringValue(), sub.Options[1].IntValue())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("**%s** now costs **%d** coins.", item.Name, item.Price), nil

	case "list":
		items, err := b.shop.ListItems(ctx)
		if err != nil {
			return "", err
		}
		if len(items) == 0 {
			return "The shop is empty.", nil
		}
		var sb strings.Builder
		for _, item := range items {
			fmt.Fprintf(&sb, "`#%d` **%s** — %d coins (<@&%s>)\n", item.ID, item.Name, item.Price, item.RoleID)
		}
		return sb.String(), nil
	}

	return MsgGenericError, nil
}

func (b *Bot) handleAdminRoles(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	switch sub.Name {
	case "add":
		role := sub.Options[0].RoleValue(nil, "")
		if err := b.admin.AddRole(ctx, role.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Registered <@&%s> as an admin role.", role.ID), nil

	case "remove":
		role := sub.Options[0].RoleValue(nil, "")
		if err := b.admin.RemoveRole(ctx, role.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Unregistered <@&%s>.", role.ID), nil

	case "list":
		roles, err := b.admin.ListRoles(ctx)
		if err != nil {
			return "", err
		}
		if len(roles) == 0 {
			return "No admin roles registered. Only members with the Administrator permission can use /admin.", nil
		}
		var sb strings.Builder
		for _, role := range roles {
			fmt.Fprintf(&sb, "<@&%s>\n", role.RoleID)
		}
		return sb.String(), nil
	}

	return MsgGenericError, nil
}

func (b *Bot) handleAdminDaily(ctx context.Context, s *discordgo.Session, sub *discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	if sub.Name != "reset" {
		return MsgGenericError, nil
	}

	target := sub.Options[0].UserValue(s)
	if err := b.daily.Reset(ctx, target.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Reset %s's daily claim and streak.", target.Mention()), nil
}
