package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nYour balance doesn't cover this purchase."

	// Shop
	MsgItemNotFound    = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgAmbiguousItem   = "❓ **Which One?**\nMore than one item matches that name. Be more specific."
	MsgSessionExpired  = "⏳ **Purchase Expired**\nThat purchase prompt is no longer valid. Open the shop again."
	MsgNotYourPurchase = "🚫 **Not Your Purchase**\nOnly the person who started this purchase can respond to it."
	MsgRoleGrantFailed = "⚠️ **Role Grant Failed**\nYour coins were refunded. Ask a moderator to check the bot's role permissions."

	// Daily
	MsgAlreadyClaimed = "☀️ **Already Claimed**\nYou've collected today's reward. Come back tomorrow!"

	// Admin
	MsgUnauthorized      = "🔒 **Admins Only**\nYou don't have permission to use this command."
	MsgAdministratorOnly = "🔒 **Administrator Only**\nChanging the admin role registry requires the Administrator permission."
	MsgRoleExists        = "ℹ️ That role is already registered."
	MsgRoleNotFound      = "❓ That role isn't registered."
	MsgItemExists        = "ℹ️ An item with that name already exists."
	MsgAccountUnknown    = "👤 That user doesn't have an account yet."

	// Channel gating
	MsgWrongChannel    = "🚫 This command can't be used in this channel."
	MsgShopChannelOnly = "🏪 The shop is only open in the shop channel."

	MsgGenericError = "❌ Something went wrong."
)

// Embed footers
const (
	FooterGuildCoin      = "GuildCoin"
	FooterGuildCoinAdmin = "GuildCoin Admin"
)

// Embed colors
const (
	ColorGreen  = 0x2ecc71
	ColorBlue   = 0x3498db
	ColorGold   = 0xf1c40f
	ColorOrange = 0xe67e22
	ColorGray   = 0x95a5a6
	ColorRed    = 0xe74c3c
)
