// Package commands contains the message commands: the dankinfo statistics
// group and the danklogset configuration group.
package commands

import (
	"strings"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"

	"github.com/kestrel-sys/danktracker/bot"
)

// Bot is the command handler state.
type Bot struct {
	*bot.Bot

	roleAliases *ttlcache.Cache
}

// Init sets up all commands.
func Init(b *bot.Bot) *Bot {
	bot := &Bot{
		Bot: b,

		roleAliases: ttlcache.NewCache(),
	}

	_ = bot.roleAliases.SetTTL(10 * time.Minute)

	info := bot.Router.AddCommand(&bcr.Command{
		Name:    "dankinfo",
		Aliases: []string{"dankstats"},
		Summary: "Show a member's gift and share statistics.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.overview),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "shared",
		Summary: "Show the total amount of coins a member has shared.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.shared),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "received",
		Summary: "Show the total amount of coins a member has received.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.received),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "gifted",
		Summary: "Show the items a member has gifted.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.gifted),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "receiveditems",
		Summary: "Show the items a member has received.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.receivedItems),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "sharedusers",
		Summary: "Show the members a member has shared coins to.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.sharedUsers),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "giftedusers",
		Summary: "Show the members a member has gifted items to.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.giftedUsers),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "receivedamount",
		Summary: "Show the total value of the items a member has received, using the server's price list.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.receivedAmount),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "giftedamount",
		Summary: "Show the total value of the items a member has gifted, using the server's price list.",
		Usage:   "[user]",

		GuildOnly: true,
		Command:   bot.cmd(bot.giftedAmount),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "itemvalues",
		Summary: "Show the server's item price list.",

		GuildOnly: true,
		Command:   bot.cmd(bot.itemValues),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "logs",
		Summary: "Show a member's transfer history.",
		Usage:   "[user]",

		GuildOnly:   true,
		Permissions: discord.PermissionManageGuild,
		Command:     bot.cmd(bot.logs),
	})

	info.AddSubcommand(&bcr.Command{
		Name:    "topshared",
		Aliases: []string{"mostshared"},
		Summary: "Show the members that have shared the most coins.",
		Usage:   "[--amount n] [--role role]",
		Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
			fs.IntP("amount", "n", 10, "How many members to show.")
			fs.StringP("role", "r", "", "Only count members with this role.")
			return fs
		},

		GuildOnly: true,
		Command:   bot.cmd(bot.topShared),
	})

	set := bot.Router.AddCommand(&bcr.Command{
		Name:    "danklogset",
		Aliases: []string{"dls"},
		Summary: "Configure gift and share tracking for this server.",

		GuildOnly:   true,
		Permissions: discord.PermissionManageGuild,
		Command:     bot.cmd(bot.settings),
	})

	set.AddSubcommand(&bcr.Command{
		Name:    "channel",
		Summary: "Set the channel transfers are logged to, or clear it.",
		Usage:   "[channel]",

		GuildOnly:   true,
		Permissions: discord.PermissionManageGuild,
		Command:     bot.cmd(bot.setChannel),
	})

	set.AddSubcommand(&bcr.Command{
		Name:    "itemvalue",
		Aliases: []string{"itemprice"},
		Summary: "Change the price of an item in the server's price list.",
		Usage:   "<item> <price>",
		Args:    bcr.MinArgs(2),

		GuildOnly:   true,
		Permissions: discord.PermissionManageGuild,
		Command:     bot.cmd(bot.itemValue),
	})

	set.AddSubcommand(&bcr.Command{
		Name:    "ignorechannel",
		Aliases: []string{"ignore-channel"},
		Summary: "Toggle whether the current (or given) channel is ignored.",
		Usage:   "[channel]",

		GuildOnly:   true,
		Permissions: discord.PermissionManageGuild,
		Command:     bot.cmd(bot.ignoreChannel),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "ping",
		Summary: "Show the bot's latency and other stats.",

		Command: bot.cmd(bot.ping),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "help",
		Summary: "Show information about the bot, or a specific command.",
		Usage:   "[command]",

		Command: bot.cmd(bot.help),
	})

	bot.Router.AddCommand(&bcr.Command{
		Name:    "stats",
		Summary: "Show store totals.",

		OwnerOnly: true,
		Command:   bot.cmd(bot.adminStats),
	})

	return bot
}

// cmd wraps a command handler to count invocations.
func (bot *Bot) cmd(f func(*bcr.Context) error) func(*bcr.Context) error {
	return func(ctx *bcr.Context) error {
		bot.DB.Stats.IncCommand()
		return f(ctx)
	}
}

// memberArg parses the optional user argument, defaulting to the invoker.
// If it returns !ok the error reply has already been sent.
func (bot *Bot) memberArg(ctx *bcr.Context) (user discord.User, ok bool) {
	if strings.TrimSpace(ctx.RawArgs) == "" {
		return ctx.Author, true
	}

	m, err := ctx.ParseMember(ctx.RawArgs)
	if err != nil {
		_, _ = ctx.Send("No user with that name found.")
		return user, false
	}
	return m.User, true
}
