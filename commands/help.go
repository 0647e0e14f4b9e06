package commands

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) help(ctx *bcr.Context) (err error) {
	// help for commands
	if len(ctx.Args) > 0 {
		return ctx.Help(ctx.Args)
	}

	e := discord.Embed{
		Title: "Help",
		Description: fmt.Sprintf(`%v tracks Dank Memer gifts and shares.
It watches for the game bot's "You gave ..." messages and keeps per-member statistics: coins shared and received, items gifted and received, and a full transfer history.`, ctx.Bot.Username),
		Color: bcr.ColourPurple,

		Fields: []discord.EmbedField{
			{
				Name: "Statistics commands",
				Value: "`dankinfo`: overview for yourself or another member\n\n" +
					"`dankinfo shared/received`: coin totals\n\n" +
					"`dankinfo gifted/receiveditems`: item lists\n\n" +
					"`dankinfo sharedusers/giftedusers`: who a member has sent to\n\n" +
					"`dankinfo receivedamount/giftedamount`: item totals priced with the server's price list\n\n" +
					"`dankinfo topshared`: share leaderboard (`--amount`, `--role`)\n\n" +
					"`dankinfo logs`: a member's transfer history (manage server only)",
			},
			{
				Name: "Configuration",
				Value: "`danklogset channel`: set or clear the log channel\n\n" +
					"`danklogset itemvalue`: change an item's price\n\n" +
					"`danklogset ignorechannel`: toggle tracking for a channel",
			},
		},
	}

	_, err = ctx.Send("", e)
	return
}
