package commands

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) adminStats(ctx *bcr.Context) (err error) {
	var guilds, members int64

	err = bot.DB.QueryRow(context.Background(), "select count(*) from guilds").Scan(&guilds)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}
	err = bot.DB.QueryRow(context.Background(), "select count(*) from members").Scan(&members)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	e := discord.Embed{
		Title: "Store stats",
		Color: bcr.ColourPurple,
		Fields: []discord.EmbedField{
			{Name: "Servers", Value: humanize.Comma(guilds), Inline: true},
			{Name: "Tracked members", Value: humanize.Comma(members), Inline: true},
		},
	}

	_, err = ctx.Send("", e)
	return
}
