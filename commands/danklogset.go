package commands

import (
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) settings(ctx *bcr.Context) (err error) {
	g, err := bot.DB.Guild(ctx.Guild.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	logChannel := "not set"
	if g.LogChannel.IsValid() {
		logChannel = g.LogChannel.Mention()
	}

	e := discord.Embed{
		Title: "Tracking settings",
		Color: bcr.ColourPurple,
		Fields: []discord.EmbedField{
			{Name: "Log channel", Value: logChannel, Inline: true},
			{Name: "Tracked items", Value: humanize.Comma(int64(len(g.ItemValues))), Inline: true},
		},
		Footer: &discord.EmbedFooter{
			Text: "Use `" + ctx.Prefix + "danklogset channel/itemvalue/ignorechannel` to change these.",
		},
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) setChannel(ctx *bcr.Context) (err error) {
	if strings.TrimSpace(ctx.RawArgs) == "" {
		err = bot.DB.SetLogChannel(ctx.Guild.ID, 0)
		if err != nil {
			return bot.DB.ReportCtx(ctx, err)
		}

		_, err = ctx.Send("I will no longer have a channel.")
		return
	}

	ch, err := ctx.ParseChannel(ctx.RawArgs)
	if err != nil || ch.GuildID != ctx.Guild.ID || ch.Type != discord.GuildText {
		_, err = ctx.Send("No channel with that name found.")
		return
	}

	err = bot.DB.SetLogChannel(ctx.Guild.ID, ch.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	_, err = ctx.Sendf("I will now log actions to %v.", ch.Mention())
	return
}

func (bot *Bot) itemValue(ctx *bcr.Context) (err error) {
	item := ctx.Args[0]
	price, perr := strconv.ParseInt(strings.ReplaceAll(ctx.Args[1], ",", ""), 10, 64)
	if perr != nil || price < 0 {
		_, err = ctx.Send("That's not a valid price.")
		return
	}

	exists, err := bot.DB.SetItemValue(ctx.Guild.ID, item, price)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}
	if !exists {
		_, err = ctx.Send("This item does not exist.")
		return
	}

	_, err = ctx.Sendf("Done. The price for **%v** is now **%v**.", bcr.EscapeBackticks(item), humanize.Comma(price))
	return
}

func (bot *Bot) ignoreChannel(ctx *bcr.Context) (err error) {
	ch := ctx.Channel
	if strings.TrimSpace(ctx.RawArgs) != "" {
		ch, err = ctx.ParseChannel(ctx.RawArgs)
		if err != nil || ch.GuildID != ctx.Guild.ID {
			_, err = ctx.Send("No channel with that name found.")
			return
		}
	}

	ignored, err := bot.DB.ToggleIgnored(ctx.Guild.ID, ch.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if ignored {
		_, err = ctx.Sendf("Now ignoring %v, transfers there will no longer be tracked.", ch.Mention())
	} else {
		_, err = ctx.Sendf("No longer ignoring %v.", ch.Mention())
	}
	return
}
