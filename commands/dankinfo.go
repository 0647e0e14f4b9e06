package commands

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) overview(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	e := discord.Embed{
		Title: fmt.Sprintf("Dank Memer Gift & Share Stats for %v", u.Tag()),
		Color: bcr.ColourPurple,
		Description: fmt.Sprintf(
			"Shared Money: %v\nTotal Shared Items: %v\nTotal Shared Users: %v\nTotal Gifted Users: %v",
			humanize.Comma(s.Shared), len(s.Gifted), len(s.SharedUsers), len(s.GiftedUsers),
		),
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) shared(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	_, err = ctx.Sendf("**%v** has shared a total of **%v** coins in this server.", u.Tag(), humanize.Comma(s.Shared))
	return
}

func (bot *Bot) received(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	_, err = ctx.Sendf("**%v** has received **%v** coins.", u.Tag(), humanize.Comma(s.Received))
	return
}

func (bot *Bot) receivedAmount(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	g, err := bot.DB.Guild(ctx.Guild.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}
	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.ReceivedItems) == 0 {
		_, err = ctx.Send("This user hasn't received any items.")
		return
	}

	var total int64
	for item, amount := range s.ReceivedItems {
		// items without a price are skipped
		total += amount * g.ItemValues[item]
	}

	_, err = ctx.Sendf("**%v** has received **%v** worth of items in **%v**.", u.Tag(), humanize.Comma(total), ctx.Guild.Name)
	return
}

func (bot *Bot) giftedAmount(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	g, err := bot.DB.Guild(ctx.Guild.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}
	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.Gifted) == 0 {
		_, err = ctx.Send("This user hasn't gifted out anything.")
		return
	}

	var total int64
	for item, amount := range s.Gifted {
		total += amount * g.ItemValues[item]
	}

	_, err = ctx.Sendf("**%v** has gifted **%v** worth of items in **%v**.", u.Tag(), humanize.Comma(total), ctx.Guild.Name)
	return
}
