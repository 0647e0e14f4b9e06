package commands

import (
	"fmt"

	"github.com/starshine-sys/bcr"
)

func (bot *Bot) logs(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.Logs) == 0 {
		_, err = ctx.Send("This user has no logs to show.")
		return
	}

	// newest first
	lines := make([]string, 0, len(s.Logs))
	for i := len(s.Logs) - 1; i >= 0; i-- {
		lines = append(lines, s.Logs[i])
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator(fmt.Sprintf("Logs for %v", u.Tag()), bcr.ColourPurple, lines, 10), false,
	)
	return
}
