package commands

import (
	"fmt"
	"sort"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
)

// sortedUserCounts returns "@mention: count" lines sorted by count, highest
// first.
func sortedUserCounts(m map[discord.UserID]int64) []string {
	type kv struct {
		k discord.UserID
		v int64
	}

	kvs := make([]kv, 0, len(m))
	for k, v := range m {
		kvs = append(kvs, kv{k, v})
	}
	sort.Slice(kvs, func(i, j int) bool {
		if kvs[i].v != kvs[j].v {
			return kvs[i].v > kvs[j].v
		}
		return kvs[i].k < kvs[j].k
	})

	lines := make([]string, 0, len(kvs))
	for _, e := range kvs {
		lines = append(lines, fmt.Sprintf("%v: %v", e.k.Mention(), humanize.Comma(e.v)))
	}
	return lines
}

func (bot *Bot) sharedUsers(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.SharedUsers) == 0 {
		_, err = ctx.Send("This user has shared nothing.")
		return
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator(fmt.Sprintf("Users %v has shared to", u.Tag()), bcr.ColourPurple, sortedUserCounts(s.SharedUsers), 20), false,
	)
	return
}

func (bot *Bot) giftedUsers(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.GiftedUsers) == 0 {
		_, err = ctx.Send("This user has gifted nothing.")
		return
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator(fmt.Sprintf("Users %v has gifted to", u.Tag()), bcr.ColourPurple, sortedUserCounts(s.GiftedUsers), 20), false,
	)
	return
}
