package commands

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"
)

// sortedCounts returns "name: amount" lines sorted by amount, highest first.
func sortedCounts(m map[string]int64) []string {
	type kv struct {
		k string
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
		lines = append(lines, fmt.Sprintf("%v: %v", e.k, humanize.Comma(e.v)))
	}
	return lines
}

func (bot *Bot) gifted(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.Gifted) == 0 {
		_, err = ctx.Send("This user has not gifted anything yet.")
		return
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator(fmt.Sprintf("Gifted items for %v", u.Tag()), bcr.ColourPurple, sortedCounts(s.Gifted), 20), false,
	)
	return
}

func (bot *Bot) receivedItems(ctx *bcr.Context) (err error) {
	u, ok := bot.memberArg(ctx)
	if !ok {
		return
	}

	s, err := bot.DB.MemberStats(ctx.Guild.ID, u.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	if len(s.ReceivedItems) == 0 {
		_, err = ctx.Send("This user has received nothing.")
		return
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator(fmt.Sprintf("Items %v has received", u.Tag()), bcr.ColourPurple, sortedCounts(s.ReceivedItems), 20), false,
	)
	return
}

func (bot *Bot) itemValues(ctx *bcr.Context) (err error) {
	g, err := bot.DB.Guild(ctx.Guild.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	items := make([]string, 0, len(g.ItemValues))
	for item := range g.ItemValues {
		items = append(items, item)
	}
	sort.Strings(items)

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%v: %v", item, humanize.Comma(g.ItemValues[item])))
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator("Item values", bcr.ColourPurple, lines, 20), false,
	)
	return
}
