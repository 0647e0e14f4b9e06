package commands

import (
	"fmt"
	"sort"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr"

	"github.com/kestrel-sys/danktracker/common"
)

func (bot *Bot) topShared(ctx *bcr.Context) (err error) {
	amount, _ := ctx.Flags.GetInt("amount")
	if amount <= 0 {
		amount = 10
	}
	roleInput, _ := ctx.Flags.GetString("role")

	var roles []discord.Role
	if roleInput != "" {
		roles = bot.fuzzyRoles(ctx, roleInput)
		if len(roles) == 0 {
			_, err = ctx.Send("No role with that name found.")
			return
		}
	}

	entries, err := bot.DB.AllMemberStats(ctx.Guild.ID)
	if err != nil {
		return bot.DB.ReportCtx(ctx, err)
	}

	members, err := ctx.State.Members(ctx.Guild.ID)
	if err != nil {
		common.Log.Errorf("Error fetching members for guild %v: %v", ctx.Guild.ID, err)
	}
	inGuild := make(map[discord.UserID]discord.Member, len(members))
	for _, m := range members {
		inGuild[m.User.ID] = m
	}

	type row struct {
		userID discord.UserID
		shared int64
	}

	var rows []row
	for _, e := range entries {
		if e.Stats.Shared <= 0 {
			continue
		}
		m, ok := inGuild[e.UserID]
		if !ok {
			continue
		}
		if len(roles) > 0 && !hasAnyRole(m, roles) {
			continue
		}
		rows = append(rows, row{e.UserID, e.Stats.Shared})
	}

	if len(rows) == 0 {
		_, err = ctx.Send("I have no tracked data for this server.")
		return
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].shared > rows[j].shared })
	if len(rows) > amount {
		rows = rows[:amount]
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		lines = append(lines, fmt.Sprintf("%v. %v: %v", i+1, r.userID.Mention(), humanize.Comma(r.shared)))
	}

	_, err = ctx.PagedEmbed(
		bcr.StringPaginator(fmt.Sprintf("Share Leaderboard for %v", ctx.Guild.Name), bcr.ColourPurple, lines, 10), false,
	)
	return
}

func hasAnyRole(m discord.Member, roles []discord.Role) bool {
	for _, want := range roles {
		for _, id := range m.RoleIDs {
			if id == want.ID {
				return true
			}
		}
	}
	return false
}
