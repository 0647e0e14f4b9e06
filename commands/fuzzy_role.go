package commands

import (
	"strings"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/kestrel-sys/danktracker/common"
	"github.com/kestrel-sys/danktracker/resolver"
)

// fuzzyRoles resolves free-text role input to guild roles. The input can be
// several roles separated by ";;", each either a mention, an ID, or a name
// (matched fuzzily). "none" and unresolvable input return nil.
func (bot *Bot) fuzzyRoles(ctx *bcr.Context, input string) []discord.Role {
	if strings.EqualFold(strings.TrimSpace(input), "none") {
		return nil
	}

	guildRoles, err := ctx.State.Roles(ctx.Guild.ID)
	if err != nil {
		common.Log.Errorf("Error fetching roles for guild %v: %v", ctx.Guild.ID, err)
		return nil
	}

	candidates := make([]resolver.Entity, 0, len(guildRoles))
	for _, r := range guildRoles {
		candidates = append(candidates, resolver.Role{Role: r})
	}

	var roles []discord.Role
	for _, arg := range strings.Split(input, ";;") {
		arg = strings.TrimSpace(arg)
		arg = strings.TrimPrefix(arg, "<@&")
		arg = strings.TrimSuffix(arg, ">")
		if arg == "" {
			continue
		}

		if sf, err := discord.ParseSnowflake(arg); err == nil {
			for _, r := range guildRoles {
				if r.ID == discord.RoleID(sf) {
					roles = append(roles, r)
					break
				}
			}
			continue
		}

		e := resolver.Resolve(candidates, arg, &roleAliasCache{bot.roleAliases, ctx.Guild.ID})
		if e == nil {
			continue
		}
		roles = append(roles, e.(resolver.Role).Role)
	}

	return roles
}

// roleAliasCache holds resolved role names in memory; unlike member aliases
// these are not worth persisting.
type roleAliasCache struct {
	cache   *ttlcache.Cache
	guildID discord.GuildID
}

func (c *roleAliasCache) key(name string) string {
	return c.guildID.String() + "/" + name
}

func (c *roleAliasCache) Get(name string) (discord.Snowflake, bool) {
	v, err := c.cache.Get(c.key(name))
	if err != nil {
		return 0, false
	}
	return v.(discord.Snowflake), true
}

func (c *roleAliasCache) Set(id discord.Snowflake, name string) {
	_ = c.cache.Set(c.key(name), id)
}
