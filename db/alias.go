package db

import (
	"context"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/mediocregopher/radix/v4"

	"github.com/kestrel-sys/danktracker/common"
)

// The alias index maps previously resolved free-text names to user IDs, one
// hash per guild. It is an index over the members' stored_name fields, not
// the source of truth: a cold redis just means the cached-alias resolution
// step misses until names are resolved again.

func aliasKey(guildID discord.GuildID) string {
	return "danktracker:aliases:" + guildID.String()
}

// AliasUser looks up which user a free-text name previously resolved to.
func (db *DB) AliasUser(guildID discord.GuildID, name string) (discord.UserID, bool) {
	if db.Redis == nil {
		return 0, false
	}

	var raw string
	err := db.Redis.Do(context.Background(), radix.Cmd(&raw, "HGET", aliasKey(guildID), name))
	if err != nil {
		common.Log.Errorf("Error getting alias %q for guild %v: %v", name, guildID, err)
		return 0, false
	}
	if raw == "" {
		return 0, false
	}

	sf, err := discord.ParseSnowflake(raw)
	if err != nil {
		return 0, false
	}
	return discord.UserID(sf), true
}

func (db *DB) updateAlias(guildID discord.GuildID, userID discord.UserID, old, name string) {
	if db.Redis == nil {
		return
	}

	ctx := context.Background()

	if old != "" {
		err := db.Redis.Do(ctx, radix.Cmd(nil, "HDEL", aliasKey(guildID), old))
		if err != nil {
			common.Log.Errorf("Error deleting old alias for %v: %v", userID, err)
		}
	}

	err := db.Redis.Do(ctx, radix.Cmd(nil, "HSET", aliasKey(guildID), name, userID.String()))
	if err != nil {
		common.Log.Errorf("Error setting alias for %v: %v", userID, err)
	}
}
