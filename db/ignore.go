package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/kestrel-sys/danktracker/common"
)

// IsIgnored reports whether gift messages in the given channel are ignored.
func (db *DB) IsIgnored(guildID discord.GuildID, ch discord.ChannelID) bool {
	db.Stats.IncQuery()

	var ignored bool
	err := db.QueryRow(context.Background(),
		"select exists(select id from guilds where $1 = any(ignored_channels) and id = $2)",
		ch, guildID).Scan(&ignored)
	if err != nil {
		common.Log.Errorf("Error checking if channel %v is ignored: %v", ch, err)
		return false
	}
	return ignored
}

// ToggleIgnored flips a channel's ignored flag and returns the new state.
func (db *DB) ToggleIgnored(guildID discord.GuildID, ch discord.ChannelID) (nowIgnored bool, err error) {
	if db.IsIgnored(guildID, ch) {
		db.Stats.IncQuery()

		_, err = db.Exec(context.Background(),
			"update guilds set ignored_channels = array_remove(ignored_channels, $1) where id = $2",
			ch, guildID)
		return false, errors.Wrap(err, "removing ignored channel")
	}

	db.Stats.IncQuery()

	_, err = db.Exec(context.Background(),
		"update guilds set ignored_channels = array_append(ignored_channels, $1) where id = $2",
		ch, guildID)
	return true, errors.Wrap(err, "adding ignored channel")
}
