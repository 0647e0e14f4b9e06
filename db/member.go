package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/jackc/pgx/v4"

	"github.com/kestrel-sys/danktracker/dank"
)

// Member record reads and writes are whole-record operations: the tracker
// reads the full record, mutates an in-memory copy, and writes the full
// record back. There is no transaction around the two writes of an event;
// concurrent writers outside the serial gateway stream are last-writer-wins.

// MemberStats returns a member's aggregate record, or an empty record if
// none exists yet. Records are only created on the first write.
func (db *DB) MemberStats(guildID discord.GuildID, userID discord.UserID) (s dank.MemberStats, err error) {
	db.Stats.IncQuery()

	err = db.QueryRow(context.Background(),
		"select data from members where guild_id = $1 and user_id = $2",
		guildID, userID).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return dank.NewMemberStats(), nil
	}
	if err != nil {
		return s, errors.Wrap(err, "getting member stats")
	}
	return s, nil
}

// SetMemberStats writes a member's full aggregate record.
func (db *DB) SetMemberStats(guildID discord.GuildID, userID discord.UserID, s dank.MemberStats) error {
	db.Stats.IncQuery()

	_, err := db.Exec(context.Background(),
		`insert into members (guild_id, user_id, data) values ($1, $2, $3)
		on conflict (guild_id, user_id) do update set data = $3`,
		guildID, userID, s)
	return errors.Wrap(err, "setting member stats")
}

// MemberEntry is one member's record paired with their ID, for server-wide
// queries (leaderboards, alias scans).
type MemberEntry struct {
	UserID discord.UserID
	Stats  dank.MemberStats
}

// AllMemberStats returns every tracked member record in a guild.
func (db *DB) AllMemberStats(guildID discord.GuildID) (entries []MemberEntry, err error) {
	db.Stats.IncQuery()

	rows, err := db.Query(context.Background(),
		"select user_id, data from members where guild_id = $1", guildID)
	if err != nil {
		return nil, errors.Wrap(err, "querying member stats")
	}
	defer rows.Close()

	for rows.Next() {
		var e MemberEntry
		if err := rows.Scan(&e.UserID, &e.Stats); err != nil {
			return nil, errors.Wrap(err, "scanning member stats")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetStoredName overwrites a member's cached alias, keeping the redis alias
// index in sync. A member has at most one cached alias at a time.
func (db *DB) SetStoredName(guildID discord.GuildID, userID discord.UserID, name string) error {
	s, err := db.MemberStats(guildID, userID)
	if err != nil {
		return err
	}

	if s.StoredName == name {
		return nil
	}

	old := s.StoredName
	s.StoredName = name

	if err := db.SetMemberStats(guildID, userID, s); err != nil {
		return err
	}

	db.updateAlias(guildID, userID, old, name)
	return nil
}
