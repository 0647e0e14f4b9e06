package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"

	"github.com/kestrel-sys/danktracker/common"
)

// Guild is the per-server configuration row.
type Guild struct {
	ID         discord.GuildID
	LogChannel discord.ChannelID
	ItemValues map[string]int64
}

// DefaultItemValues is the price table new servers start with.
// Values can be changed per server with `danklogset itemvalue`.
var DefaultItemValues = map[string]int64{
	"alcohol":           5000,
	"apple":             2500,
	"banknote":          225000,
	"blob":              900000000,
	"boar":              500,
	"bread":             30000,
	"candy":             3000,
	"cheese":            5000,
	"chillpill":         20000,
	"coinbomb":          12000,
	"cookie":            10,
	"cupidsbigtoe":      100000,
	"cutters":           300000,
	"dank":              200000,
	"deer":              40000,
	"dragon":            60000,
	"duck":              150,
	"exoticfish":        10000,
	"fakeid":            700,
	"fish":              250,
	"fishingpole":       7500,
	"fool":              75000,
	"gift":              750000,
	"god":               3000000,
	"horseshoe":         35000,
	"huntingrifle":      7500,
	"jacky":             5000000,
	"landmine":          2500,
	"laptop":            1000,
	"legendaryfish":     25000,
	"lifesaver":         4000,
	"lotterywinner":     100000000,
	"meme":              100000,
	"normie":            80000,
	"padlock":           1500,
	"pepe":              95000,
	"pepecoin":          900000,
	"pepemedal":         8500000,
	"pepetrophy":        45000000,
	"phone":             750,
	"pinkphallicobject": 5,
	"pizza":             100000,
	"rabbit":            350,
	"rarefish":          2500,
	"santashat":         150000,
	"sand":              2000,
	"skunk":             250,
	"snowball":          10000,
	"spinner":           7000,
	"tidepod":           15000,
	"wishlist":          15000,
}

// defaultItemValues returns a fresh copy of the default price table.
// Guild rows mutate their own table in place, so handing out the package
// default itself would let one guild's prices leak into every other.
func defaultItemValues() map[string]int64 {
	m := make(map[string]int64, len(DefaultItemValues))
	for k, v := range DefaultItemValues {
		m[k] = v
	}
	return m
}

// Guild returns a server's configuration, creating the row with defaults if
// it doesn't exist yet.
func (db *DB) Guild(id discord.GuildID) (g Guild, err error) {
	sql, args, err := sq.Select("id", "log_channel", "item_values").
		From("guilds").Where("id = ?", id).ToSql()
	if err != nil {
		return g, errors.Wrap(err, "building sql")
	}

	db.Stats.IncQuery()

	err = pgxscan.Get(context.Background(), db, &g, sql, args...)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return g, errors.Wrap(err, "getting guild")
	}

	db.CreateServerIfNotExists(id)
	return Guild{ID: id, ItemValues: defaultItemValues()}, nil
}

// CreateServerIfNotExists inserts a configuration row with defaults.
func (db *DB) CreateServerIfNotExists(id discord.GuildID) {
	db.Stats.IncQuery()

	_, err := db.Exec(context.Background(),
		"insert into guilds (id, item_values) values ($1, $2) on conflict (id) do nothing",
		id, DefaultItemValues)
	if err != nil {
		common.Log.Errorf("Error creating guild %v: %v", id, err)
	}
}

// SetLogChannel sets the channel transfers are announced in.
// A zero channel ID clears it.
func (db *DB) SetLogChannel(guildID discord.GuildID, ch discord.ChannelID) error {
	db.Stats.IncQuery()

	_, err := db.Exec(context.Background(),
		"update guilds set log_channel = $1 where id = $2", ch, guildID)
	return errors.Wrap(err, "setting log channel")
}

// SetItemValue updates the price for a single item. Items not in the
// server's table can't be added, matching the command's contract.
func (db *DB) SetItemValue(guildID discord.GuildID, item string, price int64) (exists bool, err error) {
	g, err := db.Guild(guildID)
	if err != nil {
		return false, err
	}

	if _, ok := g.ItemValues[item]; !ok {
		return false, nil
	}
	g.ItemValues[item] = price

	db.Stats.IncQuery()

	_, err = db.Exec(context.Background(),
		"update guilds set item_values = $1 where id = $2", g.ItemValues, guildID)
	return true, errors.Wrap(err, "setting item value")
}
