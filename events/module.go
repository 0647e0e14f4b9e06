// Package events contains the gateway listeners: the gift message tracker
// and the caches it needs.
package events

import (
	"os"
	"sync"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/kestrel-sys/danktracker/bot"
	"github.com/kestrel-sys/danktracker/db"
)

// defaultDankUser is Dank Memer's user ID.
const defaultDankUser = discord.UserID(270904126974590976)

// Bot is the event handler state.
type Bot struct {
	*bot.Bot

	// DankUser is the game bot whose messages are tracked.
	DankUser discord.UserID

	guildCache *ttlcache.Cache

	members   map[memberCacheKey]discord.Member
	membersMu sync.Mutex

	guildsToChunk map[discord.GuildID]struct{}
	chunkMu       sync.Mutex
	doneChunking  bool
}

// Init sets up the event handlers.
func Init(b *bot.Bot) *Bot {
	bot := &Bot{
		Bot:      b,
		DankUser: defaultDankUser,

		guildCache:    ttlcache.NewCache(),
		members:       map[memberCacheKey]discord.Member{},
		guildsToChunk: map[discord.GuildID]struct{}{},
	}

	if sf, err := discord.ParseSnowflake(os.Getenv("DANK_MEMER_ID")); err == nil {
		bot.DankUser = discord.UserID(sf)
	}

	_ = bot.guildCache.SetTTL(time.Minute)

	bot.AddHandler(
		bot.guildCreate,
		bot.guildDelete,
		bot.guildMemberChunk,
		bot.guildMemberAdd,
		bot.guildMemberUpdate,
		bot.guildMemberRemove,
		bot.messageCreate,
	)

	go bot.chunkGuilds()

	return bot
}

// guildConfig returns a guild's configuration, from cache if possible.
func (bot *Bot) guildConfig(id discord.GuildID) (db.Guild, error) {
	if v, err := bot.guildCache.Get(id.String()); err == nil {
		return v.(db.Guild), nil
	}

	g, err := bot.DB.Guild(id)
	if err != nil {
		return g, err
	}

	_ = bot.guildCache.Set(id.String(), g)
	return g, nil
}
