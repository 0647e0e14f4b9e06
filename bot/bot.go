// Package bot ties the command router and the database together.
package bot

import (
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/starshine-sys/bcr"

	"github.com/kestrel-sys/danktracker/db"
)

type Bot struct {
	Router *bcr.Router
	DB     *db.DB

	Start time.Time
}

// New creates a new Bot.
func New(r *bcr.Router, database *db.DB) *Bot {
	return &Bot{
		Router: r,
		DB:     database,
		Start:  time.Now().UTC(),
	}
}

// AddHandler adds handlers to all shard states.
func (bot *Bot) AddHandler(handlers ...interface{}) {
	bot.Router.ShardManager.ForEach(func(s shard.Shard) {
		st := s.(*state.State)
		for _, h := range handlers {
			st.AddHandler(h)
		}
	})
}

// State returns the state for the shard handling the given guild.
func (bot *Bot) State(id discord.GuildID) *state.State {
	s, _ := bot.Router.StateFromGuildID(id)
	return s
}
