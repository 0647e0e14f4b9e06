package events

import (
	"context"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/kestrel-sys/danktracker/common"
)

type memberCacheKey struct {
	GuildID discord.GuildID
	UserID  discord.UserID
}

func (bot *Bot) guildCreate(g *gateway.GuildCreateEvent) {
	bot.DB.CreateServerIfNotExists(g.ID)

	bot.membersMu.Lock()
	for _, m := range g.Members {
		bot.members[memberCacheKey{g.ID, m.User.ID}] = m
	}
	bot.membersMu.Unlock()

	bot.chunkMu.Lock()
	bot.guildsToChunk[g.ID] = struct{}{}
	bot.chunkMu.Unlock()
}

func (bot *Bot) guildDelete(g *gateway.GuildDeleteEvent) {
	if g.Unavailable {
		return
	}

	bot.chunkMu.Lock()
	delete(bot.guildsToChunk, g.ID)
	bot.chunkMu.Unlock()

	bot.membersMu.Lock()
	for k := range bot.members {
		if k.GuildID == g.ID {
			delete(bot.members, k)
		}
	}
	bot.membersMu.Unlock()
}

func (bot *Bot) guildMemberChunk(g *gateway.GuildMembersChunkEvent) {
	bot.membersMu.Lock()
	for _, m := range g.Members {
		bot.members[memberCacheKey{g.GuildID, m.User.ID}] = m
	}
	bot.membersMu.Unlock()
}

func (bot *Bot) guildMemberAdd(ev *gateway.GuildMemberAddEvent) {
	bot.membersMu.Lock()
	bot.members[memberCacheKey{ev.GuildID, ev.User.ID}] = ev.Member
	bot.membersMu.Unlock()
}

func (bot *Bot) guildMemberUpdate(ev *gateway.GuildMemberUpdateEvent) {
	bot.membersMu.Lock()
	defer bot.membersMu.Unlock()

	m, ok := bot.members[memberCacheKey{ev.GuildID, ev.User.ID}]
	if !ok {
		return
	}
	ev.UpdateMember(&m)
	bot.members[memberCacheKey{ev.GuildID, ev.User.ID}] = m
}

func (bot *Bot) guildMemberRemove(ev *gateway.GuildMemberRemoveEvent) {
	bot.membersMu.Lock()
	delete(bot.members, memberCacheKey{ev.GuildID, ev.User.ID})
	bot.membersMu.Unlock()
}

// guildMembers returns the cached member list for a guild.
func (bot *Bot) guildMembers(guildID discord.GuildID) []discord.Member {
	bot.membersMu.Lock()
	defer bot.membersMu.Unlock()

	var members []discord.Member
	for k, m := range bot.members {
		if k.GuildID == guildID {
			members = append(members, m)
		}
	}
	return members
}

// chunkGuilds drains the chunk queue, requesting full member lists over the
// gateway one guild at a time.
func (bot *Bot) chunkGuilds() {
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()

	t := time.Now().UTC()

	for range tick.C {
		bot.chunkMu.Lock()

		if len(bot.guildsToChunk) == 0 {
			if !bot.doneChunking {
				common.Log.Infof("Done chunking in %v!", time.Since(t).Round(time.Millisecond))
				bot.doneChunking = true
			}
		} else if bot.doneChunking {
			common.Log.Infof("Chunking was finished, but joined new guilds, chunking those")
			bot.doneChunking = false
			t = time.Now().UTC()
		}

		var chunkID discord.GuildID
		for k := range bot.guildsToChunk {
			chunkID = k
			delete(bot.guildsToChunk, k)
			break
		}

		bot.chunkMu.Unlock()

		if !chunkID.IsValid() {
			continue
		}

		err := bot.State(chunkID).Gateway().Send(context.Background(), &gateway.RequestGuildMembersCommand{
			GuildIDs: []discord.GuildID{chunkID},
			Limit:    0,
		})
		if err != nil {
			common.Log.Errorf("Error chunking members for guild %v: %v", chunkID, err)

			bot.chunkMu.Lock()
			bot.guildsToChunk[chunkID] = struct{}{}
			bot.chunkMu.Unlock()
		}
	}
}
