package events

import (
	"sort"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/starshine-sys/bcr"

	"github.com/kestrel-sys/danktracker/common"
	"github.com/kestrel-sys/danktracker/dank"
	"github.com/kestrel-sys/danktracker/db"
	"github.com/kestrel-sys/danktracker/resolver"
)

// how many messages to look back for the command that triggered a gift
const antecedentLookback = 5

func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	if !m.GuildID.IsValid() {
		return
	}
	if m.Author.ID != bot.DankUser {
		return
	}
	if !strings.Contains(m.Content, dank.Trigger) {
		return
	}
	if bot.DB.IsIgnored(m.GuildID, m.ChannelID) {
		return
	}

	s := bot.State(m.GuildID)

	antecedent := bot.antecedentCommand(s, m)
	if antecedent == nil {
		common.Log.Debugf("No antecedent command found for gift message %v, dropping", m.ID)
		return
	}

	gift := dank.ParseGiftLine(m.Content, antecedent.Author.ID)
	if gift == nil {
		return
	}

	target := bot.resolveMember(m.GuildID, gift.Target)
	if target == nil {
		common.Log.Debugf("Could not resolve gift target %q in guild %v, dropping", gift.Target, m.GuildID)
		bot.DB.Stats.RegisterEvent("gift-unresolved")
		return
	}

	ev := dank.Event{
		Kind:      dank.Classify(antecedent.Content),
		Actor:     antecedent.Author.ID,
		Target:    target.User.ID,
		ActorTag:  antecedent.Author.Tag(),
		TargetTag: target.User.Tag(),
		Amount:    gift.Amount,
		Item:      gift.Item,
	}

	actorStats, err := bot.DB.MemberStats(m.GuildID, ev.Actor)
	if err != nil {
		common.Log.Errorf("Error getting stats for %v: %v", ev.Actor, err)
		return
	}
	targetStats, err := bot.DB.MemberStats(m.GuildID, ev.Target)
	if err != nil {
		common.Log.Errorf("Error getting stats for %v: %v", ev.Target, err)
		return
	}

	announcement, err := ev.Apply(&actorStats, &targetStats, time.Now())
	if err != nil {
		common.Log.Debugf("Dropping malformed event in guild %v: %v", m.GuildID, err)
		bot.DB.Stats.RegisterEvent("gift-malformed")
		return
	}

	if err := bot.DB.SetMemberStats(m.GuildID, ev.Actor, actorStats); err != nil {
		common.Log.Errorf("Error writing stats for %v: %v", ev.Actor, err)
		return
	}
	if err := bot.DB.SetMemberStats(m.GuildID, ev.Target, targetStats); err != nil {
		common.Log.Errorf("Error writing stats for %v: %v", ev.Target, err)
		return
	}

	switch ev.Kind {
	case dank.KindShare:
		bot.DB.Stats.RegisterEvent("share")
	case dank.KindGift:
		bot.DB.Stats.RegisterEvent("gift")
	}

	bot.announce(s, m, announcement)
}

// antecedentCommand finds the game command the bot was responding to: the
// most recent preceding message from a non-bot user that starts with the
// game prefix.
func (bot *Bot) antecedentCommand(s *state.State, m *gateway.MessageCreateEvent) *discord.Message {
	msgs, err := s.MessagesBefore(m.ChannelID, m.ID, antecedentLookback)
	if err != nil {
		common.Log.Errorf("Error fetching messages before %v: %v", m.ID, err)
		return nil
	}

	return pickAntecedent(msgs)
}

// pickAntecedent returns the newest message in msgs that was written by a
// non-bot user and starts with the game prefix, or nil if none qualifies.
func pickAntecedent(msgs []discord.Message) *discord.Message {
	// newest first
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID > msgs[j].ID })

	for i := range msgs {
		if msgs[i].Author.Bot {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(msgs[i].Content), "pls") {
			continue
		}
		return &msgs[i]
	}
	return nil
}

// resolveMember matches the name echoed by the game bot against the guild's
// cached member list.
func (bot *Bot) resolveMember(guildID discord.GuildID, name string) *discord.Member {
	members := bot.guildMembers(guildID)

	candidates := make([]resolver.Entity, 0, len(members))
	for _, m := range members {
		candidates = append(candidates, resolver.Member{Member: m})
	}

	e := resolver.Resolve(candidates, name, &dbAliasCache{bot.DB, guildID})
	if e == nil {
		return nil
	}

	m := e.(resolver.Member).Member
	return &m
}

// dbAliasCache backs the resolver's alias cache with the redis index and the
// members' stored names.
type dbAliasCache struct {
	db      *db.DB
	guildID discord.GuildID
}

func (c *dbAliasCache) Get(name string) (discord.Snowflake, bool) {
	id, ok := c.db.AliasUser(c.guildID, name)
	return discord.Snowflake(id), ok
}

func (c *dbAliasCache) Set(id discord.Snowflake, name string) {
	err := c.db.SetStoredName(c.guildID, discord.UserID(id), name)
	if err != nil {
		common.Log.Errorf("Error storing alias %q for %v: %v", name, id, err)
	}
}

// announce posts the event to the guild's log channel, if one is set.
func (bot *Bot) announce(s *state.State, m *gateway.MessageCreateEvent, announcement string) {
	g, err := bot.guildConfig(m.GuildID)
	if err != nil {
		common.Log.Errorf("Error getting guild config for %v: %v", m.GuildID, err)
		return
	}
	if !g.LogChannel.IsValid() {
		return
	}

	e := discord.Embed{
		Title: "Dank Memer Logs",
		Description: announcement + "\nIn channel: " + m.ChannelID.Mention() +
			"\n[Jump to message](" + m.URL() + ")",
		Color:     bcr.ColourPurple,
		Timestamp: discord.NowTimestamp(),
	}

	_, err = s.SendEmbeds(g.LogChannel, e)
	if err != nil {
		common.Log.Errorf("Error sending log message to %v: %v", g.LogChannel, err)
	}
}
