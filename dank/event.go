package dank

import (
	"fmt"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
)

// Kind is the classification of a transfer event.
type Kind int

const (
	// KindShare is a transfer of currency.
	KindShare Kind = iota
	// KindGift is a transfer of a named item.
	KindGift
)

// ErrNoItem is returned for a gift event with no item name. Such events are
// malformed and must be dropped without touching either record.
const ErrNoItem = errors.Sentinel("gift event has no item")

const timeLayout = "Mon, 02 Jan 2006 15:04:05"

// Classify determines the event kind from the command the bot was responding
// to: commands starting with a share/give verb are shares, everything else
// (trade, gift, ...) transfers items.
func Classify(antecedent string) Kind {
	c := strings.ToLower(antecedent)
	if strings.HasPrefix(c, "pls share") || strings.HasPrefix(c, "pls give") {
		return KindShare
	}
	return KindGift
}

// Event is a fully resolved transfer, ready to be applied to both parties'
// aggregate records.
type Event struct {
	Kind Kind

	Actor     discord.UserID
	Target    discord.UserID
	ActorTag  string
	TargetTag string

	Amount int64
	Item   string
}

// Apply updates both parties' records in place and returns the announcement
// text for the guild's log channel. Either all counters for both parties
// update together, or (for a malformed event) none do; callers must only
// persist the records when Apply returns nil.
func (ev Event) Apply(actor, target *MemberStats, now time.Time) (announcement string, err error) {
	if ev.Kind == KindGift && ev.Item == "" {
		return "", ErrNoItem
	}

	actor.ensureMaps()
	target.ensureMaps()

	ts := now.UTC().Format(timeLayout)
	amount := humanize.Comma(ev.Amount)

	switch ev.Kind {
	case KindShare:
		actor.SharedUsers[ev.Target]++
		actor.Shared += ev.Amount
		target.Received += ev.Amount

		actor.Logs = append(actor.Logs,
			fmt.Sprintf("At %v, %v was shared to %v (ID of %v)", ts, amount, ev.TargetTag, ev.Target))
		target.Logs = append(target.Logs,
			fmt.Sprintf("At %v, %v was received from %v (ID of %v)", ts, amount, ev.ActorTag, ev.Actor))

		announcement = fmt.Sprintf("%v shared %v coins to %v", ev.Actor.Mention(), amount, ev.Target.Mention())
	case KindGift:
		actor.GiftedUsers[ev.Target]++
		actor.Gifted[ev.Item] += ev.Amount
		target.ReceivedItems[ev.Item] += ev.Amount

		actor.Logs = append(actor.Logs,
			fmt.Sprintf("On %v, %v %v was sent to %v", ts, amount, ev.Item, ev.TargetTag))
		target.Logs = append(target.Logs,
			fmt.Sprintf("On %v, %v gave %v %v", ts, ev.ActorTag, amount, ev.Item))

		announcement = fmt.Sprintf("%v gave %v %v to %v", ev.Actor.Mention(), amount, ev.Item, ev.Target.Mention())
	}

	return announcement, nil
}
