package dank

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
)

// Trigger is the substring every trackable Dank Memer gift message contains.
// Messages without it are skipped before any further work.
const Trigger = "You gave"

// currency glyph Dank Memer prefixes amounts with
const currencyGlyph = "⏣ "

// anchored: after mention/glyph stripping the gift line starts with the
// trigger, anything before it means this isn't a gift message
var giftPattern = regexp.MustCompile(`^You gave (?P<user>.*?\w{2,32})  ?(?P<amount>[0-9,]+) ?(?:(?P<item>\w{2,32}))?`)

// ParsedGift is a structured gift line: who received, how much, and
// optionally which item. An empty Item means currency was transferred.
type ParsedGift struct {
	Target string
	Amount int64
	Item   string
}

// ParseGiftLine extracts a gift event from a raw Dank Memer message.
// author is the user the bot was replying to; a leading mention of them (in
// plain or nickname form) is stripped before matching. Returns nil if the
// message doesn't match, which is expected for most chat traffic.
func ParseGiftLine(raw string, author discord.UserID) *ParsedGift {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "<@"+author.String()+">")
	content = strings.TrimPrefix(content, "<@!"+author.String()+">")
	content = strings.ReplaceAll(content, currencyGlyph, "")
	content = strings.TrimSpace(content)

	if IsAdversarial(content) {
		content = Normalize(content)
	}

	m := giftPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var g ParsedGift
	for i, name := range giftPattern.SubexpNames() {
		switch name {
		case "user":
			g.Target = strings.TrimSpace(m[i])
		case "amount":
			amount, err := strconv.ParseInt(strings.ReplaceAll(m[i], ",", ""), 10, 64)
			if err != nil {
				return nil
			}
			g.Amount = amount
		case "item":
			g.Item = m[i]
		}
	}
	return &g
}
