// Package resolver matches free-text names against guild entities.
//
// Resolution is staged: an exact name match or a previously cached alias is
// always preferred, and fuzzy scoring is only the fallback for the ambiguous
// remainder. A failed resolution is absence, not an error — the inputs are
// unstructured chat text and legitimately fail to match all the time.
package resolver

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/kestrel-sys/danktracker/dank"
)

// ScoreCutoff is the minimum fuzzy score (0-100) for a match.
const ScoreCutoff = 75

// Entity is anything resolvable by name: guild members and guild roles.
type Entity interface {
	EntityID() discord.Snowflake
	Name() string
}

// AliasCache stores free-text names that previously resolved to an entity,
// so later lookups can skip the fuzzy path.
type AliasCache interface {
	Get(name string) (discord.Snowflake, bool)
	Set(id discord.Snowflake, name string)
}

// Member wraps a guild member as a resolvable entity.
type Member struct {
	discord.Member
}

func (m Member) EntityID() discord.Snowflake { return discord.Snowflake(m.User.ID) }

// Name returns the account username, which is what the game bot echoes back.
func (m Member) Name() string { return m.User.Username }

// Role wraps a guild role as a resolvable entity.
type Role struct {
	discord.Role
}

func (r Role) EntityID() discord.Snowflake { return discord.Snowflake(r.Role.ID) }
func (r Role) Name() string                { return r.Role.Name }

// Resolve returns the candidate best matching freeText, or nil if nothing
// matches. Exact name matches win outright; then a cached alias; then the
// highest fuzzy score >= ScoreCutoff, ties broken by candidate order.
// Successful matches are written back to cache (which may be nil).
func Resolve(candidates []Entity, freeText string, cache AliasCache) Entity {
	for _, c := range candidates {
		if c.Name() == freeText {
			if cache != nil {
				cache.Set(c.EntityID(), freeText)
			}
			return c
		}
	}

	if cache != nil {
		if id, ok := cache.Get(freeText); ok {
			for _, c := range candidates {
				if c.EntityID() == id {
					return c
				}
			}
		}
	}

	var best Entity
	bestScore := 0
	for _, c := range candidates {
		score := fuzzy.TokenSetRatio(freeText, dank.CleanName(c.Name()))
		if score >= ScoreCutoff && score > bestScore {
			best, bestScore = c, score
		}
	}

	if best != nil && cache != nil {
		cache.Set(best.EntityID(), freeText)
	}
	return best
}
