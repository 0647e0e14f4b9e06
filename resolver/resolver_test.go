package resolver

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
)

type mapCache map[string]discord.Snowflake

func (c mapCache) Get(name string) (discord.Snowflake, bool) {
	id, ok := c[name]
	return id, ok
}

func (c mapCache) Set(id discord.Snowflake, name string) {
	for k, v := range c {
		if v == id {
			delete(c, k)
		}
	}
	c[name] = id
}

func member(id discord.UserID, username string) Member {
	return Member{discord.Member{User: discord.User{ID: id, Username: username}}}
}

func TestResolve_ExactMatch(t *testing.T) {
	cache := mapCache{}
	candidates := []Entity{
		member(1, "Alice"),
		member(2, "Alicia"),
	}

	got := Resolve(candidates, "Alicia", cache)
	if got == nil || got.EntityID() != 2 {
		t.Fatalf("got %v", got)
	}

	// the exact name is cached as an alias
	if id, ok := cache["Alicia"]; !ok || id != 2 {
		t.Fatalf("cache = %v", cache)
	}
}

func TestResolve_CachedAlias(t *testing.T) {
	cache := mapCache{"cool alias": 2}
	candidates := []Entity{
		member(1, "Alice"),
		member(2, "zzzzzz"),
	}

	// "cool alias" scores nowhere near "zzzzzz"; only the cache can match it
	got := Resolve(candidates, "cool alias", cache)
	if got == nil || got.EntityID() != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_Fuzzy(t *testing.T) {
	cache := mapCache{}
	candidates := []Entity{
		member(1, "completely different"),
		member(2, "BobTheBuilder"),
	}

	got := Resolve(candidates, "BobTheBuildr", cache)
	if got == nil || got.EntityID() != 2 {
		t.Fatalf("got %v", got)
	}

	// the raw free text is cached against the winner
	if id, ok := cache["BobTheBuildr"]; !ok || id != 2 {
		t.Fatalf("cache = %v", cache)
	}
}

func TestResolve_FuzzyAdversarialCandidate(t *testing.T) {
	candidates := []Entity{
		member(1, "꧁Ąlicę꧂"),
		member(2, "Zed"),
	}

	got := Resolve(candidates, "Alice", nil)
	if got == nil || got.EntityID() != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_BelowCutoff(t *testing.T) {
	candidates := []Entity{
		member(1, "Alice"),
		member(2, "Bob"),
	}

	if got := Resolve(candidates, "qwxyzvk", nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestResolve_EmptyCandidates(t *testing.T) {
	if got := Resolve(nil, "Alice", mapCache{}); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestResolve_TieBreaksToFirst(t *testing.T) {
	candidates := []Entity{
		member(1, "Alice"),
		member(2, "Alice"),
	}

	// both score identically on the fuzzy path; drop the exact path by
	// querying a near-miss
	got := Resolve(candidates, "Alce", nil)
	if got == nil || got.EntityID() != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_Roles(t *testing.T) {
	candidates := []Entity{
		Role{discord.Role{ID: 10, Name: "Moderators"}},
		Role{discord.Role{ID: 11, Name: "Members"}},
	}

	got := Resolve(candidates, "moderators", nil)
	if got == nil || got.EntityID() != 10 {
		t.Fatalf("got %v", got)
	}
}
