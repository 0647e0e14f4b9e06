package events

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
)

func msg(id discord.MessageID, content string, bot bool) discord.Message {
	return discord.Message{
		ID:      id,
		Content: content,
		Author:  discord.User{ID: 1, Bot: bot},
	}
}

func TestPickAntecedent_SkipsBots(t *testing.T) {
	got := pickAntecedent([]discord.Message{
		msg(3, "pls share 500 @Alice", true),
		msg(2, "pls gift cookie @Alice", false),
	})
	if got == nil || got.ID != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestPickAntecedent_SkipsNonCommands(t *testing.T) {
	got := pickAntecedent([]discord.Message{
		msg(3, "nice one", false),
		msg(2, "PLS share 500 @Alice", false),
	})
	if got == nil || got.ID != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestPickAntecedent_NewestWins(t *testing.T) {
	// order in the slice doesn't matter, the newest qualifying message does
	got := pickAntecedent([]discord.Message{
		msg(2, "pls gift cookie @Alice", false),
		msg(4, "pls share 500 @Alice", false),
		msg(3, "pls trade", false),
	})
	if got == nil || got.ID != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestPickAntecedent_NoneFound(t *testing.T) {
	if got := pickAntecedent(nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}

	got := pickAntecedent([]discord.Message{
		msg(3, "pls share 500", true),
		msg(2, "hello", false),
	})
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
