package dank

import "testing"

func TestParseGiftLine_Item(t *testing.T) {
	g := ParseGiftLine("<@123> You gave  BobTheBuilder  50,000 cookie", 123)
	if g == nil {
		t.Fatalf("expected match")
	}
	if g.Target != "BobTheBuilder" {
		t.Fatalf("target=%q", g.Target)
	}
	if g.Amount != 50000 {
		t.Fatalf("amount=%d", g.Amount)
	}
	if g.Item != "cookie" {
		t.Fatalf("item=%q", g.Item)
	}
}

func TestParseGiftLine_Currency(t *testing.T) {
	g := ParseGiftLine("<@123> You gave  Alice  1,200", 123)
	if g == nil {
		t.Fatalf("expected match")
	}
	if g.Target != "Alice" {
		t.Fatalf("target=%q", g.Target)
	}
	if g.Amount != 1200 {
		t.Fatalf("amount=%d", g.Amount)
	}
	if g.Item != "" {
		t.Fatalf("item=%q, want empty", g.Item)
	}
}

func TestParseGiftLine_NicknameMention(t *testing.T) {
	g := ParseGiftLine("<@!456> You gave Alice 300", 456)
	if g == nil {
		t.Fatalf("expected match")
	}
	if g.Target != "Alice" || g.Amount != 300 {
		t.Fatalf("target=%q amount=%d", g.Target, g.Amount)
	}
}

func TestParseGiftLine_CurrencyGlyph(t *testing.T) {
	g := ParseGiftLine("You gave Alice ⏣ 2,500", 0)
	if g == nil {
		t.Fatalf("expected match")
	}
	if g.Amount != 2500 {
		t.Fatalf("amount=%d", g.Amount)
	}
}

func TestParseGiftLine_MultiWordName(t *testing.T) {
	g := ParseGiftLine("You gave Bob the Builder  42 fish", 0)
	if g == nil {
		t.Fatalf("expected match")
	}
	if g.Target != "Bob the Builder" {
		t.Fatalf("target=%q", g.Target)
	}
	if g.Item != "fish" {
		t.Fatalf("item=%q", g.Item)
	}
}

func TestParseGiftLine_AdversarialName(t *testing.T) {
	g := ParseGiftLine("You gave Ąlicę  1,000", 0)
	if g == nil {
		t.Fatalf("expected match")
	}
	if g.Target != "Alice" {
		t.Fatalf("target=%q", g.Target)
	}
}

func TestParseGiftLine_NoMatch(t *testing.T) {
	for _, line := range []string{
		"",
		"hello world",
		"You gave",
		"Your balance is ⏣ 1,000",
		// the trigger must start the line once mentions and glyphs are gone
		"Bonus You gave Alice 500",
		"quote of the day You gave Bob 1,000 cookie",
	} {
		if g := ParseGiftLine(line, 123); g != nil {
			t.Fatalf("ParseGiftLine(%q) = %+v, want nil", line, g)
		}
	}
}
