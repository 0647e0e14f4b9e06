package dank

import "testing"

func TestIsAdversarial_PlainASCII(t *testing.T) {
	for _, name := range []string{"Bob", "BobTheBuilder", "Bob Smith", "abc123", "a1 b2 c3"} {
		if IsAdversarial(name) {
			t.Fatalf("IsAdversarial(%q) = true, want false", name)
		}
	}
}

func TestIsAdversarial_Detects(t *testing.T) {
	for _, name := range []string{"Bób", "ąlice", "a_b", "name!", "ａｂｃ", "⏣coin", "dot.name"} {
		if !IsAdversarial(name) {
			t.Fatalf("IsAdversarial(%q) = false, want true", name)
		}
	}
}

func TestNormalize_IdentityForCleanNames(t *testing.T) {
	for _, name := range []string{"Bob Smith", "BobTheBuilder", "abc 123"} {
		if got := Normalize(name); got != name {
			t.Fatalf("Normalize(%q) = %q, want identity", name, got)
		}
	}
}

func TestNormalize_StripsDiacritics(t *testing.T) {
	if got := Normalize("Ąlicę"); got != "Alice" {
		t.Fatalf("got %q", got)
	}
	if got := Normalize("Bób  Smìth"); got != "Bob Smith" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_StripsDecorations(t *testing.T) {
	// decorative glyphs go away entirely, whitespace runs collapse
	got := Normalize("꧁ xX_Bob_Xx ꧂")
	if got != "xXBobXx" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_KeepsPeriods(t *testing.T) {
	if got := Normalize("mr. bób"); got != "mr. bob" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanName_SkipsCleanInput(t *testing.T) {
	// internal double spaces survive because clean names skip normalization
	name := "Bob  Smith"
	if got := CleanName(name); got != name {
		t.Fatalf("got %q, want %q untouched", got, name)
	}
}

func TestNormalize_NeverFails(t *testing.T) {
	// exotic input still produces a (possibly empty) string
	for _, s := range []string{"", "🎉🎉🎉", "\x00\xff", "ᚠᚢᚦ"} {
		_ = Normalize(s)
	}
}
