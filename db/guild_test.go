package db

import "testing"

func TestDefaultItemValuesCopied(t *testing.T) {
	before := DefaultItemValues["cookie"]

	m := defaultItemValues()
	if len(m) != len(DefaultItemValues) {
		t.Fatalf("copy has %d items, want %d", len(m), len(DefaultItemValues))
	}

	// a guild changing its own prices must not touch the defaults
	m["cookie"] = before + 999

	if DefaultItemValues["cookie"] != before {
		t.Fatalf("DefaultItemValues[cookie] = %d, want %d", DefaultItemValues["cookie"], before)
	}
}
