package dank

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var testTime = time.Date(2021, time.June, 5, 12, 30, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	cases := []struct {
		antecedent string
		want       Kind
	}{
		{"pls share 1200 @Alice", KindShare},
		{"PLS SHARE 1200 @Alice", KindShare},
		{"pls give cookie @Alice", KindShare},
		{"pls gift cookie @Alice", KindGift},
		{"pls trade", KindGift},
		{"pls withdraw 500", KindGift},
	}
	for _, c := range cases {
		if got := Classify(c.antecedent); got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.antecedent, got, c.want)
		}
	}
}

func TestApply_Share(t *testing.T) {
	actor := NewMemberStats()
	target := NewMemberStats()

	ev := Event{
		Kind:      KindShare,
		Actor:     1,
		Target:    2,
		ActorTag:  "alice#0001",
		TargetTag: "bob#0002",
		Amount:    1200,
	}

	ann, err := ev.Apply(&actor, &target, testTime)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if actor.Shared != 1200 {
		t.Fatalf("actor.Shared = %d", actor.Shared)
	}
	if target.Received != 1200 {
		t.Fatalf("target.Received = %d", target.Received)
	}
	if actor.SharedUsers[2] != 1 {
		t.Fatalf("actor.SharedUsers = %v", actor.SharedUsers)
	}
	if len(actor.Gifted) != 0 || len(target.ReceivedItems) != 0 {
		t.Fatalf("item maps touched: %v / %v", actor.Gifted, target.ReceivedItems)
	}
	if len(actor.Logs) != 1 || len(target.Logs) != 1 {
		t.Fatalf("logs = %v / %v", actor.Logs, target.Logs)
	}
	if !strings.Contains(actor.Logs[0], "1,200") {
		t.Fatalf("actor log = %q", actor.Logs[0])
	}
	if !strings.Contains(ann, "1,200") {
		t.Fatalf("announcement = %q", ann)
	}
}

func TestApply_Gift(t *testing.T) {
	actor := NewMemberStats()
	target := NewMemberStats()

	ev := Event{
		Kind:      KindGift,
		Actor:     1,
		Target:    2,
		ActorTag:  "alice#0001",
		TargetTag: "bob#0002",
		Amount:    3,
		Item:      "cookie",
	}

	if _, err := ev.Apply(&actor, &target, testTime); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if actor.Gifted["cookie"] != 3 {
		t.Fatalf("actor.Gifted = %v", actor.Gifted)
	}
	if target.ReceivedItems["cookie"] != 3 {
		t.Fatalf("target.ReceivedItems = %v", target.ReceivedItems)
	}
	if actor.GiftedUsers[2] != 1 {
		t.Fatalf("actor.GiftedUsers = %v", actor.GiftedUsers)
	}
	if actor.Shared != 0 || target.Received != 0 {
		t.Fatalf("currency totals touched: %d / %d", actor.Shared, target.Received)
	}
	if len(actor.Logs) != 1 || len(target.Logs) != 1 {
		t.Fatalf("logs = %v / %v", actor.Logs, target.Logs)
	}
}

func TestApply_NotIdempotent(t *testing.T) {
	// every message is one real transfer; applying twice doubles everything
	actor := NewMemberStats()
	target := NewMemberStats()

	ev := Event{Kind: KindShare, Actor: 1, Target: 2, Amount: 500}

	for i := 0; i < 2; i++ {
		if _, err := ev.Apply(&actor, &target, testTime); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	if actor.Shared != 1000 {
		t.Fatalf("actor.Shared = %d, want 1000", actor.Shared)
	}
	if target.Received != 1000 {
		t.Fatalf("target.Received = %d, want 1000", target.Received)
	}
	if actor.SharedUsers[2] != 2 {
		t.Fatalf("actor.SharedUsers = %v", actor.SharedUsers)
	}
	if len(actor.Logs) != 2 {
		t.Fatalf("logs = %v", actor.Logs)
	}
}

func TestApply_MalformedGiftDropped(t *testing.T) {
	actor := NewMemberStats()
	target := NewMemberStats()
	actorBefore := NewMemberStats()
	targetBefore := NewMemberStats()

	ev := Event{Kind: KindGift, Actor: 1, Target: 2, Amount: 5}

	if _, err := ev.Apply(&actor, &target, testTime); err != ErrNoItem {
		t.Fatalf("err = %v, want ErrNoItem", err)
	}

	if !reflect.DeepEqual(actor, actorBefore) {
		t.Fatalf("actor mutated: %+v", actor)
	}
	if !reflect.DeepEqual(target, targetBefore) {
		t.Fatalf("target mutated: %+v", target)
	}
}
