package models

import "testing"

func TestMessageCounterpart(t *testing.T) {
	m := &Message{Sender: "alice", Recipient: "bob"}

	if got := m.Counterpart("alice"); got != "bob" {
		t.Fatalf("Counterpart(alice) = %q, want bob", got)
	}
	if got := m.Counterpart("bob"); got != "alice" {
		t.Fatalf("Counterpart(bob) = %q, want alice", got)
	}
}
