package core

import "testing"

func TestMessage_String(t *testing.T) {
	m := &Message{Source: 1, Dest: 2, ArrivalTime: 3.5, Content: "hello", Seq: 7}
	want := `1 -> 2 @ 3.5: "hello"`
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
