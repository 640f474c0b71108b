package core

import (
	"reflect"
	"testing"
)

func TestNode_SetState_FlagsChangeOnlyWhenDifferent(t *testing.T) {
	n := NewNode(1)
	if n.HasChanged() {
		t.Fatalf("new node should not start changed")
	}

	n.SetState("running")
	if !n.HasChanged() {
		t.Errorf("SetState to a new value should flag changed")
	}
	n.ResetChanged()

	n.SetState("running")
	if n.HasChanged() {
		t.Errorf("SetState to the same value should not flag changed")
	}

	n.SetState(StateTerminated)
	if !n.HasChanged() {
		t.Errorf("SetState to a different value should flag changed")
	}
}

func TestNode_Set_ExtrasChangeTracking(t *testing.T) {
	n := NewNode(0)
	n.ResetChanged()

	n.Set("distance", 3)
	if !n.HasChanged() {
		t.Fatalf("Set on a new key should flag changed")
	}
	n.ResetChanged()

	n.Set("distance", 3)
	if n.HasChanged() {
		t.Errorf("Set with an identical value should not flag changed")
	}

	n.Set("distance", 2)
	if !n.HasChanged() {
		t.Errorf("Set with a different value should flag changed")
	}

	got, ok := n.Get("distance")
	if !ok || got != 2 {
		t.Errorf("Get(\"distance\") = %v, %v, want 2, true", got, ok)
	}
}

func TestNode_Neighbors_SymmetricAndSorted(t *testing.T) {
	a := NewNode(0)
	b := NewNode(1)
	a.AddNeighbor(b.ID())
	b.AddNeighbor(a.ID())

	if !a.HasNeighbor(1) || !b.HasNeighbor(0) {
		t.Fatalf("expected symmetric neighbor relation")
	}

	c := NewNode(2)
	a.AddNeighbor(c.ID())
	want := []NodeID{1, 2}
	if got := a.Neighbors(); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors() = %v, want %v", got, want)
	}
}

func TestNode_Snapshot_IncludesExtrasAndCoreFields(t *testing.T) {
	n := NewNode(5)
	n.SetState("active")
	n.SetRoot(true)
	n.SetColor("red")
	n.Set("parent", NodeID(1))

	snap := n.Snapshot()
	if snap["id"] != NodeID(5) || snap["state"] != "active" || snap["is_root"] != true || snap["color"] != "red" {
		t.Errorf("snapshot missing core fields: %v", snap)
	}
	if snap["parent"] != NodeID(1) {
		t.Errorf("snapshot missing extras field: %v", snap)
	}
}

func TestDefaultColorForState(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{state: "", want: "white"},
		{state: StateTerminated, want: "gray"},
		{state: "proposer", want: "lightblue"},
	}
	for _, tt := range tests {
		if got := DefaultColorForState(tt.state); got != tt.want {
			t.Errorf("DefaultColorForState(%q) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
