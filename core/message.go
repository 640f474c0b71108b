package core

import "fmt"

// Message is a unit of communication in flight between two nodes. ArrivalTime is
// the simulated clock value at which it is due for delivery; Seq is the insertion
// sequence the event queue assigns on push, breaking ties between messages that
// share an ArrivalTime.
type Message struct {
	Source      NodeID
	Dest        NodeID
	ArrivalTime float64
	Content     string
	Seq         uint64
}

func (m *Message) String() string {
	return fmt.Sprintf("%d -> %d @ %g: %q", m.Source, m.Dest, m.ArrivalTime, m.Content)
}
