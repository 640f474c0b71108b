package core

// DefaultColorForState maps an algorithm state tag to a presentation color an
// observer can render without every algorithm author setting Node.color by hand.
// Grounded on the original Python implementation's Computer.color field (read
// directly by its PyQt5 Node.paint); this module derives a default from state
// instead, and SetColor still lets an algorithm override it explicitly.
func DefaultColorForState(state string) string {
	switch state {
	case StateTerminated:
		return "gray"
	case "":
		return "white"
	default:
		return "lightblue"
	}
}
