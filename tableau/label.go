package tableau

import "strconv"

// Kind classifies a tableau column.
type Kind int

const (
	Decision Kind = iota
	Slack
	Artificial
	ObjectiveMarker
	RHS
)

// Label names a tableau column. Index is 1-based for Decision, Slack and
// Artificial columns and unused for the two trailing pseudo-columns.
type Label struct {
	Kind  Kind
	Index int
}

func (l Label) String() string {
	switch l.Kind {
	case Decision:
		return "x" + strconv.Itoa(l.Index)
	case Slack:
		return "s" + strconv.Itoa(l.Index)
	case Artificial:
		return "a" + strconv.Itoa(l.Index)
	case ObjectiveMarker:
		return "Z"
	case RHS:
		return "RHS"
	}
	return "?"
}

// Labels renders a label sequence, e.g. for a table header.
func Labels(ls []Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}
