package element

import "fmt"

type Element string

const (
	ElementBeam   Element = "beam"
	ElementColumn Element = "column"
	ElementSlab   Element = "slab"
	ElementTruss  Element = "truss"
	ElementFrame  Element = "frame"
)

type Priority string

const (
	PriorityStrength  Priority = "strength"
	PriorityCost      Priority = "cost"
	PriorityWeight    Priority = "weight"
	PriorityCorrosion Priority = "corrosion"
)

type Input struct {
	Element  Element  `json:"element"`
	Priority Priority `json:"priority"`
}

type Result struct {
	Element  Element  `json:"element"`
	Priority Priority `json:"priority"`
	Winner   string   `json:"winner"`
	Reason   string   `json:"reason"`
}

// Recommend maps a structural element plus the stated priority onto a
// material. The element only scopes the question; the priority decides.
func Recommend(in Input) (Result, error) {
	switch in.Element {
	case ElementBeam, ElementColumn, ElementSlab, ElementTruss, ElementFrame:
	default:
		return Result{}, fmt.Errorf("unknown element %q", in.Element)
	}

	res := Result{Element: in.Element, Priority: in.Priority}
	switch in.Priority {
	case PriorityWeight:
		res.Winner = "Aluminium"
		res.Reason = "Lightweight priority."
	case PriorityCorrosion:
		res.Winner = "Aluminium"
		res.Reason = "Better corrosion resistance."
	case PriorityStrength:
		res.Winner = "Steel"
		res.Reason = "Higher stiffness and strength."
	case PriorityCost:
		res.Winner = "Steel"
		res.Reason = "Lower cost per kg."
	default:
		return Result{}, fmt.Errorf("unknown priority %q", in.Priority)
	}
	return res, nil
}
