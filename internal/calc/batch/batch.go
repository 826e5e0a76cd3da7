package batch

import (
	"fmt"

	beam "MatSelect/internal/calc/beam"
	recommend "MatSelect/internal/calc/recommend"
)

type CompareBatchInput struct {
	Items []beam.Input `json:"items"`
}

type CompareBatchResult struct {
	Results []recommend.Comparison `json:"results"`
}

// Compare runs the steel/aluminium comparison for every item. A single
// bad item fails the whole batch.
func Compare(in CompareBatchInput) (CompareBatchResult, error) {
	if len(in.Items) == 0 {
		return CompareBatchResult{}, fmt.Errorf("no items")
	}
	out := CompareBatchResult{Results: make([]recommend.Comparison, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := recommend.Compare(item)
		if err != nil {
			return CompareBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
