package bulk

import (
	"cmp"
	"fmt"
	"slices"
)

// Values holds one batch item's fields keyed by name, as seen by
// required-field validation and error reporting. An absent key and a nil
// value both mean the field is unset; an empty string or zero value counts
// as set.
type Values map[string]any

// Item is implemented by batch input types.
type Item interface {
	// Values returns the item's fields for validation and error reporting.
	Values() Values
}

// CreateError describes a single failed item within a batch.
type CreateError struct {
	// Index is the item's position in the input slice.
	Index int `json:"index"`
	// Input is the original item data, for caller-side retry or reporting.
	Input Values `json:"input"`
	// Message is the failure reason.
	Message string `json:"error"`
}

// Error implements the error interface.
func (e CreateError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Message)
}

// Result aggregates the outcome of a batch call. Every input item appears in
// exactly one of the two slices: len(Successful)+len(Failed) equals the input
// length. Failed is ordered by ascending input index and Successful preserves
// the relative input order of the items that succeeded.
type Result[T any] struct {
	Successful []T
	Failed     []CreateError
}

// Outcome is one item's settled result tagged with its input index. Exactly
// one of Value and Err is meaningful: Err is non-nil for a failed item.
type Outcome[T any] struct {
	Index int
	Value T
	Err   *CreateError
}

// Collect partitions settled outcomes into a Result. Entries are ordered by
// input index regardless of the order outcomes were produced in, so two runs
// over the same input always assemble identical results. The input slice is
// not modified.
func Collect[T any](outcomes []Outcome[T]) Result[T] {
	ordered := slices.Clone(outcomes)
	slices.SortStableFunc(ordered, func(a, b Outcome[T]) int {
		return cmp.Compare(a.Index, b.Index)
	})

	var res Result[T]
	for _, o := range ordered {
		if o.Err != nil {
			res.Failed = append(res.Failed, *o.Err)
		} else {
			res.Successful = append(res.Successful, o.Value)
		}
	}
	return res
}
