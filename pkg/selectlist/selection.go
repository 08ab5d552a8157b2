package selectlist

import "fmt"

// Selection is the caller's "currently selected" payload: either a single
// value or an ordered collection of values. The zero value means no
// selection was supplied.
type Selection struct {
	values     []string
	collection bool
	present    bool
}

// Value returns a single-value selection. Values are compared on their
// string form as produced by fmt.Sprint. A nil v is no selection.
func Value(v any) Selection {
	if v == nil {
		return Selection{}
	}
	return Selection{values: []string{fmt.Sprint(v)}, present: true}
}

// Values returns a selection holding every element of vs in order.
func Values[T any](vs ...T) Selection {
	values := make([]string, len(vs))
	for i, v := range vs {
		values[i] = fmt.Sprint(v)
	}
	return Selection{values: values, collection: true, present: true}
}

// IsZero reports whether no selection was supplied.
func (s Selection) IsZero() bool {
	return !s.present
}

// IsCollection reports whether the selection was built with Values.
func (s Selection) IsCollection() bool {
	return s.collection
}

// Strings returns the selection's string forms in order.
func (s Selection) Strings() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Scalar returns the single value a dropdown compares against: the value
// of a single-value selection, or the first element of a collection.
func (s Selection) Scalar() string {
	if len(s.values) == 0 {
		return ""
	}
	return s.values[0]
}
