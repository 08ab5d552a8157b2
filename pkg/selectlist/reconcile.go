package selectlist

import (
	"strings"

	"golang.org/x/text/cases"
)

// ReconcileMultiple returns a copy of options with Selected recomputed
// against sel.
//
// An option is selected when it was already flagged or its Key matches one
// of the selection's values ignoring case. Matching maps each rune on its
// own, so "straße" and "STRASSE" differ. When allowMultiple is false only the first
// such option stays selected and every later one is cleared. A zero
// selection leaves the flags untouched.
func ReconcileMultiple(options []Option, sel Selection, allowMultiple bool) []Option {
	out := cloneOptions(options)
	if sel.IsZero() {
		return out
	}

	set := make(map[string]struct{}, len(sel.values))
	for _, v := range sel.values {
		set[ordinalKey(v)] = struct{}{}
	}

	previousSelected := false
	for i := range out {
		selected := false
		if allowMultiple || !previousSelected {
			_, match := set[ordinalKey(out[i].Key())]
			selected = out[i].Selected || match
		}
		previousSelected = previousSelected || selected
		out[i].Selected = selected
	}
	return out
}

// ReconcileSingle returns a copy of options in which the first option that
// is already flagged, or whose Key equals selected under Unicode case
// folding, is selected. The flags of every other option are kept. An empty selected
// value leaves the flags untouched.
func ReconcileSingle(options []Option, selected string) []Option {
	out := cloneOptions(options)
	if selected == "" {
		return out
	}

	fold := cases.Fold()
	target := fold.String(selected)
	for i := range out {
		if out[i].Selected || fold.String(out[i].Key()) == target {
			out[i].Selected = true
			break
		}
	}
	return out
}

// ordinalKey is the set key for case-insensitive ordinal matching. Runes
// are upper-cased one at a time and never expand.
func ordinalKey(s string) string {
	return strings.ToUpper(s)
}

func cloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
