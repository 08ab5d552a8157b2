// Package selectlist renders HTML <select> controls from option lists.
//
// Two controls are supported. A dropdown allows a single selection; a list
// box may allow several and can show more than one row:
//
//	html, err := selectlist.DropDown(selectlist.DropDownConfig{
//	    Name:          "country",
//	    DefaultOption: selectlist.Placeholder("-- choose --"),
//	    Options: []selectlist.Option{
//	        selectlist.NewOption("Portugal", "pt"),
//	        selectlist.NewOption("Spain", "es"),
//	    },
//	    Selected: selectlist.Value("es"),
//	})
//
// The result is html/template.HTML, so templates embed it without escaping
// it a second time.
//
// # Selection
//
// The options' own Selected flags are reconciled against the caller's
// Selection before rendering. Values are compared on their string form
// with Unicode case folding. An option without a Value is compared on its
// Text. Reconciliation always works on a copy; the caller's options are
// never modified.
//
// When only one selection is allowed, the first option that is either
// already flagged or matches a value wins, and options after it are not
// selected by the list box pass.
//
// # Errors
//
// An empty Name fails with an error matching tag.ErrInvalidArgument before
// any markup is built. Attribute values must be strings, booleans or
// numbers; other types fail the same way.
package selectlist
