// Package errors provides structured, coded errors for formselect.
//
// Every error carries a short code (e.g. "E010") that maps to a registered
// template with a category, a one-line message and a longer explanation.
// The category is what callers branch on: argument checks raised while
// building markup belong to CategoryInvalidArgument, configuration and
// publishing problems to their own categories.
//
// # Usage
//
//	err := errors.New("E010").
//	    WithDetail(`field name is empty`).
//	    WithSuggestion("Pass the form field name in ListBoxConfig.Name")
//
//	if errors.IsInvalidArgument(err) {
//	    // 400 Bad Request
//	}
//
// The sentinel ErrInvalidArgument matches any error of that category through
// the standard library's errors.Is.
//
// # Terminal output
//
// Format renders an error for the CLI with ANSI colors:
//
//	ERROR E010: Field name is required
//
//	  ListBox and DropDown need a non-empty form field name.
//
//	  Hint: Pass the form field name in ListBoxConfig.Name
package errors
