// Package tag builds and serializes single HTML elements.
//
// A Builder holds a tag name, an AttributeMap and raw inner markup. It
// merges attributes with replace/no-replace semantics, prepends CSS
// classes, derives HTML 4.01 compatible ids from form field names, and
// serializes in one of four render modes:
//
//	b, _ := tag.New("select")
//	b.GenerateID("user.Country")          // id="user_Country"
//	b.MergeAttribute("name", "user.Country", true)
//	b.InnerHTML = options
//	html := b.Render(tag.Normal)
//
// # Attributes
//
// Attributes are kept in an AttributeMap, which always iterates in ordinal
// key order so output is deterministic. Values are encoded with the
// builder's attribute Encoder at render time; an id attribute with an
// empty value is never written.
//
// # Ids
//
// SanitizeID keeps ids within the HTML 4.01 id grammar: the first character
// must be an ASCII letter, and every later character that is not a letter,
// digit, '-', '_' or ':' is replaced. The '.' that separates nested field
// names is always replaced.
//
// # Security
//
// InnerHTML is written as-is. Use SetInnerText for untrusted text.
package tag
