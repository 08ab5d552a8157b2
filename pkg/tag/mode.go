package tag

// RenderMode selects which part of an element Render writes.
type RenderMode int

const (
	// Normal renders the start tag, the inner markup and the end tag.
	Normal RenderMode = iota
	// StartTag renders only the opening tag with its attributes.
	StartTag
	// EndTag renders only the closing tag.
	EndTag
	// SelfClosing renders the opening tag terminated with " />".
	SelfClosing
)

// String returns the mode name.
func (m RenderMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case StartTag:
		return "start"
	case EndTag:
		return "end"
	case SelfClosing:
		return "self-closing"
	default:
		return "unknown"
	}
}
