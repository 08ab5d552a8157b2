package tag

import (
	"html/template"
	"maps"
	"slices"
	"strings"

	"github.com/vango-dev/formselect/internal/errors"
)

// ErrInvalidArgument matches every argument check failure reported by
// this package and by the select renderers built on it.
var ErrInvalidArgument = errors.ErrInvalidArgument

// Builder builds a single HTML element.
type Builder struct {
	tagName string

	// Attributes holds the element's attributes.
	Attributes *AttributeMap

	// InnerHTML is written between the start and end tag without encoding.
	InnerHTML string

	attrEncoder   Encoder
	textEncoder   Encoder
	idReplacement string
}

// Option configures a Builder.
type Option func(*Builder)

// WithAttributeEncoder sets the encoder applied to attribute values.
// Defaults to EscapeAttr.
func WithAttributeEncoder(enc Encoder) Option {
	return func(b *Builder) {
		if enc != nil {
			b.attrEncoder = enc
		}
	}
}

// WithTextEncoder sets the encoder used by SetInnerText.
// Defaults to EscapeHTML.
func WithTextEncoder(enc Encoder) Option {
	return func(b *Builder) {
		if enc != nil {
			b.textEncoder = enc
		}
	}
}

// WithIDReplacement sets the replacement GenerateID uses for characters
// that are not valid in ids. An empty value keeps DefaultIDReplacement.
func WithIDReplacement(replacement string) Option {
	return func(b *Builder) {
		if replacement != "" {
			b.idReplacement = replacement
		}
	}
}

// New creates a Builder for tagName. An empty tag name is an invalid
// argument.
func New(tagName string, opts ...Option) (*Builder, error) {
	if tagName == "" {
		return nil, errors.New("E001")
	}
	b := &Builder{
		tagName:       tagName,
		Attributes:    NewAttributeMap(),
		attrEncoder:   EscapeAttr,
		textEncoder:   EscapeHTML,
		idReplacement: DefaultIDReplacement,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// TagName returns the element's tag name.
func (b *Builder) TagName() string {
	return b.tagName
}

// MergeAttribute sets key to value. When the attribute already exists it
// is only overwritten if replaceExisting is true.
func (b *Builder) MergeAttribute(key, value string, replaceExisting bool) error {
	if key == "" {
		return errors.New("E002")
	}
	if replaceExisting || !b.Attributes.Has(key) {
		b.Attributes.Set(key, value)
	}
	return nil
}

// MergeAttributes merges every entry of attrs, in key order, with the
// same rules as MergeAttribute. A nil map is a no-op.
func (b *Builder) MergeAttributes(attrs Attributes, replaceExisting bool) error {
	if attrs == nil {
		return nil
	}
	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		value, err := FormatValue(attrs[key])
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Detail = "attribute " + key + ": " + e.Detail
			}
			return err
		}
		if err := b.MergeAttribute(key, value, replaceExisting); err != nil {
			return err
		}
	}
	return nil
}

// AddCSSClass puts value in front of the existing class list.
func (b *Builder) AddCSSClass(value string) {
	if current, ok := b.Attributes.Get("class"); ok {
		b.Attributes.Set("class", value+" "+current)
		return
	}
	b.Attributes.Set("class", value)
}

// GenerateID sets the id attribute from a sanitized name. It does nothing
// when an id is already present or name sanitizes to nothing.
func (b *Builder) GenerateID(name string) {
	if b.Attributes.Has("id") {
		return
	}
	id, err := SanitizeID(name, b.idReplacement)
	if err != nil || id == "" {
		return
	}
	b.Attributes.Set("id", id)
}

// SetInnerText replaces the inner markup with encoded text.
func (b *Builder) SetInnerText(text string) {
	b.InnerHTML = b.textEncoder(text)
}

// Render serializes the element in the given mode.
func (b *Builder) Render(mode RenderMode) string {
	var sb strings.Builder
	switch mode {
	case StartTag:
		sb.WriteByte('<')
		sb.WriteString(b.tagName)
		b.writeAttributes(&sb)
		sb.WriteByte('>')
	case EndTag:
		sb.WriteString("</")
		sb.WriteString(b.tagName)
		sb.WriteByte('>')
	case SelfClosing:
		sb.WriteByte('<')
		sb.WriteString(b.tagName)
		b.writeAttributes(&sb)
		sb.WriteString(" />")
	default:
		sb.WriteByte('<')
		sb.WriteString(b.tagName)
		b.writeAttributes(&sb)
		sb.WriteByte('>')
		sb.WriteString(b.InnerHTML)
		sb.WriteString("</")
		sb.WriteString(b.tagName)
		sb.WriteByte('>')
	}
	return sb.String()
}

// String renders the element in Normal mode.
func (b *Builder) String() string {
	return b.Render(Normal)
}

// HTML renders the element as markup that html/template will not escape
// again.
func (b *Builder) HTML(mode RenderMode) template.HTML {
	return template.HTML(b.Render(mode))
}

func (b *Builder) writeAttributes(sb *strings.Builder) {
	for key, value := range b.Attributes.All() {
		// Empty ids are never written.
		if key == "id" && value == "" {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(b.attrEncoder(value))
		sb.WriteByte('"')
	}
}
