package selectlist

import (
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/pkg/tag"
)

// Kind identifies the select control being rendered.
type Kind string

const (
	KindDropDown Kind = "dropdown"
	KindListBox  Kind = "listbox"
)

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindDropDown:
		return KindDropDown, nil
	case KindListBox:
		return KindListBox, nil
	}
	return "", errors.New("E012").WithDetail("unknown kind " + strconv.Quote(s))
}

// ListBoxConfig describes a list box.
type ListBoxConfig struct {
	// Name is the form field name. Required.
	Name string

	// DefaultOption, when non-nil, renders a leading option with an empty
	// value and this text.
	DefaultOption *string

	// Options are rendered in order.
	Options []Option

	// Selected is reconciled against Options when present.
	Selected Selection

	// Size, when non-nil, sets the size attribute to its value, whatever
	// the value is. Use Rows to build one.
	Size *int

	// AllowMultiple adds multiple="multiple" and lets every matching
	// option stay selected. When false, any multiple attribute is removed.
	AllowMultiple bool

	// Attributes are extra attributes for the select element. The name,
	// size and multiple attributes managed above take precedence.
	Attributes tag.Attributes
}

// DropDownConfig describes a single-selection dropdown.
type DropDownConfig struct {
	// Name is the form field name. Required.
	Name string

	// DefaultOption, when non-nil, renders a leading option with an empty
	// value and this text.
	DefaultOption *string

	// Options are rendered in order.
	Options []Option

	// Selected is compared against Options when its Scalar form is not
	// empty.
	Selected Selection

	// Attributes are extra attributes for the select element. name is
	// always set from Name.
	Attributes tag.Attributes
}

// RenderInfo summarizes a completed render.
type RenderInfo struct {
	Kind     Kind
	Name     string
	Options  int
	Selected int
}

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// IDReplacement replaces characters that are not valid in the id
	// generated from the field name. Defaults to tag.DefaultIDReplacement.
	IDReplacement string

	// AttributeEncoder encodes attribute values. Defaults to tag.EscapeAttr.
	AttributeEncoder tag.Encoder

	// TextEncoder encodes option text. Defaults to tag.EscapeHTML.
	TextEncoder tag.Encoder

	// Logger receives a debug record per render.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// OnRender, if set, is called after every successful render.
	OnRender func(RenderInfo)
}

// Renderer renders select controls. It is safe for concurrent use.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.IDReplacement == "" {
		config.IDReplacement = tag.DefaultIDReplacement
	}
	if config.AttributeEncoder == nil {
		config.AttributeEncoder = tag.EscapeAttr
	}
	if config.TextEncoder == nil {
		config.TextEncoder = tag.EscapeHTML
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{config: config, logger: logger}
}

// IDReplacement returns the replacement used for generated ids.
func (r *Renderer) IDReplacement() string {
	return r.config.IDReplacement
}

var defaultRenderer = NewRenderer(RendererConfig{})

// ListBox renders a list box with the default renderer.
func ListBox(cfg ListBoxConfig) (template.HTML, error) {
	return defaultRenderer.ListBox(cfg)
}

// DropDown renders a dropdown with the default renderer.
func DropDown(cfg DropDownConfig) (template.HTML, error) {
	return defaultRenderer.DropDown(cfg)
}

// ListBox renders cfg as a <select> element.
func (r *Renderer) ListBox(cfg ListBoxConfig) (template.HTML, error) {
	if cfg.Name == "" {
		return "", errors.New("E010")
	}

	options := cfg.Options
	if !cfg.Selected.IsZero() {
		options = ReconcileMultiple(options, cfg.Selected, cfg.AllowMultiple)
	}

	inner, err := r.optionsMarkup(options, cfg.DefaultOption)
	if err != nil {
		return "", err
	}

	b, err := r.newBuilder("select")
	if err != nil {
		return "", err
	}
	b.InnerHTML = inner

	if err := b.MergeAttributes(callerAttributes(cfg.Attributes), false); err != nil {
		return "", err
	}
	b.GenerateID(cfg.Name)
	b.Attributes.Set("name", cfg.Name)
	if cfg.Size != nil {
		b.Attributes.Set("size", strconv.Itoa(*cfg.Size))
	}
	if cfg.AllowMultiple {
		_ = b.MergeAttribute("multiple", "multiple", false)
	} else {
		b.Attributes.Delete("multiple")
	}

	r.finish(KindListBox, cfg.Name, options)
	return b.HTML(tag.Normal), nil
}

// DropDown renders cfg as a single-selection <select> element.
func (r *Renderer) DropDown(cfg DropDownConfig) (template.HTML, error) {
	if cfg.Name == "" {
		return "", errors.New("E010")
	}

	options := cfg.Options
	if selected := cfg.Selected.Scalar(); selected != "" {
		options = ReconcileSingle(options, selected)
	}

	inner, err := r.optionsMarkup(options, cfg.DefaultOption)
	if err != nil {
		return "", err
	}

	b, err := r.newBuilder("select")
	if err != nil {
		return "", err
	}
	b.InnerHTML = inner

	if err := b.MergeAttributes(callerAttributes(cfg.Attributes), false); err != nil {
		return "", err
	}
	b.Attributes.Set("name", cfg.Name)
	b.GenerateID(cfg.Name)

	r.finish(KindDropDown, cfg.Name, options)
	return b.HTML(tag.Normal), nil
}

// optionsMarkup renders one option per line, preceded by the default
// option when defaultOption is set.
func (r *Renderer) optionsMarkup(options []Option, defaultOption *string) (string, error) {
	var sb strings.Builder
	sb.WriteByte('\n')

	if defaultOption != nil {
		line, err := r.optionMarkup(NewOption(*defaultOption, ""))
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	for _, opt := range options {
		line, err := r.optionMarkup(opt)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func (r *Renderer) optionMarkup(opt Option) (string, error) {
	b, err := r.newBuilder("option")
	if err != nil {
		return "", err
	}
	b.SetInnerText(opt.Text)
	if opt.Value != nil {
		b.Attributes.Set("value", *opt.Value)
	}
	if opt.Selected {
		b.Attributes.Set("selected", "selected")
	}
	return b.Render(tag.Normal), nil
}

func (r *Renderer) newBuilder(tagName string) (*tag.Builder, error) {
	return tag.New(tagName,
		tag.WithAttributeEncoder(r.config.AttributeEncoder),
		tag.WithTextEncoder(r.config.TextEncoder),
		tag.WithIDReplacement(r.config.IDReplacement),
	)
}

func (r *Renderer) finish(kind Kind, name string, options []Option) {
	info := RenderInfo{Kind: kind, Name: name, Options: len(options)}
	for _, opt := range options {
		if opt.Selected {
			info.Selected++
		}
	}
	r.logger.Debug("rendered select",
		"kind", string(kind),
		"name", name,
		"options", info.Options,
		"selected", info.Selected,
	)
	if r.config.OnRender != nil {
		r.config.OnRender(info)
	}
}

// callerAttributes drops any spelling of "name" from attrs; the field name
// always comes from the config so the element carries exactly one.
func callerAttributes(attrs tag.Attributes) tag.Attributes {
	for key := range attrs {
		if strings.EqualFold(key, "name") {
			attrs = attrs.Clone()
			for k := range attrs {
				if strings.EqualFold(k, "name") {
					delete(attrs, k)
				}
			}
			break
		}
	}
	return attrs
}
