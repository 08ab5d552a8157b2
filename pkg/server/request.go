package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/pkg/selectlist"
	"github.com/vango-dev/formselect/pkg/tag"
)

// RenderRequest is the JSON body accepted by the render endpoints.
type RenderRequest struct {
	// Name is the form field name.
	Name string `json:"name"`

	// DefaultOption is the text of a leading empty-value option.
	DefaultOption *string `json:"defaultOption,omitempty"`

	// Options are rendered in order.
	Options []OptionRequest `json:"options"`

	// Selected is a string, number, bool or an array of those.
	Selected json.RawMessage `json:"selected,omitempty"`

	// Size is the list box size attribute. Ignored for dropdowns.
	Size *int `json:"size,omitempty"`

	// AllowMultiple enables multiple selection. Ignored for dropdowns.
	AllowMultiple bool `json:"allowMultiple,omitempty"`

	// Attributes are extra select attributes. Values must be strings,
	// numbers or booleans.
	Attributes map[string]any `json:"attributes,omitempty"`

	// PublishKey, when set, stores the rendered fragment under this key.
	PublishKey string `json:"publishKey,omitempty"`
}

// OptionRequest is one option in a RenderRequest.
type OptionRequest struct {
	Text     string  `json:"text"`
	Value    *string `json:"value,omitempty"`
	Selected bool    `json:"selected,omitempty"`
}

// DecodeRenderRequest reads a RenderRequest from r. Numbers keep their
// literal form so 1.50 stays "1.50" rather than becoming 1.5.
func DecodeRenderRequest(r io.Reader) (*RenderRequest, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var req RenderRequest
	if err := dec.Decode(&req); err != nil {
		return nil, errors.New("E011").WithDetail(err.Error()).Wrap(err)
	}
	return &req, nil
}

// ParseRenderRequest decodes a RenderRequest from data.
func ParseRenderRequest(data []byte) (*RenderRequest, error) {
	return DecodeRenderRequest(bytes.NewReader(data))
}

// ListBox converts the request into a list box config.
func (r *RenderRequest) ListBox() (selectlist.ListBoxConfig, error) {
	selected, err := r.selection()
	if err != nil {
		return selectlist.ListBoxConfig{}, err
	}
	return selectlist.ListBoxConfig{
		Name:          r.Name,
		DefaultOption: r.DefaultOption,
		Options:       r.options(),
		Selected:      selected,
		Size:          r.Size,
		AllowMultiple: r.AllowMultiple,
		Attributes:    r.attributes(),
	}, nil
}

// DropDown converts the request into a dropdown config.
func (r *RenderRequest) DropDown() (selectlist.DropDownConfig, error) {
	selected, err := r.selection()
	if err != nil {
		return selectlist.DropDownConfig{}, err
	}
	return selectlist.DropDownConfig{
		Name:          r.Name,
		DefaultOption: r.DefaultOption,
		Options:       r.options(),
		Selected:      selected,
		Attributes:    r.attributes(),
	}, nil
}

func (r *RenderRequest) options() []selectlist.Option {
	if r.Options == nil {
		return nil
	}
	options := make([]selectlist.Option, len(r.Options))
	for i, o := range r.Options {
		options[i] = selectlist.Option{Text: o.Text, Value: o.Value, Selected: o.Selected}
	}
	return options
}

// attributes turns JSON numbers into their literal strings. Anything else
// is passed through and checked by the tag builder.
func (r *RenderRequest) attributes() tag.Attributes {
	if r.Attributes == nil {
		return nil
	}
	attrs := make(tag.Attributes, len(r.Attributes))
	for k, v := range r.Attributes {
		if n, ok := v.(json.Number); ok {
			v = n.String()
		}
		attrs[k] = v
	}
	return attrs
}

func (r *RenderRequest) selection() (selectlist.Selection, error) {
	if len(bytes.TrimSpace(r.Selected)) == 0 {
		return selectlist.Selection{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(r.Selected))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return selectlist.Selection{}, errors.New("E011").WithDetail("selected: " + err.Error())
	}

	switch v := raw.(type) {
	case nil:
		return selectlist.Selection{}, nil
	case []any:
		values := make([]string, len(v))
		for i, elem := range v {
			s, err := scalarString(elem)
			if err != nil {
				return selectlist.Selection{}, err
			}
			values[i] = s
		}
		return selectlist.Values(values...), nil
	default:
		s, err := scalarString(v)
		if err != nil {
			return selectlist.Selection{}, err
		}
		return selectlist.Value(s), nil
	}
}

func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprint(v), nil
	case nil:
		return "", nil
	}
	return "", errors.New("E011").
		WithDetail(fmt.Sprintf("selected values must be strings, numbers or booleans, got %T", v))
}
