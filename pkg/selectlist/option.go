package selectlist

// Option describes one choice in a select control.
type Option struct {
	// Text is the visible label.
	Text string

	// Value is submitted with the form. When nil, Text is used for
	// comparison and no value attribute is written.
	Value *string

	// Selected marks the option as chosen before reconciliation.
	Selected bool
}

// NewOption returns an option with both text and value.
func NewOption(text, value string) Option {
	return Option{Text: text, Value: &value}
}

// TextOption returns an option whose text doubles as its value.
func TextOption(text string) Option {
	return Option{Text: text}
}

// HasValue reports whether the option carries an explicit value.
func (o Option) HasValue() bool {
	return o.Value != nil
}

// Key returns the string selections are compared against: the value,
// or the text when there is none.
func (o Option) Key() string {
	if o.Value != nil {
		return *o.Value
	}
	return o.Text
}

// OptionsFrom maps items to options in order. text and value extract the
// label and the submitted value of each item.
func OptionsFrom[T any](items []T, text, value func(T) string) []Option {
	options := make([]Option, 0, len(items))
	for _, item := range items {
		options = append(options, NewOption(text(item), value(item)))
	}
	return options
}

// Rows returns a pointer to n for use as ListBoxConfig.Size.
func Rows(n int) *int {
	return &n
}

// Placeholder returns a pointer to text for use as a DefaultOption.
func Placeholder(text string) *string {
	return &text
}
