package tag

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "angle brackets",
			input:    "a < b > c",
			expected: "a &lt; b &gt; c",
		},
		{
			name:     "quotes",
			input:    `say "it's"`,
			expected: "say &quot;it&#39;s&quot;",
		},
		{
			name:     "script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "unicode preserved",
			input:    "Zürich 世界",
			expected: "Zürich 世界",
		},
		{
			name:     "newline kept in text",
			input:    "a\nb",
			expected: "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeHTML(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "breaks out of attribute",
			input:    `" onclick="alert(1)`,
			expected: "&quot; onclick=&quot;alert(1)",
		},
		{
			name:     "whitespace kept",
			input:    "a\tb\nc\rd",
			expected: "a\tb\nc\rd",
		},
		{
			name:     "greater-than kept",
			input:    "<b> & 'x'",
			expected: "&lt;b> &amp; &#39;x&#39;",
		},
		{
			name:     "ampersand in query",
			input:    "/search?a=1&b=2",
			expected: "/search?a=1&amp;b=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeAttr(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeAttr(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
