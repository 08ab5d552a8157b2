package tag

import "testing"

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		replacement string
		want        string
	}{
		{"empty", "", "_", ""},
		{"already valid", "userName", "_", "userName"},
		{"valid specials kept", "a-b_c:d9", "_", "a-b_c:d9"},
		{"dot replaced", "a.b", "_", "a_b"},
		{"nested field", "Order.Lines[0].Sku", "_", "Order_Lines_0__Sku"},
		{"digit first", "1ab", "_", ""},
		{"underscore first", "_ab", "_", ""},
		{"non-ascii first", "éab", "_", ""},
		{"non-ascii later", "aéb", "_", "a_b"},
		{"space", "first name", "_", "first_name"},
		{"custom replacement", "a.b.c", "-", "a-b-c"},
		{"multi-char replacement", "a.b", "__", "a__b"},
		{"single letter", "x", "_", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeID(tt.original, tt.replacement)
			if err != nil {
				t.Fatalf("SanitizeID(%q, %q) error: %v", tt.original, tt.replacement, err)
			}
			if got != tt.want {
				t.Errorf("SanitizeID(%q, %q) = %q, want %q", tt.original, tt.replacement, got, tt.want)
			}
		})
	}
}

func TestSanitizeID_EmptyReplacement(t *testing.T) {
	_, err := SanitizeID("a.b", "")
	if !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	// An empty original is checked first and is not an error.
	got, err := SanitizeID("", "")
	if err != nil || got != "" {
		t.Errorf(`SanitizeID("", "") = %q, %v`, got, err)
	}
}

func TestSanitizeID_LegalInputUnchanged(t *testing.T) {
	inputs := []string{"a", "Zeta", "field-1", "x:y", "A_B_C", "q0123456789"}
	for _, in := range inputs {
		if got := SanitizeIDDefault(in); got != in {
			t.Errorf("SanitizeIDDefault(%q) = %q, want unchanged", in, got)
		}
	}
}
