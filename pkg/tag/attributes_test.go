package tag

import (
	"math"
	"slices"
	"testing"
)

func TestAttributeMap_OrdinalOrder(t *testing.T) {
	var a AttributeMap
	a.Set("name", "n")
	a.Set("Zeta", "z")
	a.Set("class", "c")
	a.Set("data-b", "b")
	a.Set("ID", "i")

	want := []string{"ID", "Zeta", "class", "data-b", "name"}
	if got := a.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	var seen []string
	for k, v := range a.All() {
		seen = append(seen, k+"="+v)
	}
	if len(seen) != 5 || seen[0] != "ID=i" || seen[4] != "name=n" {
		t.Errorf("All() = %v", seen)
	}
}

func TestAttributeMap_SetGetDelete(t *testing.T) {
	a := NewAttributeMap()
	a.Set("size", "5")
	if v, ok := a.Get("size"); !ok || v != "5" {
		t.Errorf("Get(size) = %q, %v", v, ok)
	}
	a.Set("size", "6")
	if v, _ := a.Get("size"); v != "6" {
		t.Errorf("Set should overwrite, got %q", v)
	}
	a.Delete("size")
	a.Delete("missing")
	if a.Has("size") || a.Len() != 0 {
		t.Errorf("Delete left %d attributes", a.Len())
	}
}

func TestAttributeMap_AllStopsEarly(t *testing.T) {
	a := NewAttributeMap()
	a.Set("a", "1")
	a.Set("b", "2")
	a.Set("c", "3")

	n := 0
	for range a.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 5, "5"},
		{"negative int64", int64(-12), "-12"},
		{"int8", int8(7), "7"},
		{"uint", uint(42), "42"},
		{"uint64 max", uint64(math.MaxUint64), "18446744073709551615"},
		{"float whole", 3.0, "3"},
		{"float fraction", 2.5, "2.5"},
		{"float32", float32(0.1), "0.1"},
		{"large float", 1e21, "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.value)
			if err != nil {
				t.Fatalf("FormatValue(%v) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValue_Unsupported(t *testing.T) {
	for _, v := range []any{[]int{1}, struct{}{}, map[string]string{}, &struct{}{}} {
		if _, err := FormatValue(v); !isInvalidArgument(err) {
			t.Errorf("FormatValue(%T) error = %v, want invalid argument", v, err)
		}
	}
}

func TestAttributes_Clone(t *testing.T) {
	var nilAttrs Attributes
	if nilAttrs.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	orig := Attributes{"class": "a"}
	c := orig.Clone()
	c["class"] = "b"
	if orig["class"] != "a" {
		t.Error("Clone should not share storage")
	}
}
