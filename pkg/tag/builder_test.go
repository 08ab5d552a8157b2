package tag

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/vango-dev/formselect/internal/errors"
)

func isInvalidArgument(err error) bool {
	return stderrors.Is(err, ErrInvalidArgument)
}

func mustNew(t *testing.T, tagName string, opts ...Option) *Builder {
	t.Helper()
	b, err := New(tagName, opts...)
	if err != nil {
		t.Fatalf("New(%q) error: %v", tagName, err)
	}
	return b
}

func TestNew_EmptyTagName(t *testing.T) {
	b, err := New("")
	if b != nil {
		t.Error("expected nil builder")
	}
	if !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if errors.CodeOf(err) != "E001" {
		t.Errorf("code = %q, want E001", errors.CodeOf(err))
	}
}

func TestBuilder_TagName(t *testing.T) {
	if got := mustNew(t, "select").TagName(); got != "select" {
		t.Errorf("TagName() = %q", got)
	}
}

func TestMergeAttribute(t *testing.T) {
	t.Run("keeps first value without replace", func(t *testing.T) {
		b := mustNew(t, "div")
		_ = b.MergeAttribute("title", "v1", false)
		_ = b.MergeAttribute("title", "v2", false)
		if v, _ := b.Attributes.Get("title"); v != "v1" {
			t.Errorf("title = %q, want v1", v)
		}
	})

	t.Run("replaces with replace", func(t *testing.T) {
		b := mustNew(t, "div")
		_ = b.MergeAttribute("title", "v1", false)
		_ = b.MergeAttribute("title", "v2", true)
		if v, _ := b.Attributes.Get("title"); v != "v2" {
			t.Errorf("title = %q, want v2", v)
		}
	})

	t.Run("empty key", func(t *testing.T) {
		b := mustNew(t, "div")
		if err := b.MergeAttribute("", "x", true); !isInvalidArgument(err) {
			t.Errorf("expected invalid argument, got %v", err)
		}
		if b.Attributes.Len() != 0 {
			t.Error("no attribute should be stored")
		}
	})
}

func TestMergeAttributes(t *testing.T) {
	b := mustNew(t, "select")
	_ = b.MergeAttribute("name", "orig", false)

	err := b.MergeAttributes(Attributes{
		"name":     "caller",
		"size":     4,
		"disabled": true,
		"ratio":    0.5,
	}, false)
	if err != nil {
		t.Fatalf("MergeAttributes error: %v", err)
	}

	want := map[string]string{"name": "orig", "size": "4", "disabled": "true", "ratio": "0.5"}
	for k, v := range want {
		if got, _ := b.Attributes.Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}

	if err := b.MergeAttributes(Attributes{"name": "caller"}, true); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Attributes.Get("name"); got != "caller" {
		t.Errorf("name = %q, want caller after replace", got)
	}
}

func TestMergeAttributes_Nil(t *testing.T) {
	b := mustNew(t, "div")
	if err := b.MergeAttributes(nil, true); err != nil {
		t.Errorf("nil map should be a no-op, got %v", err)
	}
}

func TestMergeAttributes_Errors(t *testing.T) {
	b := mustNew(t, "div")
	err := b.MergeAttributes(Attributes{"data-list": []string{"a"}}, false)
	if !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if errors.CodeOf(err) != "E004" {
		t.Errorf("code = %q, want E004", errors.CodeOf(err))
	}

	err = b.MergeAttributes(Attributes{"": "x"}, false)
	if errors.CodeOf(err) != "E002" {
		t.Errorf("empty key code = %q, want E002", errors.CodeOf(err))
	}
}

func TestAddCSSClass(t *testing.T) {
	b := mustNew(t, "div")
	b.AddCSSClass("first")
	b.AddCSSClass("second")
	if v, _ := b.Attributes.Get("class"); v != "second first" {
		t.Errorf("class = %q, want %q", v, "second first")
	}
}

func TestGenerateID(t *testing.T) {
	t.Run("sanitizes name", func(t *testing.T) {
		b := mustNew(t, "select")
		b.GenerateID("user.Country")
		if v, _ := b.Attributes.Get("id"); v != "user_Country" {
			t.Errorf("id = %q", v)
		}
	})

	t.Run("keeps existing id", func(t *testing.T) {
		b := mustNew(t, "select")
		b.Attributes.Set("id", "mine")
		b.GenerateID("other")
		if v, _ := b.Attributes.Get("id"); v != "mine" {
			t.Errorf("id = %q, want mine", v)
		}
	})

	t.Run("invalid name sets nothing", func(t *testing.T) {
		b := mustNew(t, "select")
		b.GenerateID("9lives")
		if b.Attributes.Has("id") {
			t.Error("id should not be set")
		}
	})

	t.Run("configured replacement", func(t *testing.T) {
		b := mustNew(t, "select", WithIDReplacement("-"))
		b.GenerateID("a.b")
		if v, _ := b.Attributes.Get("id"); v != "a-b" {
			t.Errorf("id = %q, want a-b", v)
		}
	})

	t.Run("empty replacement keeps default", func(t *testing.T) {
		b := mustNew(t, "select", WithIDReplacement(""))
		b.GenerateID("a.b")
		if v, _ := b.Attributes.Get("id"); v != "a_b" {
			t.Errorf("id = %q, want a_b", v)
		}
	})
}

func TestRender(t *testing.T) {
	b := mustNew(t, "option")
	b.Attributes.Set("value", `a"b`)
	b.Attributes.Set("selected", "selected")
	b.InnerHTML = "<b>raw</b>"

	tests := []struct {
		mode RenderMode
		want string
	}{
		{Normal, `<option selected="selected" value="a&quot;b"><b>raw</b></option>`},
		{StartTag, `<option selected="selected" value="a&quot;b">`},
		{EndTag, `</option>`},
		{SelfClosing, `<option selected="selected" value="a&quot;b" />`},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := b.Render(tt.mode); got != tt.want {
				t.Errorf("Render(%s) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}

	if b.String() != tests[0].want {
		t.Errorf("String() = %q", b.String())
	}
	if string(b.HTML(EndTag)) != "</option>" {
		t.Errorf("HTML(EndTag) = %q", b.HTML(EndTag))
	}
}

func TestRender_EmptyIDSkipped(t *testing.T) {
	b := mustNew(t, "input")
	b.Attributes.Set("id", "")
	b.Attributes.Set("name", "x")
	if got := b.Render(SelfClosing); got != `<input name="x" />` {
		t.Errorf("Render = %q", got)
	}

	// Other empty attributes are still written.
	b.Attributes.Set("value", "")
	if got := b.Render(StartTag); got != `<input name="x" value="">` {
		t.Errorf("Render = %q", got)
	}
}

func TestRender_CustomEncoders(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }
	b := mustNew(t, "p", WithAttributeEncoder(upper), WithTextEncoder(upper), WithAttributeEncoder(nil))
	b.Attributes.Set("title", "hi")
	b.SetInnerText("text")
	if got := b.String(); got != `<p title="HI">TEXT</p>` {
		t.Errorf("String() = %q", got)
	}
}

func TestSetInnerText(t *testing.T) {
	b := mustNew(t, "option")
	b.SetInnerText("Tom & Jerry <3")
	if b.InnerHTML != "Tom &amp; Jerry &lt;3" {
		t.Errorf("InnerHTML = %q", b.InnerHTML)
	}
}

func TestRenderMode_String(t *testing.T) {
	if RenderMode(42).String() != "unknown" {
		t.Error("unexpected name for unknown mode")
	}
	var zero RenderMode
	if zero != Normal {
		t.Error("zero RenderMode should be Normal")
	}
}

func TestRender_AttributeEncoding(t *testing.T) {
	b := mustNew(t, "option")
	b.Attributes.Set("title", "1 < 2 > 0 & 'ok'")

	want := `<option title="1 &lt; 2 > 0 &amp; &#39;ok&#39;"></option>`
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
