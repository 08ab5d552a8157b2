package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "tag name",
			code:    "E001",
			wantMsg: "Tag name is required",
			wantCat: CategoryInvalidArgument,
		},
		{
			name:    "field name",
			code:    "E010",
			wantMsg: "Field name is required",
			wantCat: CategoryInvalidArgument,
		},
		{
			name:    "config error",
			code:    "E120",
			wantMsg: "Invalid configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryPublish, "bucket %q missing", "assets")
	if err.Message != `bucket "assets" missing` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryPublish {
		t.Errorf("Category = %q, want %q", err.Category, CategoryPublish)
	}
}

func TestError_Error(t *testing.T) {
	got := New("E010").Error()
	want := "E010: Field name is required"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := &Error{Message: "plain"}
	if plain.Error() != "plain" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "plain")
	}
}

func TestIsInvalidArgument(t *testing.T) {
	if !IsInvalidArgument(New("E001")) {
		t.Error("E001 should be an invalid argument")
	}
	if IsInvalidArgument(New("E120")) {
		t.Error("E120 should not be an invalid argument")
	}

	wrapped := fmt.Errorf("render: %w", New("E010"))
	if !IsInvalidArgument(wrapped) {
		t.Error("wrapped E010 should match ErrInvalidArgument")
	}
	if !Is(wrapped, New("E010")) {
		t.Error("wrapped E010 should match by code")
	}
	if Is(wrapped, New("E001")) {
		t.Error("E010 should not match E001")
	}
	if IsInvalidArgument(fmt.Errorf("plain")) {
		t.Error("plain errors are not invalid arguments")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E081") != nil {
		t.Error("FromError(nil) should be nil")
	}

	cause := fmt.Errorf("disk full")
	e := FromError(cause, "E081")
	if e.Code != "E081" || e.Wrapped != cause {
		t.Errorf("FromError = %+v", e)
	}

	orig := New("E010")
	if FromError(fmt.Errorf("ctx: %w", orig), "E081") != orig {
		t.Error("FromError should return the wrapped *Error unchanged")
	}
}

func TestCategoryAndCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("E122"))
	if got := CategoryOf(err); got != CategoryConfig {
		t.Errorf("CategoryOf = %q", got)
	}
	if got := CodeOf(err); got != "E122" {
		t.Errorf("CodeOf = %q", got)
	}
	if CodeOf(fmt.Errorf("x")) != "" {
		t.Error("CodeOf on plain error should be empty")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E010").WithSuggestion("Pass ListBoxConfig.Name")
	out := err.Format()

	for _, want := range []string{
		"ERROR E010: Field name is required",
		"ListBox and DropDown need a non-empty form field name.",
		"Hint: Pass ListBoxConfig.Name",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E004").WithDetail(`attribute "data-x" has type []int`)
	want := `E004: Unsupported attribute value - attribute "data-x" has type []int`
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	var p Payload
	if err := json.Unmarshal([]byte(New("E010").FormatJSON()), &p); err != nil {
		t.Fatalf("FormatJSON produced invalid JSON: %v", err)
	}
	if p.Code != "E010" || p.Category != CategoryInvalidArgument {
		t.Errorf("payload = %+v", p)
	}
}

func TestToPayload_PlainError(t *testing.T) {
	p := ToPayload(fmt.Errorf("boom"))
	if p.Message != "boom" || p.Code != "" {
		t.Errorf("payload = %+v", p)
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, New("E121"))
	if !strings.Contains(buf.String(), "E121: Config file not found") {
		t.Errorf("PrintError output = %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, fmt.Errorf("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("PrintError output = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q longer than 10", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) != len(registry) {
		t.Errorf("GetAllCodes() returned %d codes, want %d", len(codes), len(registry))
	}
	for _, code := range codes {
		if _, ok := GetTemplate(code); !ok {
			t.Errorf("GetTemplate(%q) not found", code)
		}
	}
}
