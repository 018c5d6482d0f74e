package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-loom/loom/pkg/errors"
)

func TestSelector_String(t *testing.T) {
	cases := []struct {
		selector Selector
		want     string
	}{
		{NewSelector("textbox"), "textbox"},
		{NewSelector("textbox").Class("compact"), "textbox.compact"},
		{NewSelector("textbox").Pseudo("focused"), "textbox:focused"},
		{NewSelector("button").Class("a").Class("b").Pseudo("pressed"), "button.a.b:pressed"},
		{NewSelector("").With("cursor"), "cursor"},
	}
	for _, tc := range cases {
		if got := tc.selector.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestSelector_CopiesAreIndependent(t *testing.T) {
	base := NewSelector("textbox").Class("a")
	focused := base.Pseudo("focused")
	other := base.Pseudo("disabled")

	if base.String() != "textbox.a" {
		t.Errorf("base mutated: %q", base)
	}
	if focused.String() != "textbox.a:focused" || other.String() != "textbox.a:disabled" {
		t.Errorf("copies interfered: %q, %q", focused, other)
	}
	if !focused.HasPseudo("focused") || focused.HasPseudo("disabled") {
		t.Error("HasPseudo wrong")
	}
}

func TestLoad_ValidTheme(t *testing.T) {
	theme, err := Load([]byte(`
version: v1.2.0
styles:
  textbox:
    foreground: "#ffffff"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	style, ok := theme.Style(NewSelector("textbox"))
	if !ok || style["foreground"] != "#ffffff" {
		t.Errorf("style = %v", style)
	}
}

func TestLoad_RejectsBadVersions(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing", "styles: {}"},
		{"not semver", "version: one"},
		{"wrong major", "version: v2.0.0"},
		{"no v prefix", "version: 1.0.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected a version error")
			}
			var loomErr *errors.LoomError
			if !stderrors.As(err, &loomErr) || loomErr.Kind != errors.KindTheme {
				t.Errorf("expected a theme-kind LoomError, got %v", err)
			}
		})
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	if _, err := Load([]byte("styles: [unbalanced")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadReader(t *testing.T) {
	theme, err := LoadReader(strings.NewReader("version: v1.0.0\nstyles: {}"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if theme.Version != "v1.0.0" {
		t.Errorf("Version = %q", theme.Version)
	}
}

func TestLoadOptional_MissingFileFallsBack(t *testing.T) {
	theme, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if _, ok := theme.Style(NewSelector("textbox")); !ok {
		t.Error("expected the built-in default theme")
	}
}

func TestLoadOptional_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	doc := "version: v1.0.0\nstyles:\n  cursor:\n    background: \"#ff0000\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if got := theme.Attribute(NewSelector("cursor"), "background"); got != "#ff0000" {
		t.Errorf("background = %q", got)
	}
}

func TestThemeStyle_FallbackChain(t *testing.T) {
	theme, err := Load([]byte(`
version: v1.0.0
styles:
  textbox:
    border: "#111111"
  "textbox:focused":
    border: "#222222"
`))
	if err != nil {
		t.Fatal(err)
	}

	focused := NewSelector("textbox").Pseudo("focused")
	if got := theme.Attribute(focused, "border"); got != "#222222" {
		t.Errorf("focused border = %q", got)
	}

	disabled := NewSelector("textbox").Pseudo("disabled")
	if got := theme.Attribute(disabled, "border"); got != "#111111" {
		t.Errorf("fallback border = %q", got)
	}

	if got := theme.Attribute(NewSelector("unknown"), "border"); got != "" {
		t.Errorf("unknown selector resolved %q", got)
	}
}

func TestDefault_EmbeddedThemeIsValid(t *testing.T) {
	theme := Default()
	if theme.Version == "" {
		t.Fatal("default theme missing version")
	}
	for _, element := range []string{"textbox", "watermarktextblock", "cursor"} {
		if _, ok := theme.Style(NewSelector(element)); !ok {
			t.Errorf("default theme missing %q", element)
		}
	}
}
