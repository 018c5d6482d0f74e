package theme

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/errors"
)

// supportedMajor is the theme file format major version this package reads.
const supportedMajor = "v1"

//go:embed default.yaml
var defaultTheme []byte

// Style holds the paint attributes resolved for one selector, as opaque
// key/value pairs interpreted by the rendering collaborator.
type Style map[string]string

// Theme maps selector strings to styles.
type Theme struct {
	// Version is the theme file format version (semver, major v1).
	Version string `yaml:"version"`
	// Styles is keyed by selector string: "textbox", "textbox:focused".
	Styles map[string]Style `yaml:"styles"`
}

// Default returns the built-in theme.
func Default() *Theme {
	theme, err := Load(defaultTheme)
	if err != nil {
		// The embedded theme is validated by tests; failing here is a
		// packaging defect.
		panic(err)
	}
	return theme
}

// Load parses a theme document and validates its format version.
func Load(data []byte) (*Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, &errors.LoomError{
			Op:   "theme.Load",
			Kind: errors.KindTheme,
			Err:  err,
		}
	}
	if !semver.IsValid(theme.Version) {
		return nil, &errors.LoomError{
			Op:   "theme.Load",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("invalid theme version %q", theme.Version),
		}
	}
	if semver.Major(theme.Version) != supportedMajor {
		return nil, &errors.LoomError{
			Op:   "theme.Load",
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("unsupported theme version %s (want major %s)", theme.Version, supportedMajor),
		}
	}
	return &theme, nil
}

// LoadReader parses a theme document from r.
func LoadReader(r io.Reader) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.LoomError{Op: "theme.LoadReader", Kind: errors.KindTheme, Err: err}
	}
	return Load(data)
}

// LoadOptional reads a theme file if present, falling back to the built-in
// default when the file does not exist.
func LoadOptional(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, &errors.LoomError{Op: "theme.LoadOptional", Kind: errors.KindTheme, Err: err}
	}
	return Load(data)
}

// Style looks up the style for a selector. It tries the full selector
// string first, then the same selector without pseudo-classes, then the
// bare element name.
func (t *Theme) Style(selector Selector) (Style, bool) {
	for _, key := range []string{
		selector.String(),
		selector.WithoutPseudo().String(),
		selector.Element(),
	} {
		if style, ok := t.Styles[key]; ok {
			return style, true
		}
	}
	return nil, false
}

// Attribute returns one attribute of the style resolved for selector, or ""
// when neither the style nor the attribute exists.
func (t *Theme) Attribute(selector Selector, name string) string {
	style, ok := t.Style(selector)
	if !ok {
		return ""
	}
	return style[name]
}
