package preview

import (
	"sort"
	"strings"

	"pkt.systems/mdir/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Render wraps text in the style. An empty prefix leaves text untouched.
func (s Style) Render(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + palette.Reset
}

// Styles groups the semantic styles used by the preview renderer.
type Styles struct {
	Text             Style
	Heading          [6]Style
	ListMarker       Style
	TableBorder      Style
	TableHeader      Style
	ImageAlt         Style
	ImageURL         Style
	FrontMatterKey   Style
	FrontMatterValue Style
}

// Theme provides named styles for previews.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme without any escape sequences.
func BoringTheme() Theme {
	return NewTheme("boring", Styles{})
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:             Style{Prefix: p.Text},
		Heading:          [6]Style{{p.H1}, {p.H2}, {p.H3}, {p.H4}, {p.H5}, {p.H6}},
		ListMarker:       Style{Prefix: p.ListMarker},
		TableBorder:      Style{Prefix: p.TableBorder},
		TableHeader:      Style{Prefix: p.TableHeader},
		ImageAlt:         Style{Prefix: p.ImageAlt},
		ImageURL:         Style{Prefix: p.ImageURL},
		FrontMatterKey:   Style{Prefix: p.Key},
		FrontMatterValue: Style{Prefix: p.Value},
	}
}

func paletteTheme(name string, p palette.Palette) Theme {
	return theme{name: name, styles: stylesFromPalette(p)}
}

var builtinThemes = map[string]Theme{
	"default":          paletteTheme("default", palette.PaletteDefault),
	"boring":           BoringTheme(),
	"dracula":          paletteTheme("dracula", palette.PaletteDracula),
	"nord":             paletteTheme("nord", palette.PaletteNord),
	"gruvbox":          paletteTheme("gruvbox", palette.PaletteGruvbox),
	"gruvbox-light":    paletteTheme("gruvbox-light", palette.PaletteGruvboxLight),
	"tokyo-night":      paletteTheme("tokyo-night", palette.PaletteTokyoNight),
	"catppuccin-mocha": paletteTheme("catppuccin-mocha", palette.PaletteCatppuccinMocha),
	"solarized-dark":   paletteTheme("solarized-dark", palette.PaletteSolarizedDark),
	"solarized-light":  paletteTheme("solarized-light", palette.PaletteSolarizedLight),
	"github-dark":      paletteTheme("github-dark", palette.PaletteGithubDark),
	"github-light":     paletteTheme("github-light", palette.PaletteGithubLight),
	"rose-pine":        paletteTheme("rose-pine", palette.PaletteRosePine),
	"one-dark":         paletteTheme("one-dark", palette.PaletteOneDark),
	"kanagawa":         paletteTheme("kanagawa", palette.PaletteKanagawa),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. The empty name selects the
// default theme.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	t, ok := builtinThemes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
