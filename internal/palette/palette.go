// Package palette holds the colour sets behind the built-in preview themes.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Faint     = "\x1b[2m"
)

// Palette is a set of ANSI prefixes, one per semantic slot.
type Palette struct {
	Text        string
	H1          string
	H2          string
	H3          string
	H4          string
	H5          string
	H6          string
	ListMarker  string
	TableBorder string
	TableHeader string
	ImageAlt    string
	ImageURL    string
	Key         string
	Value       string
}

// FG returns the 24-bit foreground sequence for a "#rrggbb" colour. Invalid
// input yields "".
func FG(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

func parseHex(hex string) (uint8, uint8, uint8, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

func build(text, h1, h2, h3, h4, marker, border, link, key string) Palette {
	return Palette{
		Text:        FG(text),
		H1:          Bold + FG(h1),
		H2:          Bold + FG(h2),
		H3:          FG(h3),
		H4:          FG(h4),
		H5:          FG(h4),
		H6:          Faint + FG(h4),
		ListMarker:  FG(marker),
		TableBorder: FG(border),
		TableHeader: Bold + FG(h2),
		ImageAlt:    Italic + FG(marker),
		ImageURL:    Underline + FG(link),
		Key:         Bold + FG(key),
		Value:       FG(text),
	}
}

var (
	PaletteDefault         = build("#d0d0d0", "#ff5f87", "#5fafff", "#87d787", "#d7af5f", "#ff8700", "#6c6c6c", "#5fd7ff", "#af87ff")
	PaletteDracula         = build("#f8f8f2", "#ff79c6", "#bd93f9", "#50fa7b", "#f1fa8c", "#ffb86c", "#6272a4", "#8be9fd", "#ff79c6")
	PaletteNord            = build("#d8dee9", "#88c0d0", "#81a1c1", "#a3be8c", "#ebcb8b", "#d08770", "#4c566a", "#8fbcbb", "#b48ead")
	PaletteGruvbox         = build("#ebdbb2", "#fb4934", "#fabd2f", "#b8bb26", "#83a598", "#fe8019", "#665c54", "#8ec07c", "#d3869b")
	PaletteGruvboxLight    = build("#3c3836", "#9d0006", "#b57614", "#79740e", "#076678", "#af3a03", "#a89984", "#427b58", "#8f3f71")
	PaletteTokyoNight      = build("#c0caf5", "#f7768e", "#7aa2f7", "#9ece6a", "#e0af68", "#ff9e64", "#565f89", "#7dcfff", "#bb9af7")
	PaletteCatppuccinMocha = build("#cdd6f4", "#f38ba8", "#89b4fa", "#a6e3a1", "#f9e2af", "#fab387", "#6c7086", "#89dceb", "#cba6f7")
	PaletteSolarizedDark   = build("#93a1a1", "#cb4b16", "#268bd2", "#859900", "#b58900", "#d33682", "#586e75", "#2aa198", "#6c71c4")
	PaletteSolarizedLight  = build("#586e75", "#cb4b16", "#268bd2", "#859900", "#b58900", "#d33682", "#93a1a1", "#2aa198", "#6c71c4")
	PaletteGithubDark      = build("#c9d1d9", "#ff7b72", "#79c0ff", "#7ee787", "#d2a8ff", "#ffa657", "#484f58", "#a5d6ff", "#d2a8ff")
	PaletteGithubLight     = build("#24292f", "#cf222e", "#0550ae", "#116329", "#8250df", "#953800", "#8c959f", "#0a3069", "#8250df")
	PaletteRosePine        = build("#e0def4", "#eb6f92", "#c4a7e7", "#9ccfd8", "#f6c177", "#ebbcba", "#6e6a86", "#31748f", "#c4a7e7")
	PaletteOneDark         = build("#abb2bf", "#e06c75", "#61afef", "#98c379", "#e5c07b", "#d19a66", "#5c6370", "#56b6c2", "#c678dd")
	PaletteKanagawa        = build("#dcd7ba", "#e46876", "#7e9cd8", "#98bb6c", "#e6c384", "#ffa066", "#727169", "#7fb4ca", "#957fb8")
)
