package preview

import (
	"sort"
	"testing"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"default", "boring", "dracula", "nord", "tokyo-night", "github-light", "kanagawa"} {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if th, ok := ThemeByName("  Dracula "); !ok || th.Name() != "dracula" {
		t.Fatalf("lookup should ignore case and spaces, got %v %v", th, ok)
	}
	if th, ok := ThemeByName(""); !ok || th.Name() != DefaultTheme().Name() {
		t.Fatalf("empty name should select the default theme")
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unexpected theme")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	t.Parallel()
	names := AvailableThemes()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("theme names are not sorted: %v", names)
	}
	for _, name := range names {
		th, ok := ThemeByName(name)
		if !ok || th.Name() != name {
			t.Fatalf("theme %q does not resolve to itself", name)
		}
		if name == "boring" {
			continue
		}
		for i, h := range th.Styles().Heading {
			if h.Prefix == "" {
				t.Fatalf("theme %q has no heading %d style", name, i+1)
			}
		}
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	t.Parallel()
	styles := BoringTheme().Styles()
	for i, h := range styles.Heading {
		if h.Prefix != "" {
			t.Fatalf("expected empty heading %d prefix", i+1)
		}
	}
	for _, s := range []Style{
		styles.Text, styles.ListMarker, styles.TableBorder, styles.TableHeader,
		styles.ImageAlt, styles.ImageURL, styles.FrontMatterKey, styles.FrontMatterValue,
	} {
		if s.Prefix != "" {
			t.Fatalf("expected empty prefix, got %q", s.Prefix)
		}
	}
	if got := (Style{}).Render("plain"); got != "plain" {
		t.Fatalf("empty style changed text: %q", got)
	}
}

func TestFitPath(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"a.png", 10, "a.png"},
		{"https://x.io/a.png", 12, "x.io/a.png"},
		{"https://example.com/very/long.png", 10, "example.c…"},
		{"abcdef", 1, "…"},
		{"abcdef", 0, ""},
	}
	for _, tc := range cases {
		if got := fitPath(tc.in, tc.limit); got != tc.want {
			t.Fatalf("fitPath(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
	if got := fitCell("ab", 4); got != "ab  " {
		t.Fatalf("fitCell pad = %q", got)
	}
}
