package palette

import "testing"

func TestFG(t *testing.T) {
	cases := map[string]string{
		"#ff8700": "\x1b[38;2;255;135;0m",
		"000000":  "\x1b[38;2;0;0;0m",
		"#fff":    "",
		"#zzzzzz": "",
	}
	for in, want := range cases {
		if got := FG(in); got != want {
			t.Fatalf("FG(%q) = %q, want %q", in, got, want)
		}
	}
	if PaletteDefault.H1 == "" || PaletteDefault.Text == "" {
		t.Fatalf("default palette has empty slots")
	}
}
