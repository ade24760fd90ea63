package preview

import (
	"io"
	"strconv"
	"strings"
	"testing"

	"pkt.systems/mdir"
)

func benchDocument(n int) *mdir.Document {
	words := strings.Repeat("lorem ipsum dolor sit amet ", 8)
	nodes := make([]mdir.Node, 0, n*5)
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		nodes = append(nodes,
			mdir.Heading{Level: 2, Text: "Section " + idx},
			mdir.Paragraph{Text: words},
			mdir.BulletList{Items: []string{words, "short"}},
			mdir.Table{Headers: []string{"Key", "Value"}, Rows: [][]string{{"id", idx}, {"notes", words}}},
			mdir.Image{Alt: "figure " + idx, Path: "https://example.com/img/" + idx + ".png"},
		)
	}
	return mdir.NewDocument(mdir.Fields{{Key: "id", Value: "bench"}}, nodes...)
}

func BenchmarkRenderWidths(b *testing.B) {
	doc := benchDocument(50)
	for _, width := range []int{50, 60, 80} {
		width := width
		b.Run("w"+strconv.Itoa(width), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := Render(io.Discard, doc, WithWidth(width)); err != nil {
					b.Fatalf("render: %v", err)
				}
			}
		})
	}
}

func BenchmarkRenderBoringOSC8(b *testing.B) {
	doc := benchDocument(50)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := Render(io.Discard, doc, WithTheme(BoringTheme()), WithOSC8(true), WithFrontMatter(true)); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}
