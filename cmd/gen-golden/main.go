package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"pkt.systems/mdir"
)

func main() {
	root := flag.String("root", "testdata", "directory holding the .md fixtures")
	check := flag.Bool("check", false, "report stale goldens instead of rewriting them")
	flag.Parse()

	paths, err := fixturePaths(*root)
	if err != nil {
		fatalf("glob %s: %v", *root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", *root)
	}
	stale := 0
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		doc, err := mdir.ParseBytes(src)
		if err != nil {
			fatalf("parse %s: %v", path, err)
		}
		out, err := mdir.Render(doc)
		if err != nil {
			fatalf("render %s: %v", path, err)
		}
		dst := goldenPath(path)
		if *check {
			prev, err := os.ReadFile(dst)
			if err != nil || string(prev) != out {
				fmt.Fprintf(os.Stdout, "stale %s\n", dst)
				stale++
			}
			continue
		}
		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			fatalf("write %s: %v", dst, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", dst)
	}
	if stale > 0 {
		os.Exit(1)
	}
}

// fixturePaths lists the top-level .md fixtures under root, the same set
// golden_test.go checks.
func fixturePaths(root string) ([]string, error) {
	return filepath.Glob(filepath.Join(root, "*.md"))
}

func goldenPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, ".md") + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
