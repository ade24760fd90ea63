package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"pkt.systems/mdir"
)

const diffContext = 2

func cmdFmt(e *env, args []string) int {
	flags := e.flagSet("[-w|-d|-l] [inputs...]")
	write := flags.BoolP("write", "w", false, "Write the result back to the source file")
	showDiff := flags.BoolP("diff", "d", false, "Print a diff instead of the formatted document")
	list := flags.BoolP("list", "l", false, "List inputs whose formatting differs")
	collapse := flags.Bool("collapse", true, "Collapse blank-line runs and end with a single newline")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}

	var opts []mdir.RenderOption
	if *collapse {
		opts = append(opts, mdir.WithNormalizer(mdir.CollapseBlankLines))
	}
	renderer := mdir.NewRenderer(opts...)
	svc, err := e.service(renderer)
	if err != nil {
		e.errorf("%v", err)
		return exitFailure
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		if *write {
			e.errorf("-w requires file inputs")
			return exitInvalid
		}
		inputs = []string{"-"}
	}

	ctx := context.Background()
	status := exitOK
	for _, raw := range inputs {
		name := displayName(raw)
		src, err := readInput(raw, e.stdin)
		if err != nil {
			status = worst(status, e.report(name, err))
			continue
		}
		if e.rejectForeignFrontMatter(name, src) {
			status = worst(status, exitInvalid)
			continue
		}
		doc, err := mdir.ParseBytes(src)
		if err != nil {
			status = worst(status, e.report(name, err))
			continue
		}
		out, err := renderer.Render(doc)
		if err != nil {
			status = worst(status, e.report(name, err))
			continue
		}
		changed := out != string(src)
		if *list && changed {
			fmt.Fprintln(e.stdout, name)
		}
		if *showDiff && changed {
			writeDiff(e.stdout, name, string(src), out, isTerminal(e.stdout))
		}
		if *write {
			path, ok := localPath(raw)
			if !ok {
				e.errorf("%s: cannot write back to a remote input", name)
				status = worst(status, exitInvalid)
				continue
			}
			if changed {
				if err := svc.SaveDocument(ctx, path, doc); err != nil {
					status = worst(status, e.report(name, err))
				}
			}
		}
		if !*write && !*showDiff && !*list {
			if _, err := io.WriteString(e.stdout, out); err != nil {
				e.errorf("write: %v", err)
				return exitFailure
			}
		}
	}
	return status
}

func displayName(raw string) string {
	if strings.TrimSpace(raw) == "-" {
		return stdinName
	}
	return raw
}

// writeDiff prints a line diff between before and after with a few lines of
// context around each change.
func writeDiff(w io.Writer, name, before, after string, colorize bool) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	add := color.New(color.FgGreen)
	meta := color.New(color.FgCyan)
	if !colorize {
		del.DisableColor()
		add.DisableColor()
		meta.DisableColor()
	}

	fmt.Fprintln(w, meta.Sprint("--- "+name))
	fmt.Fprintln(w, meta.Sprint("+++ "+name+" (formatted)"))
	for i, d := range diffs {
		text := splitDiffLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range text {
				fmt.Fprintln(w, del.Sprint("-"+line))
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range text {
				fmt.Fprintln(w, add.Sprint("+"+line))
			}
		case diffmatchpatch.DiffEqual:
			head, tail, skipped := contextLines(text, i == 0, i == len(diffs)-1)
			for _, line := range head {
				fmt.Fprintln(w, " "+line)
			}
			if skipped {
				fmt.Fprintln(w, meta.Sprint("@@"))
			}
			for _, line := range tail {
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}

// contextLines keeps diffContext lines next to each neighbouring change.
func contextLines(lines []string, first, last bool) (head, tail []string, skipped bool) {
	keepHead, keepTail := diffContext, diffContext
	if first {
		keepHead = 0
	}
	if last {
		keepTail = 0
	}
	if len(lines) <= keepHead+keepTail {
		return lines, nil, false
	}
	return lines[:keepHead], lines[len(lines)-keepTail:], true
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
