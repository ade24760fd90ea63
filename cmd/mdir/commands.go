package main

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/goccy/go-yaml"

	"pkt.systems/mdir"
	"pkt.systems/mdir/mdhtml"
	"pkt.systems/mdir/preview"
)

func cmdCheck(e *env, args []string) int {
	flags := e.flagSet("[inputs...]")
	quiet := flags.BoolP("quiet", "q", false, "Only report failures")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	log := e.logger()
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
			log.Debug("check failed", "input", name, "error", err)
			status = worst(status, e.report(name, err))
			continue
		}
		if !*quiet {
			fmt.Fprintf(e.stdout, "%s: ok (%d nodes, %d front matter fields)\n", name, len(doc.Nodes), doc.FrontMatter.Len())
		}
	}
	return status
}

// rejectForeignFrontMatter reports YAML, TOML or JSON front matter, which
// the parser would otherwise read as a paragraph.
func (e *env) rejectForeignFrontMatter(name string, src []byte) bool {
	switch format := mdir.DetectFrontMatter(src); format {
	case mdir.FrontMatterYAML, mdir.FrontMatterTOML, mdir.FrontMatterJSON:
		fmt.Fprintf(e.stderr, "%s:1: %s front matter is not supported; convert it with: mdir import %s\n", name, format, name)
		return true
	default:
		return false
	}
}

type dumpDocument struct {
	Source      string        `yaml:"source,omitempty"`
	FrontMatter yaml.MapSlice `yaml:"front_matter,omitempty"`
	Nodes       []dumpNode    `yaml:"nodes"`
}

type dumpNode struct {
	Kind    string     `yaml:"kind"`
	Level   int        `yaml:"level,omitempty"`
	Text    string     `yaml:"text,omitempty"`
	Items   []string   `yaml:"items,omitempty"`
	Headers []string   `yaml:"headers,omitempty"`
	Rows    [][]string `yaml:"rows,omitempty"`
	Alt     string     `yaml:"alt,omitempty"`
	Path    string     `yaml:"path,omitempty"`
}

// dumpVisitor flattens nodes into their YAML form.
type dumpVisitor struct {
	out []dumpNode
}

func (d *dumpVisitor) VisitHeading(h mdir.Heading) error {
	d.out = append(d.out, dumpNode{Kind: h.Kind().String(), Level: h.Level, Text: h.Text})
	return nil
}

func (d *dumpVisitor) VisitParagraph(p mdir.Paragraph) error {
	d.out = append(d.out, dumpNode{Kind: p.Kind().String(), Text: p.Text})
	return nil
}

func (d *dumpVisitor) VisitBulletList(l mdir.BulletList) error {
	d.out = append(d.out, dumpNode{Kind: l.Kind().String(), Items: l.Items})
	return nil
}

func (d *dumpVisitor) VisitNumberedList(l mdir.NumberedList) error {
	d.out = append(d.out, dumpNode{Kind: l.Kind().String(), Items: l.Items})
	return nil
}

func (d *dumpVisitor) VisitTable(t mdir.Table) error {
	d.out = append(d.out, dumpNode{Kind: t.Kind().String(), Headers: t.Headers, Rows: t.Rows})
	return nil
}

func (d *dumpVisitor) VisitImage(img mdir.Image) error {
	d.out = append(d.out, dumpNode{Kind: img.Kind().String(), Alt: img.Alt, Path: img.Path})
	return nil
}

func toDump(name string, doc *mdir.Document) (dumpDocument, error) {
	out := dumpDocument{Source: name, Nodes: []dumpNode{}}
	for _, f := range doc.FrontMatter {
		out.FrontMatter = append(out.FrontMatter, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	v := &dumpVisitor{}
	for _, n := range doc.Nodes {
		if err := n.Accept(v); err != nil {
			return out, err
		}
	}
	if v.out != nil {
		out.Nodes = v.out
	}
	return out, nil
}

func cmdDump(e *env, args []string) int {
	flags := e.flagSet("[inputs...]")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	status := exitOK
	for i, raw := range inputs {
		name := displayName(raw)
		src, err := readInput(raw, e.stdin)
		if err != nil {
			status = worst(status, e.report(name, err))
			continue
		}
		doc, err := mdir.ParseBytes(src)
		if err != nil {
			status = worst(status, e.report(name, err))
			continue
		}
		dump, err := toDump(name, doc)
		if err != nil {
			status = worst(status, e.report(name, err))
			continue
		}
		data, err := yaml.Marshal(dump)
		if err != nil {
			e.errorf("%s: yaml: %v", name, err)
			status = worst(status, exitFailure)
			continue
		}
		if i > 0 {
			fmt.Fprintln(e.stdout, "---")
		}
		if _, err := e.stdout.Write(data); err != nil {
			e.errorf("write: %v", err)
			return exitFailure
		}
	}
	return status
}

func cmdPreview(e *env, args []string) int {
	flags := e.flagSet("[flags] [inputs...]")
	themeName := flags.StringP("theme", "t", "", "Theme name (see mdir themes)")
	width := flags.IntP("width", "w", 0, "Wrap width (0 = terminal width or 80)")
	osc8 := flags.StringP("osc8", "8", "auto", "OSC 8 hyperlinks for image paths: auto|on|off")
	boring := flags.BoolP("boring", "b", false, "Disable colors and styling")
	showFrontMatter := flags.Bool("front-matter", false, "Print front-matter fields above the body")
	output := flags.StringP("output", "o", "", "Write to file instead of stdout")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}

	theme := preview.DefaultTheme()
	if *themeName != "" {
		t, ok := preview.ThemeByName(*themeName)
		if !ok {
			e.errorf("unknown theme %q (available: %s)", *themeName, strings.Join(preview.AvailableThemes(), ", "))
			return exitInvalid
		}
		theme = t
	}
	if *boring {
		theme = preview.BoringTheme()
	}
	links, err := resolveOSC8(*osc8)
	if err != nil {
		e.errorf("--osc8: %v", err)
		return exitInvalid
	}
	if *boring {
		links = false
	}

	src, err := readInputs(flags.Args(), e.stdin)
	if err != nil {
		e.errorf("%v", err)
		return exitFailure
	}
	doc, err := mdir.ParseBytes(src)
	if err != nil {
		return e.report(strings.Join(inputNames(flags.Args()), ","), err)
	}

	out, outCloser, err := openOutput(*output, e.stdout)
	if err != nil {
		e.errorf("output: %v", err)
		return exitFailure
	}
	if outCloser != nil {
		defer outCloser.Close()
	}
	err = preview.Render(out, doc,
		preview.WithTheme(theme),
		preview.WithWidth(resolveWidth(*width, out)),
		preview.WithOSC8(links),
		preview.WithFrontMatter(*showFrontMatter),
	)
	if err != nil {
		e.errorf("%v", err)
		return exitCode(err)
	}
	return exitOK
}

func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	names := make([]string, len(args))
	for i, raw := range args {
		names[i] = displayName(raw)
	}
	return names
}

func cmdHTML(e *env, args []string) int {
	flags := e.flagSet("[flags] [input]")
	output := flags.StringP("output", "o", "", "Write to file instead of stdout")
	meta := flags.Bool("meta", false, "Emit front-matter fields as <meta> elements")
	exts := flags.StringSlice("ext", nil, "Goldmark extensions to enable (default gfm); available: "+strings.Join(mdhtml.ExtensionNames(), ","))
	headingIDs := flags.Bool("heading-ids", false, "Add generated id attributes to headings")
	hardWraps := flags.Bool("hard-wraps", false, "Render soft line breaks as <br>")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}
	inputs := flags.Args()
	if len(inputs) > 1 {
		e.errorf("html takes at most one input")
		return exitInvalid
	}
	raw := "-"
	if len(inputs) == 1 {
		raw = inputs[0]
	}
	name := displayName(raw)
	src, err := readInput(raw, e.stdin)
	if err != nil {
		return e.report(name, err)
	}
	doc, err := mdir.ParseBytes(src)
	if err != nil {
		return e.report(name, err)
	}
	html, err := mdhtml.Convert(doc, mdhtml.Options{
		Extensions:      *exts,
		FrontMatterMeta: *meta,
		HeadingIDs:      *headingIDs,
		HardWraps:       *hardWraps,
	})
	if err != nil {
		e.errorf("%s: %v", name, err)
		return exitFailure
	}
	out, closer, err := openOutput(*output, e.stdout)
	if err != nil {
		e.errorf("output: %v", err)
		return exitFailure
	}
	if closer != nil {
		defer closer.Close()
	}
	if _, err := out.Write(html); err != nil {
		e.errorf("write: %v", err)
		return exitFailure
	}
	return exitOK
}

func cmdImport(e *env, args []string) int {
	flags := e.flagSet("[flags] [input]")
	output := flags.StringP("output", "o", "", "Write the converted document to this path instead of stdout")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}
	inputs := flags.Args()
	if len(inputs) > 1 {
		e.errorf("import takes at most one input")
		return exitInvalid
	}
	raw := "-"
	if len(inputs) == 1 {
		raw = inputs[0]
	}
	name := displayName(raw)
	src, err := readInput(raw, e.stdin)
	if err != nil {
		return e.report(name, err)
	}
	doc, err := importDocument(src)
	if err != nil {
		return e.report(name, err)
	}

	renderer := mdir.NewRenderer(mdir.WithNormalizer(mdir.CollapseBlankLines))
	if *output == "" || *output == "-" {
		if err := renderer.RenderTo(e.stdout, doc); err != nil {
			e.errorf("%v", err)
			return exitFailure
		}
		return exitOK
	}
	svc, err := e.service(renderer)
	if err != nil {
		e.errorf("%v", err)
		return exitFailure
	}
	if err := svc.SaveDocument(context.Background(), expandPath(*output), doc); err != nil {
		return e.report(*output, err)
	}
	return exitOK
}

// importDocument reads YAML, TOML or JSON front matter and parses the
// remaining body.
func importDocument(src []byte) (*mdir.Document, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	doc, err := mdir.ParseBytes(body)
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return doc, nil
	}
	values := make(map[string]string, len(meta))
	for key, value := range meta {
		values[key] = stringifyValue(value)
	}
	fields := mdir.FieldsFromMap(values)
	// Body comment front matter wins over imported keys.
	for _, f := range doc.FrontMatter {
		fields.Set(f.Key, f.Value)
	}
	doc.FrontMatter = fields
	return doc, nil
}

func stringifyValue(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		s = ""
	case string:
		s = val
	case time.Time:
		s = val.Format(time.RFC3339)
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			s = val.Format(time.DateOnly)
		}
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = stringifyValue(item)
		}
		s = strings.Join(parts, ", ")
	case []string:
		s = strings.Join(val, ", ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + stringifyValue(val[k])
		}
		s = strings.Join(parts, ", ")
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = item
		}
		return stringifyValue(m)
	default:
		s = fmt.Sprint(val)
	}
	return strings.Join(strings.Fields(s), " ")
}
