package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/mdir"
	"pkt.systems/mdir/convert"
	"pkt.systems/mdir/preview"
)

const (
	defaultWidth = 80

	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

func init() {
	version.SetDefaultModule("pkt.systems/mdir")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) int
}

var commands = []command{
	{"fmt", "Rewrite documents in canonical form", cmdFmt},
	{"check", "Parse documents and report errors", cmdCheck},
	{"dump", "Print the parsed document as YAML", cmdDump},
	{"preview", "Render documents for the terminal", cmdPreview},
	{"html", "Export a document as HTML", cmdHTML},
	{"import", "Convert YAML, TOML or JSON front matter to comment front matter", cmdImport},
	{"themes", "List preview themes", cmdThemes},
	{"version", "Print the version", cmdVersion},
}

// env carries the process streams and per-run settings shared by
// subcommands.
type env struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	cmd       string
	logLevel  string
	logFormat string
	logs      *convert.GoLogger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr, cmd: "mdir"}
	if len(args) == 0 {
		e.usage()
		return exitInvalid
	}
	name := args[0]
	switch name {
	case "-h", "--help", "help":
		e.usage()
		return exitOK
	}
	for _, c := range commands {
		if c.name == name {
			e.cmd = c.name
			return c.run(e, args[1:])
		}
	}
	e.errorf("unknown command %q", name)
	e.usage()
	return exitInvalid
}

func (e *env) usage() {
	fmt.Fprintln(e.stderr, version.Module(), version.Current())
	fmt.Fprintln(e.stderr, "Usage: mdir <command> [flags] [inputs...]")
	fmt.Fprintln(e.stderr, "\nInputs may be paths, file:// or http(s):// URLs, or - for stdin.")
	fmt.Fprintln(e.stderr, "\nCommands:")
	for _, c := range commands {
		fmt.Fprintf(e.stderr, "  %-8s %s\n", c.name, c.summary)
	}
}

// flagSet returns a FlagSet for the current subcommand with the logging
// flags registered.
func (e *env) flagSet(usage string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(e.cmd, pflag.ContinueOnError)
	flags.SetOutput(e.stderr)
	flags.SetInterspersed(true)
	flags.StringVar(&e.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error (empty disables logging)")
	flags.StringVar(&e.logFormat, "log-format", "console", "Log format: console|json|pretty")
	flags.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: mdir %s %s\n\nFlags:\n", e.cmd, usage)
		flags.PrintDefaults()
	}
	return flags
}

// parse parses args and sets up logging. It returns false with the exit
// code to use when the command should stop.
func (e *env) parse(flags *pflag.FlagSet, args []string) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK, false
		}
		return exitInvalid, false
	}
	if strings.TrimSpace(e.logLevel) != "" {
		logs, err := convert.NewGoLogger(e.logLevel, e.logFormat)
		if err != nil {
			e.errorf("%v", err)
			return exitInvalid, false
		}
		e.logs = logs
	}
	return exitOK, true
}

func (e *env) logger() convert.Logger {
	if e.logs == nil {
		return convert.NoOp()
	}
	return e.logs.Named("mdir." + e.cmd)
}

func (e *env) service(renderer *mdir.Renderer) (*convert.Service, error) {
	return convert.New(convert.Config{
		Storage:  convert.FileStorage{},
		Renderer: renderer,
		Logger:   e.logger(),
	})
}

func (e *env) errorf(format string, args ...any) {
	prefix := e.cmd + ":"
	if isTerminal(e.stderr) {
		prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
	}
	fmt.Fprintf(e.stderr, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// report prints err for input name in path:line form when a line is known
// and returns the exit code it maps to.
func (e *env) report(name string, err error) int {
	var perr *mdir.ParseError
	if errors.As(err, &perr) && perr.Line > 0 {
		fmt.Fprintf(e.stderr, "%s:%d: %s\n", name, perr.Line, perr.Msg)
	} else {
		e.errorf("%s: %v", name, err)
	}
	return exitCode(err)
}

// exitCode maps content problems to 2 and everything else to 1.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		perr *mdir.ParseError
		verr *mdir.ValidationError
		cerr *mdir.CursorError
	)
	if convert.IsValidation(err) || errors.As(err, &perr) || errors.As(err, &verr) || errors.As(err, &cerr) {
		return exitInvalid
	}
	return exitFailure
}

func worst(a, b int) int {
	if b > a {
		return b
	}
	return a
}

func cmdThemes(e *env, args []string) int {
	flags := e.flagSet("")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}
	names := preview.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(e.stdout, name)
	}
	return exitOK
}

func cmdVersion(e *env, args []string) int {
	flags := e.flagSet("")
	if code, ok := e.parse(flags, args); !ok {
		return code
	}
	fmt.Fprintln(e.stdout, version.Module(), version.Current())
	return exitOK
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return clampWidth(width)
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return clampWidth(width)
		}
	}
	return fallback
}

func clampWidth(width int) int {
	if width < preview.MinWidth {
		return preview.MinWidth
	}
	if width > preview.MaxWidth {
		return preview.MaxWidth
	}
	return width
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return preview.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
