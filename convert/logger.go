package convert

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the leveled logging contract used by Service. It matches the
// method set of go-logger so either can be passed in.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOp returns a Logger that drops every entry.
func NoOp() Logger { return noopLogger{} }

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// GoLogger adapts go-logger and hands out named child loggers.
type GoLogger struct {
	root *glog.BaseLogger
}

// NewGoLogger builds a go-logger backed Logger. Format is "console" (the
// default), "json" or "pretty"; level is one of trace, debug, info, warn,
// error. An empty level keeps the go-logger default.
func NewGoLogger(level, format string) (*GoLogger, error) {
	options := []glog.Option{}
	if lvl := normalizeLevel(level); lvl != "" {
		options = append(options, glog.WithLevel(lvl))
	} else if strings.TrimSpace(level) != "" {
		return nil, fmt.Errorf("logging: unsupported level %q", level)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", format)
	}
	return &GoLogger{root: glog.NewLogger(options...)}, nil
}

// Named returns a child logger for one subsystem.
func (g *GoLogger) Named(name string) Logger {
	if g == nil {
		return NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return g.root
	}
	return g.root.GetLogger(name)
}

func (g *GoLogger) Debug(msg string, args ...any) { g.root.Debug(msg, args...) }
func (g *GoLogger) Info(msg string, args ...any)  { g.root.Info(msg, args...) }
func (g *GoLogger) Warn(msg string, args ...any)  { g.root.Warn(msg, args...) }
func (g *GoLogger) Error(msg string, args ...any) { g.root.Error(msg, args...) }

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
