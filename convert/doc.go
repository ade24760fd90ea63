// Package convert loads and saves Markdown-backed records through a
// pluggable Storage.
//
// Failures are wrapped with go-errors: malformed Markdown and records that
// do not match their decoder carry CategoryValidation, while storage and
// render failures carry CategoryCommand. The underlying mdir error stays
// reachable with errors.As.
package convert
