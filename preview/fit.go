package preview

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return ellipsis
	}
	return truncate.StringWithTail(text, uint(limit), ellipsis)
}

// fitPath shortens a link or path to limit cells, dropping the scheme
// before truncating.
func fitPath(target string, limit int) string {
	if ansi.PrintableRuneWidth(target) <= limit {
		return target
	}
	if idx := strings.Index(target, "://"); idx != -1 {
		trimmed := target[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
		target = trimmed
	}
	return truncateWithEllipsis(target, limit)
}

// fitCell truncates text to width cells and pads it on the right to exactly
// width cells.
func fitCell(text string, width int) string {
	return padding.String(truncateWithEllipsis(text, width), uint(width))
}
