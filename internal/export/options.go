package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/yasunori/internal/catalog"
)

// IDMode controls the leading id column of the summary table.
type IDMode string

// ID column modes.
const (
	// IDsAuto shows the id column when every entry carries an id.
	IDsAuto   IDMode = "auto"
	IDsAlways IDMode = "always"
	IDsNever  IDMode = "never"
)

// ParseIDMode validates an id mode name. An empty name means IDsAuto.
func ParseIDMode(name string) (IDMode, error) {
	switch IDMode(strings.ToLower(name)) {
	case "", IDsAuto:
		return IDsAuto, nil
	case IDsAlways:
		return IDsAlways, nil
	case IDsNever:
		return IDsNever, nil
	default:
		return "", fmt.Errorf("invalid id mode %q (want auto, always, or never)", name)
	}
}

// Options selects between the document layouts.
type Options struct {
	IDs IDMode
	// Weekday renders displayed dates as "YYYY-MM-DD Mon". Anchors always
	// use the plain date.
	Weekday bool
	// FenceContent wraps each entry body in a ```markdown block.
	FenceContent bool
}

// DefaultOptions returns the standard layout: ids when available, plain
// dates, fenced bodies.
func DefaultOptions() Options {
	return Options{
		IDs:          IDsAuto,
		FenceContent: true,
	}
}

// showIDs resolves the id mode against a config.
func (o Options) showIDs(cfg *catalog.Config) bool {
	switch o.IDs {
	case IDsAlways:
		return true
	case IDsNever:
		return false
	default:
		return cfg.AllHaveIDs()
	}
}

// FormatDate renders a date for display in the table and headings.
func FormatDate(date catalog.Date, opts Options) string {
	if opts.Weekday {
		return date.WithWeekday()
	}
	return date.String()
}
