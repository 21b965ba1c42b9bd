package catalog

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the canonical serialized form of a Date.
const dateLayout = "2006-01-02"

// weekdayLayout appends the three-letter English weekday name.
const weekdayLayout = "2006-01-02 Mon"

// ErrInvalidDate is returned when a date value is not a YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date with no time component.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month, and day.
// Out-of-range values are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// WithWeekday returns "YYYY-MM-DD Mon".
func (d Date) WithWeekday() string {
	return d.t.Format(weekdayLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// localDateZone is the location BurntSushi/toml assigns to a bare local
// date such as 2024-09-30. Datetimes carry a different zone.
const localDateZone = "date-local"

// RawDate is a date as written in a document, before validation. Decode
// turns it into a Date so a bad value is reported against its entry.
type RawDate struct {
	text string
	err  error
}

// Date validates the raw value.
func (r RawDate) Date() (Date, error) {
	if r.err != nil {
		return Date{}, r.err
	}
	return ParseDate(r.text)
}

// UnmarshalTOML implements toml.Unmarshaler. A TOML local date
// (date = 2024-09-30) and a quoted string (date = "2024-09-30") are kept
// for validation; any datetime is rejected, midnight included.
func (r *RawDate) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*r = RawDate{text: v}
	case time.Time:
		if v.Location().String() == localDateZone {
			*r = RawDate{text: v.Format(dateLayout)}
			return nil
		}
		*r = RawDate{err: fmt.Errorf("%w: %s is a datetime", ErrInvalidDate, v.Format(time.RFC3339))}
	default:
		*r = RawDate{err: fmt.Errorf("%w: unsupported TOML type %T", ErrInvalidDate, value)}
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Plain and quoted scalars are
// both read from their literal text.
func (r *RawDate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*r = RawDate{err: fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidDate, node.Line)}
		return nil
	}
	*r = RawDate{text: node.Value}
	return nil
}
