package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors wrapped by DecodeError.
var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrConflictingKeys = errors.New("both \"entries\" and \"yasunori\" are defined")
)

// DecodeError reports a document that does not fit the entry schema.
type DecodeError struct {
	// Index is the zero-based entry index, or -1 for document-level errors.
	Index int
	// Field names the offending key, if known.
	Field string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var builder strings.Builder
	builder.WriteString("unable to parse document")
	if e.Index >= 0 {
		fmt.Fprintf(&builder, ": entry %d", e.Index+1)
	}
	if e.Field != "" {
		fmt.Fprintf(&builder, ": %q", e.Field)
	}
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError checks if err is a DecodeError and extracts it.
func AsDecodeError(err error, target **DecodeError) bool {
	return errors.As(err, target)
}

// ParseTOML decodes TOML text into a RawConfig. The second return value
// lists keys present in the document that the schema does not know.
func ParseTOML(data []byte) (*RawConfig, []string, error) {
	var raw RawConfig
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, nil, &DecodeError{Index: -1, Err: err}
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return &raw, unknown, nil
}

// ParseYAML decodes a YAML document into a RawConfig.
func ParseYAML(data []byte) (*RawConfig, error) {
	var raw RawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &raw, nil
		}
		return nil, &DecodeError{Index: -1, Err: err}
	}
	return &raw, nil
}

// Decode normalizes a raw document into the canonical Config.
// Absent optional fields become empty strings (or id 0); absent required
// fields are reported as a DecodeError wrapping ErrMissingField.
func Decode(raw *RawConfig) (*Config, error) {
	rawEntries, err := selectEntries(raw)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		MarkdownHeader: valueOr(raw.MarkdownHeader, ""),
		Entries:        make([]Entry, 0, len(rawEntries)),
	}
	for i := range rawEntries {
		entry, err := decodeEntry(i, &rawEntries[i])
		if err != nil {
			return nil, err
		}
		cfg.Entries = append(cfg.Entries, entry)
	}
	return cfg, nil
}

// selectEntries picks the entry list from either table name.
func selectEntries(raw *RawConfig) ([]RawEntry, error) {
	if raw.Entries != nil && raw.Yasunori != nil {
		return nil, &DecodeError{Index: -1, Err: ErrConflictingKeys}
	}
	if raw.Yasunori != nil {
		return raw.Yasunori, nil
	}
	return raw.Entries, nil
}

// decodeEntry applies defaults to one raw entry.
func decodeEntry(index int, raw *RawEntry) (Entry, error) {
	if field := missingField(raw); field != "" {
		return Entry{}, &DecodeError{Index: index, Field: field, Err: ErrMissingField}
	}

	var id int64
	if raw.ID != nil {
		if *raw.ID <= 0 {
			return Entry{}, &DecodeError{Index: index, Field: "id", Err: ErrInvalidID}
		}
		id = *raw.ID
	}

	date, err := raw.Date.Date()
	if err != nil {
		return Entry{}, &DecodeError{Index: index, Field: "date", Err: err}
	}

	return Entry{
		ID:      id,
		Title:   *raw.Title,
		Date:    date,
		Content: valueOr(raw.Content, ""),
		Meta:    valueOr(raw.Meta, ""),
		At:      *raw.At,
		Senpan:  *raw.Senpan,
	}, nil
}

// missingField returns the first absent required field, or "".
func missingField(raw *RawEntry) string {
	switch {
	case raw.Title == nil:
		return "title"
	case raw.Date == nil:
		return "date"
	case raw.At == nil:
		return "at"
	case raw.Senpan == nil:
		return "senpan"
	default:
		return ""
	}
}

// valueOr dereferences ptr, or returns fallback when ptr is nil.
func valueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
