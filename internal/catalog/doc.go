// Package catalog holds the entry model for yasunori documents and the
// decoder that turns a parsed TOML or YAML document into it.
//
// # Raw and Canonical Models
//
// Parsing produces a [RawConfig] whose entry fields are all pointers. A nil
// pointer means the key was absent from the document. [Decode] is the only
// place that turns raw records into the canonical [Config]:
//
//	raw, unknown, err := catalog.ParseTOML(data)
//	cfg, err := catalog.Decode(raw)
//
// Optional fields (content, meta, id) fall back to their zero values.
// Required fields (title, date, at, senpan) produce a [*DecodeError] when
// absent. Entry order is preserved exactly.
//
// # Document Schema
//
//	markdown_header = "optional preamble"
//
//	[[entries]]
//	id = 1
//	title = "Hello"
//	date = 2024-09-30
//	at = "vim-jp"
//	senpan = ""
//	content = """
//	body
//	"""
//	meta = "trailing note"
//
// The table name "yasunori" is accepted in place of "entries".
//
// # Dates
//
// [Date] is a calendar date without a time component. It accepts TOML local
// dates and quoted "YYYY-MM-DD" strings, and prints as YYYY-MM-DD, or with
// [Date.WithWeekday] as "YYYY-MM-DD Mon".
package catalog
