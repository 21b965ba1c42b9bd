package export

import (
	"github.com/gorewood/yasunori/internal/anchor"
	"github.com/gorewood/yasunori/internal/catalog"
	"github.com/gorewood/yasunori/internal/output"
)

// JSONDocument is the JSON view of a config.
type JSONDocument struct {
	MarkdownHeader string      `json:"markdown_header"`
	Entries        []JSONEntry `json:"entries"`
}

// JSONEntry is an entry with its computed anchor.
type JSONEntry struct {
	catalog.Entry
	Anchor string `json:"anchor"`
}

// FormatJSON writes the canonical model, with each entry's anchor, to the printer.
func FormatJSON(printer *output.Printer, cfg *catalog.Config) error {
	return printer.WriteJSON(ToJSON(cfg))
}

// ToJSON builds the JSON view of a config.
func ToJSON(cfg *catalog.Config) JSONDocument {
	doc := JSONDocument{
		MarkdownHeader: cfg.MarkdownHeader,
		Entries:        make([]JSONEntry, 0, len(cfg.Entries)),
	}
	for _, entry := range cfg.Entries {
		doc.Entries = append(doc.Entries, JSONEntry{
			Entry:  entry,
			Anchor: anchor.Slug(entry.Title, entry.Date),
		})
	}
	return doc
}
