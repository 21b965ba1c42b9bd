package export

import (
	"fmt"
	"strings"

	"github.com/gorewood/yasunori/internal/anchor"
	"github.com/gorewood/yasunori/internal/catalog"
)

// tableHeaderWithID is the summary table header including the id column.
const tableHeaderWithID = `
| id | date           | senpan            | place                  | title                                                        |
|----|----------------|-------------------|------------------------|--------------------------------------------------------------|
`

// tableHeader is the summary table header without the id column.
const tableHeader = `
| date           | senpan            | place                  | title                                                        |
|----------------|-------------------|------------------------|--------------------------------------------------------------|
`

// contentsHeading separates the table from the entry sections.
const contentsHeading = "\n## Contents\n\n"

// FormatDocument assembles the full markdown document: the configured
// header, the summary table, and every entry section.
func FormatDocument(cfg *catalog.Config, opts Options) string {
	var builder strings.Builder

	builder.WriteString(cfg.MarkdownHeader)
	builder.WriteString(FormatTable(cfg, opts))
	builder.WriteString(contentsHeading)
	builder.WriteString(FormatSections(cfg, opts))
	builder.WriteString("\n")

	return builder.String()
}

// FormatTable renders the summary table, one row per entry in list order.
// Cells are written as stored; nothing is escaped or padded.
func FormatTable(cfg *catalog.Config, opts Options) string {
	var builder strings.Builder

	withIDs := opts.showIDs(cfg)
	if withIDs {
		builder.WriteString(tableHeaderWithID)
	} else {
		builder.WriteString(tableHeader)
	}

	for i := range cfg.Entries {
		writeRow(&builder, &cfg.Entries[i], withIDs, opts)
	}

	return builder.String()
}

// writeRow writes a single table row.
func writeRow(builder *strings.Builder, entry *catalog.Entry, withID bool, opts Options) {
	if withID {
		builder.WriteString("| ")
		builder.WriteString(idCell(entry))
		builder.WriteString(" ")
	}
	fmt.Fprintf(builder, "| %s | %s | %s | %s |\n",
		FormatDate(entry.Date, opts),
		entry.Senpan,
		entry.At,
		entry.Title)
}

// idCell links the entry id to its section anchor. Entries without an id
// get an empty cell.
func idCell(entry *catalog.Entry) string {
	if !entry.HasID() {
		return ""
	}
	return fmt.Sprintf("[%d](%s)", entry.ID, anchor.Slug(entry.Title, entry.Date))
}

// FormatSections renders every entry section in list order, separated by
// a blank line.
func FormatSections(cfg *catalog.Config, opts Options) string {
	sections := make([]string, 0, len(cfg.Entries))
	for i := range cfg.Entries {
		sections = append(sections, FormatSection(&cfg.Entries[i], opts))
	}
	return strings.Join(sections, "\n")
}

// FormatSection renders one entry: heading, venue line, body, and meta.
// Content and meta are copied byte for byte.
func FormatSection(entry *catalog.Entry, opts Options) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\n### %s (%s)\n\n", entry.Title, FormatDate(entry.Date, opts))
	fmt.Fprintf(&builder, "%s by %s\n\n", entry.At, entry.Senpan)

	if opts.FenceContent {
		builder.WriteString("```markdown\n")
		builder.WriteString(entry.Content)
		builder.WriteString("```\n\n")
	} else {
		builder.WriteString(entry.Content)
		builder.WriteString("\n\n")
	}

	builder.WriteString(entry.Meta)

	return builder.String()
}
