package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/yasunori/internal/anchor"
	"github.com/gorewood/yasunori/internal/catalog"
	"github.com/gorewood/yasunori/internal/export"
)

// parseDocument decodes an inline document.
func parseDocument(document, formatName string) (*catalog.Document, error) {
	if document == "" {
		return nil, errors.New("document is required")
	}
	format, err := catalog.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	return catalog.Parse([]byte(document), format)
}

// --- Render tool ---

// RenderInput is the input for the render_document tool.
type RenderInput struct {
	Document string `json:"document"          jsonschema:"document text (TOML or YAML)"`
	Format   string `json:"format,omitempty"  jsonschema:"toml (default) or yaml"`
	IDs      string `json:"ids,omitempty"     jsonschema:"id column: auto (default), always, or never"`
	Weekday  bool   `json:"weekday,omitempty" jsonschema:"display dates with a weekday suffix"`
	Fence    *bool  `json:"fence,omitempty"   jsonschema:"wrap entry bodies in a markdown code fence (default true)"`
}

// RenderOutput is the output for the render_document tool.
type RenderOutput struct {
	Markdown string   `json:"markdown"          jsonschema:"rendered markdown document"`
	Entries  int      `json:"entries"           jsonschema:"number of entries rendered"`
	Unknown  []string `json:"unknown,omitempty" jsonschema:"keys the schema did not recognize"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
	doc, err := parseDocument(input.Document, input.Format)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	opts := export.DefaultOptions()
	if opts.IDs, err = export.ParseIDMode(input.IDs); err != nil {
		return nil, RenderOutput{}, err
	}
	opts.Weekday = input.Weekday
	if input.Fence != nil {
		opts.FenceContent = *input.Fence
	}

	return nil, RenderOutput{
		Markdown: export.FormatDocument(doc.Config, opts),
		Entries:  len(doc.Config.Entries),
		Unknown:  doc.Unknown,
	}, nil
}

// --- Decode tool ---

// DecodeInput is the input for the decode_document tool.
type DecodeInput struct {
	Document string `json:"document"         jsonschema:"document text (TOML or YAML)"`
	Format   string `json:"format,omitempty" jsonschema:"toml (default) or yaml"`
}

// DecodedEntry is a normalized entry in tool output.
type DecodedEntry struct {
	ID      int64  `json:"id,omitempty" jsonschema:"entry id, omitted when absent"`
	Title   string `json:"title"        jsonschema:"entry title"`
	Date    string `json:"date"         jsonschema:"YYYY-MM-DD date"`
	Anchor  string `json:"anchor"       jsonschema:"in-document anchor link"`
	At      string `json:"at"           jsonschema:"venue"`
	Senpan  string `json:"senpan"       jsonschema:"attribution"`
	Content string `json:"content"      jsonschema:"entry body"`
	Meta    string `json:"meta"         jsonschema:"trailing annotation"`
}

// DecodeOutput is the output for the decode_document tool.
type DecodeOutput struct {
	MarkdownHeader string         `json:"markdown_header"   jsonschema:"document preamble"`
	Entries        []DecodedEntry `json:"entries"           jsonschema:"entries in document order"`
	Unknown        []string       `json:"unknown,omitempty" jsonschema:"keys the schema did not recognize"`
}

func handleDecode(_ context.Context, _ *mcp.CallToolRequest, input DecodeInput) (*mcp.CallToolResult, DecodeOutput, error) {
	doc, err := parseDocument(input.Document, input.Format)
	if err != nil {
		return nil, DecodeOutput{}, err
	}

	out := DecodeOutput{
		MarkdownHeader: doc.Config.MarkdownHeader,
		Entries:        make([]DecodedEntry, 0, len(doc.Config.Entries)),
		Unknown:        doc.Unknown,
	}
	for _, entry := range doc.Config.Entries {
		out.Entries = append(out.Entries, DecodedEntry{
			ID:      entry.ID,
			Title:   entry.Title,
			Date:    entry.Date.String(),
			Anchor:  anchor.Slug(entry.Title, entry.Date),
			At:      entry.At,
			Senpan:  entry.Senpan,
			Content: entry.Content,
			Meta:    entry.Meta,
		})
	}
	return nil, out, nil
}

// --- Slug tool ---

// SlugInput is the input for the slug tool.
type SlugInput struct {
	Title string `json:"title" jsonschema:"entry title"`
	Date  string `json:"date"  jsonschema:"YYYY-MM-DD date"`
}

// SlugOutput is the output for the slug tool.
type SlugOutput struct {
	Anchor string `json:"anchor" jsonschema:"anchor link including the leading #"`
}

func handleSlug(_ context.Context, _ *mcp.CallToolRequest, input SlugInput) (*mcp.CallToolResult, SlugOutput, error) {
	date, err := catalog.ParseDate(input.Date)
	if err != nil {
		return nil, SlugOutput{}, fmt.Errorf("parsing date: %w", err)
	}
	return nil, SlugOutput{Anchor: anchor.Slug(input.Title, date)}, nil
}
