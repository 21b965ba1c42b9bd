package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yasunori/internal/export"
)

// runRender decodes the document at path and prints it as markdown, or as
// JSON in --json mode. Nothing is printed to stdout if decoding fails.
func runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	printer, settings, err := setupCommand(cmd)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, flags, settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	doc, err := loadDocument(path, flags.inputFormat)
	if err != nil {
		printer.Error(err)
		return err
	}
	warnUnknownKeys(printer, doc)

	cfg := doc.Config
	if headerFile := resolveHeaderFile(cmd, flags, settings); headerFile != "" {
		header, err := readHeaderFile(headerFile)
		if err != nil {
			printer.Error(err)
			return err
		}
		cfg = cfg.WithHeader(header)
	}

	if printer.IsJSON() {
		return export.FormatJSON(printer, cfg)
	}

	printer.Println(export.FormatDocument(cfg, opts))
	if len(cfg.Entries) == 0 {
		printer.Stderr("%s has no entries; add an [[entries]] table\n", path)
	}
	return nil
}
