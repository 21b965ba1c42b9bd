package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/yasunori/internal/output"
)

// newCheckCmd creates the check command, which decodes a document without
// rendering it.
func newCheckCmd() *cobra.Command {
	var (
		inputFormat string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a document without rendering it",
		Long: `Decode a document and report whether every entry has the required fields.

Exits 0 when the document is valid, 1 when an entry is malformed, and 2 when
the file cannot be read. Unknown keys are reported as warnings, or as an
error with --strict.`,
		Example: `  yasunori check yasunori.toml
  yasunori check --json entries.yaml
  yasunori check --strict yasunori.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], inputFormat, strict)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input format: toml or yaml (default: from extension)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unknown keys as an error")

	return cmd
}

func runCheck(cmd *cobra.Command, path, inputFormat string, strict bool) error {
	printer, _, err := setupCommand(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(path, inputFormat)
	if err != nil {
		printer.Error(err)
		return err
	}

	if strict && len(doc.Unknown) > 0 {
		err = output.NewUserError(fmt.Sprintf("%s: unknown keys: %s", path, strings.Join(doc.Unknown, ", ")))
		printer.Error(err)
		return err
	}

	withIDs := 0
	for i := range doc.Config.Entries {
		if doc.Config.Entries[i].HasID() {
			withIDs++
		}
	}

	if printer.IsJSON() {
		unknown := doc.Unknown
		if unknown == nil {
			unknown = []string{}
		}
		return printer.WriteJSON(map[string]any{
			"path":     doc.Path,
			"entries":  len(doc.Config.Entries),
			"with_ids": withIDs,
			"unknown":  unknown,
			"valid":    true,
		})
	}

	warnUnknownKeys(printer, doc)
	printer.KeyValue("File", doc.Path)
	printer.KeyValue("Entries", strconv.Itoa(len(doc.Config.Entries)))
	printer.KeyValue("With IDs", strconv.Itoa(withIDs))
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("%d entries OK", len(doc.Config.Entries)),
	})
}
