package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yasunori/internal/anchor"
	"github.com/gorewood/yasunori/internal/catalog"
	"github.com/gorewood/yasunori/internal/output"
)

// newSlugCmd creates the slug command, which prints the anchor for a title and date.
func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug TITLE DATE",
		Short: "Print the section anchor for a title and date",
		Long: `Print the anchor the summary table uses to link to an entry's section.

Punctuation is stripped from the title, spaces become hyphens, and the result
is lowercased and suffixed with the date.`,
		Example: `  yasunori slug "Hello World!" 2024-09-30
  # #hello-world-2024-09-30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlug(cmd, args[0], args[1])
		},
	}
}

func runSlug(cmd *cobra.Command, title, dateText string) error {
	printer, _, err := setupCommand(cmd)
	if err != nil {
		return err
	}

	date, err := catalog.ParseDate(dateText)
	if err != nil {
		err = output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(err)
		return err
	}

	slug := anchor.Slug(title, date)
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"anchor": slug})
	}
	printer.Println(slug)
	return nil
}
