package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/yasunori/internal/catalog"
	"github.com/gorewood/yasunori/internal/config"
	"github.com/gorewood/yasunori/internal/export"
	"github.com/gorewood/yasunori/internal/output"
)

// renderFlags holds the layout flags of the root command.
type renderFlags struct {
	ids         string
	weekday     bool
	noFence     bool
	headerFile  string
	inputFormat string
}

// register adds the render flags to cmd. --config is persistent so every
// subcommand picks up the color setting.
func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ids, "ids", string(export.IDsAuto), "ID column: auto, always, or never")
	cmd.Flags().BoolVar(&f.weekday, "weekday", false, "Display dates as YYYY-MM-DD Mon")
	cmd.Flags().BoolVar(&f.noFence, "no-fence", false, "Emit entry bodies without a ```markdown fence")
	cmd.Flags().StringVar(&f.headerFile, "header-file", "", "Replace markdown_header with the contents of this file")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", "", "Input format: toml or yaml (default: from extension)")
	cmd.PersistentFlags().String("config", "", "YAML settings file with render defaults")
}

// loadSettings reads the --config file, or returns empty settings when the
// flag is unset.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return &config.Settings{}, nil
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	return settings, nil
}

// newCommandPrinter builds the printer for cmd. An explicit --color wins
// over the settings file.
func newCommandPrinter(cmd *cobra.Command, settings *config.Settings) (*output.Printer, error) {
	colorMode, _ := cmd.Flags().GetString("color")
	if !cmd.Flags().Changed("color") && settings.Color != "" {
		colorMode = settings.Color
	}

	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())

	if err := output.ValidateColorMode(colorMode); err != nil {
		return printer, output.NewUserErrorWithCause(err.Error(), err)
	}
	return printer, nil
}

// setupCommand loads settings and builds the printer, reporting any
// failure through a fallback printer.
func setupCommand(cmd *cobra.Command) (*output.Printer, *config.Settings, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).WithStderr(cmd.ErrOrStderr())
		printer.Error(err)
		return nil, nil, err
	}

	printer, err := newCommandPrinter(cmd, settings)
	if err != nil {
		printer.Error(err)
		return nil, nil, err
	}
	return printer, settings, nil
}

// resolveOptions merges settings and flags into render options.
// Flags set on the command line take precedence.
func resolveOptions(cmd *cobra.Command, flags *renderFlags, settings *config.Settings) (export.Options, error) {
	opts := export.DefaultOptions()

	idName := settings.IDs
	if cmd.Flags().Changed("ids") || idName == "" {
		idName = flags.ids
	}
	mode, err := export.ParseIDMode(idName)
	if err != nil {
		return opts, output.NewUserErrorWithCause(err.Error(), err)
	}
	opts.IDs = mode

	if settings.Weekday != nil {
		opts.Weekday = *settings.Weekday
	}
	if cmd.Flags().Changed("weekday") {
		opts.Weekday = flags.weekday
	}

	if settings.Fence != nil {
		opts.FenceContent = *settings.Fence
	}
	if cmd.Flags().Changed("no-fence") {
		opts.FenceContent = !flags.noFence
	}

	return opts, nil
}

// resolveHeaderFile picks the header file from flags or settings.
func resolveHeaderFile(cmd *cobra.Command, flags *renderFlags, settings *config.Settings) string {
	if cmd.Flags().Changed("header-file") {
		return flags.headerFile
	}
	return settings.HeaderFile
}

// loadDocument reads and decodes the input file, mapping failures to exit errors.
func loadDocument(path, formatName string) (*catalog.Document, error) {
	format, err := catalog.ParseFormat(formatName)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	doc, err := catalog.Load(path, format)
	if err != nil {
		return nil, documentError(err)
	}
	return doc, nil
}

// documentError converts a load failure into an ExitError. A document
// that does not fit the schema is the user's to fix; anything else means
// the input could not be read.
func documentError(err error) error {
	var decodeErr *catalog.DecodeError
	if catalog.AsDecodeError(err, &decodeErr) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// readHeaderFile loads a replacement markdown header.
func readHeaderFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("reading header file: %v", err), err)
	}
	return string(data), nil
}

// warnUnknownKeys reports keys the schema ignored. Human mode only, so
// JSON output stays a single value.
func warnUnknownKeys(printer *output.Printer, doc *catalog.Document) {
	if printer.IsJSON() {
		return
	}
	for _, key := range doc.Unknown {
		printer.Warn("unknown key %q ignored", key)
	}
}
