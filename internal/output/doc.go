// Package output provides structured output handling for the yasunori CLI.
//
// # Printer
//
// The Printer switches between human-readable and JSON output based on the
// --json flag, and styles human output with lipgloss when writing to a TTY:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Println(document)          // rendered markdown
//	printer.WriteJSON(view)            // structured output
//	printer.Warn("unknown key %q", k)  // styled warning on stderr
//	printer.Error(err)                 // styled error, or {"error": ..., "code": N}
//
// Colors are dropped for non-TTY writers; --color never|always overrides
// detection through ResolveColorMode.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad arguments, document does not decode
//	output.ExitSystemError // 2: Input file cannot be read
//
// Commands return *ExitError values built with NewUserError,
// NewUserErrorWithCause, NewSystemError, or NewSystemErrorWithCause;
// GetExitCode turns any error into the process exit status.
package output
