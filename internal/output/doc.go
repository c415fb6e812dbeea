// Package output provides structured output handling for the authorloc CLI.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// between JSON and human-readable output and disables styling when the
// destination is not a terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.WithStderr(cmd.ErrOrStderr())
//
//	printer.Stderr("Processing %s...\n", path) // progress, human mode only
//	printer.Warn("skipping %s: %v", path, err) // warnings, human mode only
//	printer.WriteJSON(doc)                     // structured output
//	printer.Error(err)                         // {"error": ..., "code": N} in JSON mode
//
// # Numbers
//
// NumberFormatter groups digits per locale using golang.org/x/text:
//
//	nf, _ := output.NewNumberFormatter("en")
//	nf.Int(1234567)      // "1,234,567"
//	output.Percent(75)   // "75.0%"
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags)
//	output.ExitSystemError // 2: System error (git failed, undecodable output)
//
// Errors built with NewUserError, NewSystemError and NewSystemErrorWithCause
// carry these codes; GetExitCode recovers them through any wrapping.
package output
