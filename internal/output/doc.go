// Package output provides structured output handling for the tweetbook CLI.
//
// Every command can print either human-readable text or JSON. JSON mode is
// selected with the global --json flag and is meant for scripts and agents.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.UseColor(colorFlag, cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "Converted 5 posts into 2 documents"})
//	printer.Table([]string{"Year", "Posts"}, rows)
//	printer.Warn("skipping %v", err)
//	printer.Error(err)
//
// Warnings always go to the error writer, so stdout carries only the
// command result. In JSON mode errors are written to stdout as
// {"error": "message", "code": N}.
//
// Printer.Warn has the signature expected by post.Warner and receives the
// records dropped under the skip policy.
//
// # Styling
//
// Human output is styled with lipgloss. Styles are cleared when the output is
// not a terminal, when --color never is given, or when NO_COLOR is set in
// auto mode.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: bad arguments, missing or invalid configuration
//	output.ExitSystemError // 2: output directory or document could not be written
//	output.ExitDataError   // 3: malformed export, invalid record
//
// The constructors NewUserError, NewSystemErrorWithCause and
// NewDataErrorWithCause build ExitError values that carry these codes.
package output
