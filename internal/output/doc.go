// Package output renders command results and errors for the readmegen CLI.
//
// Every command writes through a Printer. In JSON mode (--json) results are
// single JSON documents on stdout and errors are {"error": "...", "code": N}.
// In human mode results are styled with lipgloss when the writer is a
// terminal, and errors and warnings go to the error writer.
//
// Errors that should end the process carry an exit code via ExitError:
//
//	0  success
//	1  user error (bad flags, unreadable profile, unknown format)
//	2  system error (I/O, git, clipboard)
//	3  conflict (existing file, README drift)
package output
