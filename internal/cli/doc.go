// Package cli parses command-line arguments for the converter, validating
// user input and handling process-level concerns like exit codes. It
// translates CLI flags into an app.Config.
package cli
