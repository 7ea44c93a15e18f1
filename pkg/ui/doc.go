// Package ui renders human-facing terminal output.
//
// Styles have semantic names (success, error, warning, info, heading, muted,
// path, command) and adaptive light/dark colours, defined in the embedded
// styles.yaml. A Printer binds the styles to one output stream: when that
// stream is not a colour terminal, or NO_COLOR is set, everything renders as
// plain text with the same symbols and layout.
package ui
