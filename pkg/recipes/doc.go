// Package recipes maps named commands to invocations of external tools, in
// the way a justfile does: `dotctl deploy` runs the lines of the deploy
// recipe through the shell with the arguments available as "$@".
//
// The exit code of the wrapped tool is passed through unchanged. Unknown
// names are reported as "no such recipe".
package recipes
