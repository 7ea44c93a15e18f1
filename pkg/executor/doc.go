// Package executor runs external tools on behalf of dotctl.
//
// Every collaborator dotctl wraps (git, nix, darwin-rebuild, dotter,
// shellcheck, hyperfine) is reached through the types.Commander interface
// implemented here. The exit code of the wrapped tool is returned unchanged
// so callers can pass it through to the shell; an error is only returned
// when the tool could not be started at all.
package executor
