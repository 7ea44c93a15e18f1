// Package paths provides centralized path handling for dotctl.
//
// Two directories drive everything dotctl does:
//
//   - DOTFILES_DIR: the dotfiles checkout (default: ~/dotfiles). Holds the
//     .dotter configuration, the skills library and an optional dotctl.toml.
//   - NIX_CONFIG_DIR: the declarative configuration tree (default:
//     $XDG_CONFIG_HOME/nix-darwin). Holds module fragments under modules/ and
//     an optional dotctl.toml.
//
// State (the log file) follows the XDG Base Directory specification and lives
// under $XDG_STATE_HOME/dotctl.
//
// # Usage
//
//	p, err := paths.New(paths.Options{})
//	if err != nil {
//	    return err
//	}
//	fragments := p.ModulesDir()
package paths
