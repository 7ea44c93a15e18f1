// Package config handles configuration management for dotctl.
//
// Configuration is assembled with koanf from three layers, later layers
// overriding earlier ones key by key:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user files: dotctl.toml / dotctl.yaml in NIX_CONFIG_DIR, then in
//     DOTFILES_DIR
//  3. DOTCTL_* environment variables (DOTCTL_ACTIVATION_REPO_URL sets
//     activation.repo.url)
//
// Lists are replaced rather than appended, so a user file that sets
// packages.common owns the whole list.
package config
