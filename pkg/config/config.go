package config

import "github.com/knadh/koanf/v2"

// Config is the fully merged dotctl configuration
type Config struct {
	Packages   PackagesConfig          `koanf:"packages"`
	Modules    ModulesConfig           `koanf:"modules"`
	Activation ActivationConfig        `koanf:"activation"`
	Recipes    map[string]RecipeConfig `koanf:"recipes"`
	Validate   ValidateConfig          `koanf:"validate"`
	Skills     SkillsConfig            `koanf:"skills"`

	// Files lists the user configuration files that were loaded, in order
	Files []string `koanf:"-"`

	k *koanf.Koanf
}

// PackagesConfig is the base package catalog plus externally supplied sources
type PackagesConfig struct {
	Common  []string       `koanf:"common"`
	Darwin  []string       `koanf:"darwin"`
	Linux   []string       `koanf:"linux"`
	Home    []string       `koanf:"home"`
	Exclude []string       `koanf:"exclude"`
	Sources []SourceConfig `koanf:"sources"`
}

// SourceConfig is an external package source such as a flake input
type SourceConfig struct {
	Name     string   `koanf:"name"`
	Target   string   `koanf:"target"`
	Packages []string `koanf:"packages"`
}

// ModulesConfig locates module fragments and fixes their overlay order
type ModulesConfig struct {
	Dir   string   `koanf:"dir"`
	Order []string `koanf:"order"`
}

// ActivationConfig drives the activation sequence
type ActivationConfig struct {
	Documents []string      `koanf:"documents"`
	Repo      RepoConfig    `koanf:"repo"`
	Plugins   PluginsConfig `koanf:"plugins"`
	Owner     OwnerConfig   `koanf:"owner"`
}

// RepoConfig describes the dotfiles repository to clone when absent.
// An empty URL disables the clone step.
type RepoConfig struct {
	URL    string `koanf:"url"`
	Path   string `koanf:"path"`
	Branch string `koanf:"branch"`
}

// PluginsConfig describes plugin binaries to link out of the managed store.
// An empty Source disables the step.
type PluginsConfig struct {
	Store  string `koanf:"store"`
	Source string `koanf:"source"`
	Target string `koanf:"target"`
}

// OwnerConfig hands paths to a user after activation. An empty User disables it.
type OwnerConfig struct {
	User  string   `koanf:"user"`
	Paths []string `koanf:"paths"`
}

// RecipeConfig is one named CLI recipe
type RecipeConfig struct {
	Description string            `koanf:"description"`
	Run         []string          `koanf:"run"`
	Aliases     []string          `koanf:"aliases"`
	Dir         string            `koanf:"dir"`
	Env         map[string]string `koanf:"env"`
}

// ValidateConfig tunes the dotfiles validator
type ValidateConfig struct {
	// Configs are dotter config files under .dotter/ whose [*.files] tables are checked
	Configs []string `koanf:"configs"`
	// JSONC lists path fragments of JSON files that allow comments
	JSONC []string `koanf:"jsonc"`
}

// SkillsConfig locates the skill-document library
type SkillsConfig struct {
	Dir string `koanf:"dir"`
}
