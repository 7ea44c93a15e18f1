package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotctl/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesDir locates the dotfiles checkout
	EnvDotfilesDir = "DOTFILES_DIR"

	// EnvConfigDir locates the declarative configuration tree
	EnvConfigDir = "NIX_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directory and file names. These are not user-configurable.
const (
	DefaultDotfilesDir = "dotfiles"
	DefaultConfigDir   = "nix-darwin"
	AppDirName         = "dotctl"
	ConfigFileName     = "dotctl.toml"
	ConfigFileNameYAML = "dotctl.yaml"
	ModulesDirName     = "modules"
	SkillsDirName      = "skills"
	DotterDirName      = ".dotter"
	DocumentsDirName   = "Documents"
	LogFileName        = "dotctl.log"
)

// Paths provides centralized path management for dotctl
type Paths interface {
	HomeDir() string
	DotfilesDir() string
	ConfigDir() string
	StateDir() string
	LogFilePath() string
	ModulesDir() string
	SkillsDir() string
	DotterDir() string
	DocumentsDir() string
	ConfigFiles() []string
	Expand(path string) string
}

// Options overrides the environment when resolving paths. Empty fields fall
// back to environment variables and then to defaults.
type Options struct {
	HomeDir     string
	DotfilesDir string
	ConfigDir   string
}

type paths struct {
	home        string
	dotfilesDir string
	configDir   string
	stateDir    string
}

// New resolves all dotctl paths
func New(opts Options) (Paths, error) {
	p := &paths{}

	home := opts.HomeDir
	if home == "" {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
		}
		home = h
	}
	p.home = home

	dotfiles := firstNonEmpty(opts.DotfilesDir, os.Getenv(EnvDotfilesDir), filepath.Join(home, DefaultDotfilesDir))
	abs, err := filepath.Abs(p.Expand(dotfiles))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", dotfiles)
	}
	p.dotfilesDir = abs

	configHome := firstNonEmpty(os.Getenv("XDG_CONFIG_HOME"), xdg.ConfigHome, filepath.Join(home, ".config"))
	config := firstNonEmpty(opts.ConfigDir, os.Getenv(EnvConfigDir), filepath.Join(configHome, DefaultConfigDir))
	abs, err = filepath.Abs(p.Expand(config))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", config)
	}
	p.configDir = abs

	// xdg has no per-test reload, so honour the variable directly first
	stateHome := firstNonEmpty(os.Getenv("XDG_STATE_HOME"), xdg.StateHome, filepath.Join(home, ".local", "state"))
	p.stateDir = filepath.Join(stateHome, AppDirName)

	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Expand expands a leading ~ to the home directory
func (p *paths) Expand(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return p.home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(p.home, path[2:])
	}
	// ~user is left alone
	return path
}

func (p *paths) HomeDir() string     { return p.home }
func (p *paths) DotfilesDir() string { return p.dotfilesDir }
func (p *paths) ConfigDir() string   { return p.configDir }
func (p *paths) StateDir() string    { return p.stateDir }

// LogFilePath returns the path of the append-only log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ModulesDir is where module fragments live inside the configuration tree
func (p *paths) ModulesDir() string {
	return filepath.Join(p.configDir, ModulesDirName)
}

// SkillsDir is the skill-document library inside the dotfiles checkout
func (p *paths) SkillsDir() string {
	return filepath.Join(p.dotfilesDir, SkillsDirName)
}

// DotterDir holds dotter's global.toml and per-platform overrides
func (p *paths) DotterDir() string {
	return filepath.Join(p.dotfilesDir, DotterDirName)
}

func (p *paths) DocumentsDir() string {
	return filepath.Join(p.home, DocumentsDirName)
}

// ConfigFiles lists candidate user configuration files in load order.
// Later files override earlier ones.
func (p *paths) ConfigFiles() []string {
	return []string{
		filepath.Join(p.configDir, ConfigFileName),
		filepath.Join(p.configDir, ConfigFileNameYAML),
		filepath.Join(p.dotfilesDir, ConfigFileName),
		filepath.Join(p.dotfilesDir, ConfigFileNameYAML),
	}
}
