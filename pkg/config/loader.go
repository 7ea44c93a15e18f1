package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "DOTCTL_"

// Load assembles the configuration from defaults, user files and environment
func Load(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User files, in order
	var loaded []string
	for _, path := range p.ConfigFiles() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		loaded = append(loaded, path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Files = loaded
	cfg.k = k

	// 5. Post-process
	if err := postProcess(&cfg, p); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("files", loaded).
		Int("recipes", len(cfg.Recipes)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format: %s", path)
	}
}

// postProcess fills path defaults and expands ~ in every path-valued key
func postProcess(cfg *Config, p paths.Paths) error {
	if cfg.Modules.Dir == "" {
		cfg.Modules.Dir = p.ModulesDir()
	}
	cfg.Modules.Dir = p.Expand(cfg.Modules.Dir)

	if cfg.Skills.Dir == "" {
		cfg.Skills.Dir = p.SkillsDir()
	}
	cfg.Skills.Dir = p.Expand(cfg.Skills.Dir)

	if cfg.Activation.Repo.Path == "" {
		cfg.Activation.Repo.Path = p.DotfilesDir()
	}
	cfg.Activation.Repo.Path = p.Expand(cfg.Activation.Repo.Path)

	cfg.Activation.Plugins.Store = p.Expand(cfg.Activation.Plugins.Store)
	cfg.Activation.Plugins.Source = p.Expand(cfg.Activation.Plugins.Source)
	cfg.Activation.Plugins.Target = p.Expand(cfg.Activation.Plugins.Target)

	for i, path := range cfg.Activation.Owner.Paths {
		cfg.Activation.Owner.Paths[i] = p.Expand(path)
	}

	for _, source := range cfg.Packages.Sources {
		if source.Name == "" {
			return errors.New(errors.ErrConfigValid, "package source without a name")
		}
	}

	return validateRecipes(cfg.Recipes)
}

// validateRecipes rejects recipes without commands and aliases that shadow
// another recipe or alias
func validateRecipes(recipes map[string]RecipeConfig) error {
	seen := make(map[string]string)
	for name := range recipes {
		seen[name] = name
	}
	for name, r := range recipes {
		if len(r.Run) == 0 {
			return errors.Newf(errors.ErrConfigValid, "recipe %q has no commands", name)
		}
		for _, alias := range r.Aliases {
			if owner, ok := seen[alias]; ok && owner != name {
				return errors.Newf(errors.ErrConfigValid,
					"alias %q of recipe %q collides with %q", alias, name, owner)
			}
			seen[alias] = name
		}
	}
	return nil
}

// Dump renders the merged configuration in the given format (toml or yaml)
func (c *Config) Dump(format string) ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	var parser koanf.Parser
	switch format {
	case "", "toml":
		parser = toml.Parser()
	case "yaml", "yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format: %s", format)
	}
	out, err := c.k.Marshal(parser)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to render configuration")
	}
	return out, nil
}
