package activation

import (
	"path/filepath"

	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/logging"
)

// Steps builds the activation sequence from configuration. Document folders
// are relative to documentsDir unless absolute. Steps whose configuration is
// empty are left out: no clone without a repo url, no plugin links without a
// source, no chown without a user.
func Steps(cfg config.ActivationConfig, documentsDir string) ([]Step, error) {
	var steps []Step

	if len(cfg.Documents) > 0 {
		dirs := make([]string, len(cfg.Documents))
		for i, d := range cfg.Documents {
			if filepath.IsAbs(d) {
				dirs[i] = d
			} else {
				dirs[i] = filepath.Join(documentsDir, d)
			}
		}
		steps = append(steps, &EnsureDirs{Label: "documents directories", Paths: dirs})
	}

	if cfg.Repo.URL != "" {
		steps = append(steps, &CloneRepo{URL: cfg.Repo.URL, Path: cfg.Repo.Path, Branch: cfg.Repo.Branch})
	} else {
		logger := logging.GetLogger("activation")
		logger.Info().
			Str("key", "activation.repo.url").
			Str("env", config.EnvPrefix+"ACTIVATION_REPO_URL").
			Msg("No repository url configured, skipping clone")
	}

	if cfg.Plugins.Source != "" {
		steps = append(steps, &LinkPlugins{
			Store:  cfg.Plugins.Store,
			Source: cfg.Plugins.Source,
			Target: cfg.Plugins.Target,
		})
	}

	if cfg.Owner.User != "" && len(cfg.Owner.Paths) > 0 {
		chown, err := ChownToUser(cfg.Owner.User, cfg.Owner.Paths)
		if err != nil {
			return nil, err
		}
		steps = append(steps, chown)
	}

	return steps, nil
}
