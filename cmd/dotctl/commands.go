package dotctl

import (
	"fmt"
	"runtime"

	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/modules"
	"github.com/arthur-debert/dotctl/pkg/packages"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/spf13/cobra"
)

func newPackagesCmd(a *app) *cobra.Command {
	var format, platform, target string

	cmd := &cobra.Command{
		Use:     "packages",
		Short:   MsgPackagesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Example: `  dotctl packages
  dotctl packages --target user
  dotctl packages --platform linux --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			plat := packages.Platform(platform)
			if platform == "" {
				p, err := packages.PlatformFromGOOS(runtime.GOOS)
				if err != nil {
					return fmt.Errorf(MsgErrCompose, err)
				}
				plat = p
			}

			c, err := packages.Compose(catalogFrom(a.cfg.Packages), sourcesFrom(a.cfg.Packages), plat)
			if err != nil {
				return fmt.Errorf(MsgErrCompose, err)
			}

			out, err := renderPackages(c, format, packages.Target(target))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "nix", MsgFlagPkgFormat)
	cmd.Flags().StringVar(&platform, "platform", "", MsgFlagPlatform)
	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	return cmd
}

// renderPackages renders the whole composition, or a single list when
// target is set
func renderPackages(c packages.Composition, format string, target packages.Target) ([]byte, error) {
	switch target {
	case "":
		return packages.Render(c, format)
	case packages.TargetSystem, packages.TargetUser:
	default:
		return nil, errors.Newf(errors.ErrPackageTarget, "unknown target: %s", target)
	}

	if format == "" || format == "nix" {
		return []byte(packages.RenderNix(c.For(target))), nil
	}
	only := packages.Composition{Platform: c.Platform}
	if target == packages.TargetUser {
		only.User = c.User
	} else {
		only.System = c.System
	}
	return packages.Render(only, format)
}

func catalogFrom(cfg config.PackagesConfig) packages.Catalog {
	return packages.Catalog{
		Common:  cfg.Common,
		Darwin:  cfg.Darwin,
		Linux:   cfg.Linux,
		Home:    cfg.Home,
		Exclude: cfg.Exclude,
	}
}

func sourcesFrom(cfg config.PackagesConfig) []packages.Source {
	sources := make([]packages.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		sources = append(sources, packages.Source{
			Name:     s.Name,
			Target:   packages.Target(s.Target),
			Packages: s.Packages,
		})
	}
	return sources
}

func newModulesCmd(a *app) *cobra.Command {
	var format, plistKey, explain string

	cmd := &cobra.Command{
		Use:     "modules",
		Short:   MsgModulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Example: `  dotctl modules
  dotctl modules --format json
  dotctl modules --plist system.defaults.dock
  dotctl modules --explain shell.editor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			fragments, err := modules.LoadFragments(a.cfg.Modules.Dir, a.cfg.Modules.Order)
			if err != nil {
				return fmt.Errorf(MsgErrLoadModules, err)
			}
			tree, err := modules.Aggregate(fragments...)
			if err != nil {
				return fmt.Errorf(MsgErrLoadModules, err)
			}

			out := cmd.OutOrStdout()
			switch {
			case explain != "":
				p := newPrinter(out, ui.FormatAuto)
				writers := tree.Provenance(explain)
				if len(writers) == 0 {
					p.Warning(fmt.Sprintf(MsgExplainNone, explain))
					return nil
				}
				p.Heading(fmt.Sprintf(MsgExplainHeader, explain))
				owner := tree.Owner(explain)
				for _, name := range writers {
					if name == owner {
						p.Success(name)
					} else {
						p.Muted("  " + name)
					}
				}
				return nil
			case plistKey != "":
				data, err := tree.Plist(plistKey)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			default:
				data, err := tree.Marshal(format)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagModFormat)
	cmd.Flags().StringVar(&plistKey, "plist", "", MsgFlagPlist)
	cmd.Flags().StringVar(&explain, "explain", "", MsgFlagExplain)
	cmd.MarkFlagsMutuallyExclusive("plist", "explain")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			out, err := a.cfg.Dump(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", MsgFlagCfgFormat)
	return cmd
}
