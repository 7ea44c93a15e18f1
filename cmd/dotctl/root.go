package dotctl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dotctl/internal/version"
	"github.com/arthur-debert/dotctl/pkg/config"
	"github.com/arthur-debert/dotctl/pkg/executor"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/recipes"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries the exit status of a wrapped tool out of a command.
// It is never printed: the tool already reported its own failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error returned by the root command to a process status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if stderrors.As(err, &exit) {
		return exit.Code
	}
	return 1
}

// Silent reports whether err should exit without printing
func Silent(err error) bool {
	var exit *ExitError
	return stderrors.As(err, &exit)
}

// app holds the global flags and the lazily loaded configuration shared by
// every subcommand
type app struct {
	verbosity int
	dryRun    bool

	paths paths.Paths
	cfg   *config.Config
}

// load resolves paths and configuration once per invocation
func (a *app) load() error {
	if a.cfg != nil {
		return nil
	}
	p, err := paths.New(paths.Options{})
	if err != nil {
		return fmt.Errorf(MsgErrInitPaths, err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.paths = p
	a.cfg = cfg
	return nil
}

func (a *app) dispatcher(cmd *cobra.Command) (*recipes.Dispatcher, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	book, err := recipes.FromConfig(a.cfg.Recipes)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return recipes.NewDispatcher(book, executor.New(a.dryRun), recipes.Options{
		DotfilesDir: a.paths.DotfilesDir(),
		ConfigDir:   a.paths.ConfigDir(),
		Stdin:       cmd.InOrStdin(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	}), nil
}

// runRecipe dispatches name and turns a non-zero exit into an ExitError
func (a *app) runRecipe(cmd *cobra.Command, name string, args []string) error {
	d, err := a.dispatcher(cmd)
	if err != nil {
		return err
	}
	code, err := d.Run(cmd.Context(), name, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// newPrinter builds a printer for w, detecting colour support when w is a file
func newPrinter(w io.Writer, format ui.Format) *ui.Printer {
	if f, ok := w.(*os.File); ok {
		return ui.NewPrinter(w, format.Resolve(f))
	}
	if format == ui.FormatAuto {
		format = ui.FormatText
	}
	return ui.NewPrinter(w, format)
}

// NewRootCmd creates the dotctl command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:   "dotctl [command | recipe] [args...]",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runRecipe(cmd, args[0], args[1:])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		Version:           version.Version,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	// everything after a recipe name belongs to the recipe
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "recipes", Title: "RECIPES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newPackagesCmd(a))
	rootCmd.AddCommand(newModulesCmd(a))
	rootCmd.AddCommand(newActivateCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newSkillsCmd(a))

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newRecipesCmd(a))

	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	rootCmd.SetHelpCommand(newHelpCmd(rootCmd, a))

	return rootCmd
}
