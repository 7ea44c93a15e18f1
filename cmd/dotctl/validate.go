package dotctl

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/dotctl/pkg/executor"
	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/arthur-debert/dotctl/pkg/validate"
	"github.com/spf13/cobra"
)

type validationJSON struct {
	Results []validate.Result `json:"results"`
	Summary validate.Summary  `json:"summary"`
}

func newValidateCmd(a *app) *cobra.Command {
	var fix bool
	var format string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}

			// git is only queried, so it runs even in dry-run mode
			v := validate.New(validate.Options{
				Dir:     a.paths.DotfilesDir(),
				Configs: a.cfg.Validate.Configs,
				JSONC:   a.cfg.Validate.JSONC,
			}, filesystem.NewOS(), executor.New(false))

			results, err := v.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf(MsgErrValidate, err)
			}

			var code int
			if f == ui.FormatJSON {
				summary := validate.Summarize(results)
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(validationJSON{Results: results, Summary: summary}); err != nil {
					return err
				}
				code = summary.ExitCode()
			} else {
				p := newPrinter(cmd.OutOrStdout(), f)
				validate.PrintResults(p, results)
				code = validate.PrintSummary(p, results, fix)
			}

			if code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, MsgFlagFix)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagOutFormat)
	return cmd
}
