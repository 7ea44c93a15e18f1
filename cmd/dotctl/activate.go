package dotctl

import (
	"fmt"

	"github.com/arthur-debert/dotctl/pkg/activation"
	"github.com/arthur-debert/dotctl/pkg/executor"
	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/spf13/cobra"
)

func newActivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "activate",
		Short:   MsgActivateShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		Example: `  dotctl activate
  dotctl activate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			steps, err := activation.Steps(a.cfg.Activation, a.paths.DocumentsDir())
			if err != nil {
				return fmt.Errorf(MsgErrActivate, err)
			}

			env := activation.NewEnv(filesystem.NewOS(), executor.New(a.dryRun))
			runner := activation.NewRunner(env, activation.Options{
				DryRun: a.dryRun,
				Out:    cmd.OutOrStdout(),
			})
			report, runErr := runner.Run(cmd.Context(), steps)

			printReport(newPrinter(cmd.OutOrStdout(), ui.FormatAuto), report)
			if runErr != nil {
				return fmt.Errorf(MsgErrActivate, runErr)
			}
			return nil
		},
	}
}

func printReport(p *ui.Printer, report *activation.Report) {
	for _, change := range report.Changes() {
		p.Muted("  " + change.String())
	}

	if failed := report.Failed(); failed != nil {
		p.Failure(fmt.Sprintf(MsgActivationFailed, failed.Name))
		return
	}

	if report.DryRun {
		if pending := report.Count(activation.StatusPending); pending > 0 {
			p.Info(fmt.Sprintf(MsgActivationPending, pending))
		} else {
			p.Success(MsgActivationNoop)
		}
		p.Warning(MsgDryRunNotice)
		return
	}

	if n := report.Mutations(); n > 0 {
		p.Success(fmt.Sprintf(MsgActivationDone, n))
	} else {
		p.Success(MsgActivationNoop)
	}
}
