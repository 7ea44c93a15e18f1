package dotctl

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/recipes"
	"github.com/arthur-debert/dotctl/pkg/skills"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/spf13/cobra"
)

// newHelpCmd extends help to recipes and skill documents. Commands win over
// recipes, and recipes win over skills.
func newHelpCmd(root *cobra.Command, a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "help [command | recipe | skill]",
		Short:   MsgHelpShort,
		GroupID: "misc",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, c := range root.Commands() {
				if c.IsAvailableCommand() {
					names = append(names, c.Name()+"\t"+c.Short)
				}
			}
			names = append(names, a.recipeCompletions(cmd)...)
			if lib, err := a.skills(); err == nil {
				for _, s := range lib.List() {
					names = append(names, s.Name+"\t"+s.Description)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return root.Help()
			}
			if target, _, err := root.Find(args); err == nil && target != root {
				return target.Help()
			}

			name := args[0]
			p := newPrinter(cmd.OutOrStdout(), ui.FormatAuto)

			d, err := a.dispatcher(cmd)
			if err != nil {
				return err
			}
			if r, ok := d.Book().Lookup(name); ok {
				printRecipeHelp(p, r)
				return nil
			}

			lib, err := a.skills()
			if err != nil {
				return err
			}
			skill, err := lib.Get(name)
			if err != nil {
				return errors.Newf(errors.ErrNotFound, "no help topic for %q", name)
			}
			out, err := skills.Render(skill, defaultWrapWidth, p.Format() == ui.FormatTerminal)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func printRecipeHelp(p *ui.Printer, r recipes.Recipe) {
	p.Heading(fmt.Sprintf("%s: %s", r.Name, r.Description))
	if len(r.Aliases) > 0 {
		p.Muted("  aliases: " + strings.Join(r.Aliases, ", "))
	}
	if r.Dir != "" {
		p.Muted("  runs in: " + r.Dir)
	}
	for _, line := range r.Run {
		p.Println("  " + p.Render("command", "$ "+line))
	}
}
