package dotctl

import (
	"fmt"

	"github.com/arthur-debert/dotctl/pkg/skills"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/spf13/cobra"
)

const defaultWrapWidth = 80

func (a *app) skills() (*skills.Library, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	lib, err := skills.Load(a.cfg.Skills.Dir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadSkills, err)
	}
	return lib, nil
}

func newSkillsCmd(a *app) *cobra.Command {
	list := func(cmd *cobra.Command, args []string) error {
		lib, err := a.skills()
		if err != nil {
			return err
		}
		p := newPrinter(cmd.OutOrStdout(), ui.FormatAuto)
		all := lib.List()
		if len(all) == 0 {
			p.Println(fmt.Sprintf(MsgNoSkills, lib.Dir()))
			return nil
		}

		width := 0
		for _, s := range all {
			if len(s.Name) > width {
				width = len(s.Name)
			}
		}
		for _, s := range all {
			p.Println(fmt.Sprintf("%s  %s", p.Render("command", fmt.Sprintf("%-*s", width, s.Name)), s.Description))
		}
		return nil
	}

	cmd := &cobra.Command{
		Use:     "skills",
		Short:   MsgSkillsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    list,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgSkillsShort,
		Args:  cobra.NoArgs,
		RunE:  list,
	})
	cmd.AddCommand(newSkillsShowCmd(a))
	return cmd
}

func newSkillsShowCmd(a *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: MsgSkillsShowShort,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			lib, err := a.skills()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var names []string
			for _, s := range lib.List() {
				names = append(names, s.Name+"\t"+s.Description)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.skills()
			if err != nil {
				return err
			}
			skill, err := lib.Get(args[0])
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout(), ui.FormatAuto)
			out, err := skills.Render(skill, width, p.Format() == ui.FormatTerminal)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", defaultWrapWidth, MsgFlagWidth)
	return cmd
}
