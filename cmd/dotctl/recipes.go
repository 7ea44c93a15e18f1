package dotctl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/recipes"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <recipe> [args...]",
		Short:   MsgRunShort,
		GroupID: "recipes",
		Args:    cobra.MinimumNArgs(1),
		Example: `  dotctl run deploy
  dotctl run rebuild --show-trace
  dotctl deploy          # same as dotctl run deploy`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return a.recipeCompletions(cmd), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecipe(cmd, args[0], args[1:])
		},
	}
	// flags after the recipe name are passed to the recipe
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) recipeCompletions(cmd *cobra.Command) []string {
	d, err := a.dispatcher(cmd)
	if err != nil {
		return nil
	}
	var names []string
	for _, r := range d.Book().List() {
		names = append(names, r.Name+"\t"+r.Description)
	}
	return names
}

type recipeJSON struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Aliases     []string          `json:"aliases,omitempty"`
	Run         []string          `json:"run"`
	Dir         string            `json:"dir,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
}

func newRecipesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "recipes",
		Short:   MsgRecipesShort,
		Long:    MsgRecipesLong,
		GroupID: "recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			d, err := a.dispatcher(cmd)
			if err != nil {
				return err
			}
			list := d.Book().List()

			if f == ui.FormatJSON {
				out := make([]recipeJSON, 0, len(list))
				for _, r := range list {
					out = append(out, recipeJSON(r))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			printRecipes(newPrinter(cmd.OutOrStdout(), f), list)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagOutFormat)
	return cmd
}

func printRecipes(p *ui.Printer, list []recipes.Recipe) {
	if len(list) == 0 {
		p.Println(MsgNoRecipes)
		return
	}

	width := 0
	for _, r := range list {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}

	p.Heading("Available recipes:")
	for _, r := range list {
		line := fmt.Sprintf("  %s  %s", p.Render("command", fmt.Sprintf("%-*s", width, r.Name)), r.Description)
		if len(r.Aliases) > 0 {
			line += " " + p.Render("muted", "(aliases: "+strings.Join(r.Aliases, ", ")+")")
		}
		p.Println(line)
	}
}
