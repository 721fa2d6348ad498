package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "open <path>",
		Aliases: []string{"reveal"},
		Short:   "Reveal a file in the native file manager",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			r := a.revealer()
			if err := r.Reveal(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				SuccessStyle.Render("Revealed"),
				PathStyle.Render(path),
				LabelStyle.Render("in "+r.Strategy().Name()))
			return nil
		},
	}
}
