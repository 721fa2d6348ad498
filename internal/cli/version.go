package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lumipallolabs/reveal/internal/reveal"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				TitleStyle.Render("reveal"),
				ValueStyle.Render(Version),
				LabelStyle.Render(fmt.Sprintf("(%s/%s, %s)", runtime.GOOS, runtime.GOARCH, reveal.Native().Name())))
		},
	}
}
