package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumipallolabs/reveal/internal/gallery"
)

func newImagesCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "images <dir>",
		Short: "List reference images under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.collector().Collect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if entries == nil {
					entries = []gallery.Entry{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%s %s\n", PathStyle.Render(e.Path()), LabelStyle.Render(e.MIME))
			}
			fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("%d images", len(entries))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}
