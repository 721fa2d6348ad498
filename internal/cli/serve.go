package cli

import (
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/reveal/internal/bridge"
	"github.com/lumipallolabs/reveal/internal/logging"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer front-end commands as JSON lines on stdin/stdout",
		Long: `serve reads one JSON request per line from stdin and writes one JSON
response per line to stdout:

  {"id": 1, "cmd": "open_file_in_explorer", "args": {"path": "/tmp/a.png"}}
  {"id": 1, "ok": true}

Commands: open_file_in_explorer, list_images, get_settings, set_setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			defer func() {
				if err := s.Close(); err != nil {
					logging.Debug.Printf("[CLI] save settings: %v", err)
				}
			}()

			d := bridge.NewDispatcher()
			bridge.NewBackend(a.revealer(), a.collector(), s).Register(d)

			srv := bridge.NewServer(d, a.cfg.Workers)
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
