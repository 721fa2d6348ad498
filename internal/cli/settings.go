package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "settings [key value]",
		Short: "Show or change the app settings",
		Long: `Without arguments, prints the settings. With a key and a value, sets it.
The value is parsed as JSON when possible (60, true, null), otherwise taken
as a string.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or a key and a value, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			m, err := a.settings()
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := m.Close(); err == nil && closeErr != nil {
					err = fmt.Errorf("save settings: %w", closeErr)
				}
			}()

			if len(args) == 2 {
				if err := m.Set(args[0], parseValue(args[1])); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m.Get())
		},
	}
}

// parseValue decodes s as JSON, falling back to the raw string
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}
