package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "mentora" command. The root runs the
// interactive study TUI; it refuses to start without a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mentora",
		Short:         "Turn audio and video into interactive learning modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("mentora is interactive; run it from a terminal")
			}
			return Run(app)
		},
	}
	return root
}
