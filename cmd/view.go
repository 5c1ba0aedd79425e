package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covall/internal/domain"
	m "github.com/mouse-blink/covall/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously generated coverage report",
		Long:  "View the coverage literal written by the last build as a table or, on a small terminal, an interactive list.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{
				OutputFile: m.Path(cfg.OutputFile),
				Identifier: cfg.Identifier,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
