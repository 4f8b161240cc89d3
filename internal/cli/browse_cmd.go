package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse the entries of a PLA file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Schedule.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			return app.runProgram(newBrowseModel(filepath.Base(args[0]), p))
		},
	}
}
