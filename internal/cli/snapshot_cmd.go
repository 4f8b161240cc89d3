package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pla2html/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Store a parsed PLA file as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Schedule.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImported(snap))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snaps, err := app.Schedule.History(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(snaps, app.now()))
			return nil
		},
	}
}

func newSnapshotCmd(app *App) *cobra.Command {
	format := newFormatFlag(formatTable, formatTable, formatJSON, formatYAML)

	cmd := &cobra.Command{
		Use:   "snapshot ID",
		Short: "Print the entries of a stored snapshot",
		Long:  "Print the entries of a stored snapshot. ID may be any unique prefix of the snapshot ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("snapshot ID is required")
			}
			snap, entries, err := app.Schedule.Snapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			if format.value != formatTable {
				return writeEntries(cmd.OutOrStdout(), entries, format.value)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSnapshotHeader(snap))
			fmt.Fprint(out, formatter.FormatEntryList(entries))
			return nil
		},
	}
	cmd.Flags().Var(format, "format", "Output format: table, json or yaml")
	return cmd
}

func newForgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forget ID",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("snapshot ID is required")
			}
			if err := app.Schedule.Forget(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %s\n", args[0])
			return nil
		},
	}
}
