package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/pla2html/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "List the entries of a PLA file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Schedule.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntryList(p.Entries()))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE ID",
		Short: "Show one entry with its sub-records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[1])
			if err != nil {
				return err
			}
			p, err := app.Schedule.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			e, ok := p.GetEntryByID(id)
			if !ok {
				return fmt.Errorf("entry %d not found", id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryDetail(e, p.GetEntryByID))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	format := newFormatFlag(formatJSON, formatJSON, formatYAML)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Print the parsed entries as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Schedule.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			return writeEntries(cmd.OutOrStdout(), p.Entries(), format.value)
		},
	}
	cmd.Flags().Var(format, "format", "Output format: json or yaml")
	return cmd
}

func parseEntryID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q: must be a non-negative integer", s)
	}
	return uint32(id), nil
}
