package cli

import (
	"contacts/internal/dateutil"

	"github.com/spf13/cobra"
)

func newDateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Birthday date helpers (" + dateutil.Pattern + ")",
	}
	cmd.AddCommand(newDateCheckCmd(app))
	return cmd
}

// date check never fails on a bad date: validity is the answer, not an error.
func newDateCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <date>",
		Short: "Report whether a string is a valid " + dateutil.Pattern + " date",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage("expected exactly one date argument, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := map[string]any{
				"input":   args[0],
				"pattern": dateutil.Pattern,
				"valid":   false,
			}
			if d, ok := dateutil.Parse(args[0]); ok {
				out["valid"] = true
				out["date"] = d.Format("2006-01-02")
				out["formatted"] = dateutil.Format(&d)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
