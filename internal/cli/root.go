package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"contacts/internal/config"
	"contacts/internal/format"
	"contacts/internal/logging"
	"contacts/internal/people"
	"contacts/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Demo          bool
	ConfirmDelete bool
	LogFile       string
	LogLevel      string
	PrettyJSON    bool
}

// runTUI is swapped out in tests; the real TUI needs a terminal.
var runTUI = tui.Run

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "contacts",
		Short:        "Contacts: a small in-memory address book TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start with an empty address book
  contacts

  # Start with sample people
  contacts --demo

  # Check a birthday string
  contacts date check 21.02.1969
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app)
		},
	}

	cmd.PersistentFlags().BoolVar(&app.Demo, "demo", envBool("CONTACTS_DEMO", false), "Seed the address book with sample people")
	cmd.PersistentFlags().BoolVar(&app.ConfirmDelete, "confirm-delete", envBool("CONTACTS_CONFIRM_DELETE", false), "Ask before deleting a person")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("CONTACTS_LOG_FILE", ""), "Append logs to this file (default: no logs)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("CONTACTS_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDateCmd(app))

	return cmd
}

func runInteractive(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	// Explicit flags and env win over the config file.
	if !cmd.Flags().Changed("demo") && os.Getenv("CONTACTS_DEMO") == "" {
		app.Demo = cfg.Demo
	}
	if !cmd.Flags().Changed("confirm-delete") && os.Getenv("CONTACTS_CONFIRM_DELETE") == "" {
		app.ConfirmDelete = cfg.ConfirmDelete
	}

	log, closer, err := logging.Open(app.LogFile, logging.ParseLevel(app.LogLevel))
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open log file: %w", err))
	}
	defer closer.Close()

	st := people.New(log)
	if app.Demo {
		st.Seed(people.SamplePeople()...)
	}
	log.Info("starting", "people", st.Len(), "confirmDelete", app.ConfirmDelete)

	err = runTUI(st, tui.Options{
		ConfirmDelete: app.ConfirmDelete,
		Theme:         cfg.Theme(),
		Logger:        log,
	})
	if err != nil {
		log.Error("tui exited", "err", err)
		return writeErr(cmd, err)
	}
	log.Info("exiting", "people", st.Len())
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return d
	}
	return b
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

