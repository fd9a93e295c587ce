package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pkordes/recruittrack/internal/handler"
)

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

// newRootCmdFor builds the command tree around a. Every RunE goes through
// a.run, so a's resources are released whether or not the command fails.
func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "recruittrack",
		Short: "RecruitTrack - contact tracker for recruiting",
		Long: `RecruitTrack keeps a list of contacts with tags and edits it through
short text commands such as "add", "tag" and "find".

Configuration comes from environment variables:
  DATABASE_URL      Postgres DSN (empty keeps the list in memory)
  LOG_LEVEL         debug, info, warn or error
  LOG_FILE          log destination, "-" for stderr
  HISTORY_FILE      shell history file
  IDENTITY_POLICY   name or name_contact
  MAX_INPUT_LENGTH  longest accepted command line
  AUTO_MIGRATE      apply migrations at startup`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		}),
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive shell (default)",
			Args:  cobra.NoArgs,
			RunE: a.run(func(cmd *cobra.Command, _ []string) error {
				return a.runShell(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "exec <command line>",
			Short: "Execute one command, print the result and save",
			Example: `  recruittrack exec list
  recruittrack exec "tag 1 t/Java t/Spring"`,
			Args: cobra.MinimumNArgs(1),
			RunE: a.run(func(cmd *cobra.Command, args []string) error {
				exec, _, err := a.session(cmd.Context())
				if err != nil {
					return a.fail(err)
				}
				// RunOnce has already shown the error; only the exit status remains.
				return handler.RunOnce(cmd.Context(), exec, strings.Join(args, " "), cmd.OutOrStdout())
			}),
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			Args:  cobra.NoArgs,
			RunE: a.run(func(cmd *cobra.Command, _ []string) error {
				if err := a.migrateOnly(cmd.Context()); err != nil {
					return a.fail(err)
				}
				pterm.Success.Println("Database schema is up to date.")
				return nil
			}),
		},
	)

	return root
}
